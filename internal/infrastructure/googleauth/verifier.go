// Package googleauth validates Google-issued ID tokens and maps them to
// the claims the auth service needs for account reconciliation.
package googleauth

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"google.golang.org/api/idtoken"
)

var (
	ErrUntrustedIdentity = errors.New("identity token failed verification")
	ErrDomainNotAllowed  = errors.New("email domain not allowed")
)

const maxNombreLen = 30

var acceptedIssuers = map[string]struct{}{
	"https://accounts.google.com": {},
	"accounts.google.com":         {},
}

type Claims struct {
	Correo string
	Nombre string
}

// validateFunc is a seam over idtoken.Validate so tests can stub the
// network round trip to Google's certs endpoint.
type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

type Verifier struct {
	clientID      string
	allowedDomain string
	validate      validateFunc
}

func New(clientID, allowedDomain string) *Verifier {
	return &Verifier{
		clientID:      clientID,
		allowedDomain: strings.ToLower(allowedDomain),
		validate:      idtoken.Validate,
	}
}

// Verify checks the token cryptographically against the configured
// client id, then enforces issuer, email_verified and the optional
// domain restriction. Returns normalized claims on success.
func (v *Verifier) Verify(ctx context.Context, token string) (*Claims, error) {
	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		return nil, ErrUntrustedIdentity
	}

	if _, ok := acceptedIssuers[payload.Issuer]; !ok {
		return nil, ErrUntrustedIdentity
	}
	if !emailVerified(payload.Claims) {
		return nil, ErrUntrustedIdentity
	}

	correo := strings.ToLower(strings.TrimSpace(stringClaim(payload.Claims, "email")))
	if correo == "" {
		return nil, ErrUntrustedIdentity
	}

	if err = v.checkDomain(correo); err != nil {
		return nil, err
	}

	return &Claims{
		Correo: correo,
		Nombre: displayName(payload.Claims, correo),
	}, nil
}

func (v *Verifier) checkDomain(correo string) error {
	if v.allowedDomain == "" {
		return nil
	}
	if strings.HasSuffix(correo, "@"+v.allowedDomain) {
		return nil
	}
	// googlemail.com is the legacy alias of gmail.com
	if v.allowedDomain == "gmail.com" && strings.HasSuffix(correo, "@googlemail.com") {
		return nil
	}
	return ErrDomainNotAllowed
}

// displayName falls back name -> given_name -> email local part and
// bounds the result.
func displayName(claims map[string]interface{}, correo string) string {
	nombre := stringClaim(claims, "name")
	if nombre == "" {
		nombre = stringClaim(claims, "given_name")
	}
	if nombre == "" {
		nombre, _, _ = strings.Cut(correo, "@")
	}
	nombre = norm.NFC.String(strings.TrimSpace(nombre))
	if utf8.RuneCountInString(nombre) > maxNombreLen {
		nombre = string([]rune(nombre)[:maxNombreLen])
	}
	return nombre
}

func stringClaim(claims map[string]interface{}, key string) string {
	s, _ := claims[key].(string)
	return s
}

// Google serializes email_verified as a bool or as "true"/"false"
// depending on the token flavor.
func emailVerified(claims map[string]interface{}) bool {
	switch v := claims["email_verified"].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
