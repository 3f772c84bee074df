package jwt

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrInvalidSubject = errors.New("invalid subject")
)

type Service struct {
	secret     string
	method     jwt.SigningMethod
	defaultTTL time.Duration
}

// New builds the token service. alg must name an HMAC method; anything
// unknown falls back to HS256.
func New(secret, alg string, defaultTTL time.Duration) *Service {
	method := jwt.GetSigningMethod(alg)
	if method == nil {
		method = jwt.SigningMethodHS256
	}
	return &Service{
		secret:     secret,
		method:     method,
		defaultTTL: defaultTTL,
	}
}

// Issue signs a token whose subject is the stringified user id. A
// non-positive ttl means the configured default.
func (s *Service) Issue(userID int64, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token := jwt.NewWithClaims(s.method, claims)

	return token.SignedString([]byte(s.secret))
}

// Verify checks signature, structure and expiry.
func (s *Service) Verify(tokenStr string) (*jwt.RegisteredClaims, error) {
	claims := new(jwt.RegisteredClaims)
	token, err := jwt.ParseWithClaims(
		tokenStr,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(s.secret), nil
		},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// SubjectID verifies the token and parses its subject as a user id.
func (s *Service) SubjectID(tokenStr string) (int64, error) {
	claims, err := s.Verify(tokenStr)
	if err != nil {
		return 0, err
	}
	if claims.Subject == "" {
		return 0, ErrInvalidSubject
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidSubject
	}

	return id, nil
}
