package ports

import (
	"context"

	"prestamos-api/internal/domain/user"
)

type AuthService interface {
	Register(ctx context.Context, nombre, correo, contrasena string) (*user.User, error)
	// Login returns a signed bearer token.
	Login(ctx context.Context, correo, contrasena string) (string, error)
	// LoginGoogle verifies a Google ID token, reconciles or creates the
	// local account and returns a bearer token.
	LoginGoogle(ctx context.Context, idToken string) (string, error)
}
