package user

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	// WithTx returns a copy of the repository whose operations run on tx.
	WithTx(tx pgx.Tx) Repository

	FetchByID(ctx context.Context, id ID) (*User, error)
	// FetchByCorreo compares emails case-insensitively.
	FetchByCorreo(ctx context.Context, correo string) (*User, error)
	Create(ctx context.Context, req User) (*User, error)
	UpdatePerfil(ctx context.Context, req User) (*User, error)
	FetchRoles(ctx context.Context, id ID) ([]string, error)
}
