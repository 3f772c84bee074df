package ports

import (
	"context"

	"prestamos-api/internal/domain/user"
)

type UsuarioService interface {
	// ActualizarPerfil applies an allow-listed patch to the actor's own
	// profile. A patch with no effective change returns the current
	// state without writing.
	ActualizarPerfil(ctx context.Context, actor *user.User, patch user.Patch) (*user.User, error)
}
