package ports

import (
	"context"

	"prestamos-api/internal/domain/catalogo"
)

// Bootstrap carries every catalog in one payload so clients fill their
// forms with a single request.
type Bootstrap struct {
	MetodosEntrega      []catalogo.Opcion
	CondicionesArticulo []catalogo.Opcion
	TiposArticulo       catalogo.Entradas
	EstadosSolicitud    catalogo.Entradas
	EstadosArticulo     catalogo.Entradas
}

type CatalogoService interface {
	Bootstrap(ctx context.Context) (*Bootstrap, error)
	TiposArticulo(ctx context.Context) (catalogo.Entradas, error)
	EstadosSolicitud(ctx context.Context) (catalogo.Entradas, error)
	EstadosArticulo(ctx context.Context) (catalogo.Entradas, error)
}
