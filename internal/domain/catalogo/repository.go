package catalogo

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	WithTx(tx pgx.Tx) Repository

	TiposArticulo(ctx context.Context) (Entradas, error)
	EstadosSolicitud(ctx context.Context) (Entradas, error)
	EstadosArticulo(ctx context.Context) (Entradas, error)

	// Lookups by name are case-insensitive and return (nil, nil) when
	// the name is not in the catalog.
	EstadoSolicitudPorNombre(ctx context.Context, nombre string) (*Entrada, error)
	EstadoArticuloPorNombre(ctx context.Context, nombre string) (*Entrada, error)

	// TiposFaltantes returns the subset of ids with no cat_tipo_articulo row.
	TiposFaltantes(ctx context.Context, ids []int64) ([]int64, error)
}
