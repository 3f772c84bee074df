package solicitud

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	// WithTx returns a copy of the repository whose operations run on tx.
	WithTx(tx pgx.Tx) Repository

	Create(ctx context.Context, req Solicitud) (*Solicitud, error)
	// FetchByID returns (nil, nil) when the row is absent. The estado
	// name is resolved in the same query.
	FetchByID(ctx context.Context, id int64) (*Solicitud, error)
	FetchMine(ctx context.Context, userID int64) (Solicitudes, error)
	UpdateHeader(ctx context.Context, req Solicitud) (*Solicitud, error)
	UpdateEstado(ctx context.Context, id, idEstado int64) error

	// FetchArticulos loads the articulos of a solicitud with their fotos,
	// fotos ordered by orden.
	FetchArticulos(ctx context.Context, solicitudID int64) ([]*Articulo, error)
	InsertArticulos(ctx context.Context, solicitudID, idEstado int64, arts []*Articulo) error
	// DeleteArticulos removes fotos first, then articulos.
	DeleteArticulos(ctx context.Context, solicitudID int64) error
	// Delete removes the solicitud row only; callers cascade children
	// beforehand via DeleteArticulos.
	Delete(ctx context.Context, id int64) error
}
