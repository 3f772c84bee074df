package ports

import (
	"context"

	"prestamos-api/internal/domain/solicitud"
)

type SolicitudService interface {
	Crear(ctx context.Context, actorID int64, metodo string, direccion *string) (*solicitud.Solicitud, error)
	Mias(ctx context.Context, actorID int64) (solicitud.Solicitudes, error)
	Obtener(ctx context.Context, actorID, id int64) (*solicitud.Solicitud, error)
	Actualizar(ctx context.Context, actorID, id int64, patch solicitud.Patch) (*solicitud.Solicitud, error)
	// Eliminar cascades to articulos and fotos, children first.
	Eliminar(ctx context.Context, actorID, id int64) error
	// CambiarEstado requires an elevated role; any catalog-valid estado
	// is reachable from any current estado.
	CambiarEstado(ctx context.Context, actorID, id int64, estado string) (*solicitud.Solicitud, error)

	CrearCompleta(ctx context.Context, actorID int64, req solicitud.Solicitud) (*solicitud.Solicitud, error)
	ObtenerCompleta(ctx context.Context, actorID, id int64) (*solicitud.Solicitud, error)
	// ReemplazarCompleta replaces all articulos and fotos with the
	// request payload. All validations run before any write.
	ReemplazarCompleta(ctx context.Context, actorID, id int64, req solicitud.Solicitud) (*solicitud.Solicitud, error)
}
