package solicitud

import (
	"strconv"
	"time"
)

// Delivery method vocabulary. Fixed, not database-seeded.
const (
	MetodoDomicilio = "domicilio"
	MetodoOficina   = "oficina"
)

// EstadoPendiente is the seed estado every new solicitud and articulo
// starts in. Its absence from the catalog is a server misconfiguration.
const EstadoPendiente = "pendiente"

type (
	Solicitud struct {
		ID               int64
		IDUsuario        int64
		IDEstado         int64
		Estado           string
		MetodoEntrega    string
		DireccionEntrega *string
		FechaEnvio       time.Time

		Articulos []*Articulo
	}
	Solicitudes []*Solicitud

	Articulo struct {
		ID            int64
		IDSolicitud   int64
		IDTipo        int64
		IDEstado      int64
		Descripcion   string
		ValorEstimado float64
		ValorAprobado *float64
		Condicion     *string

		Fotos []*Foto
	}

	Foto struct {
		ID         int64
		IDArticulo int64
		URL        string
		Orden      int
	}
)

func ValidMetodo(m string) bool {
	return m == MetodoDomicilio || m == MetodoOficina
}

// Snapshot returns the audited view of the solicitud header. Child rows
// are audited through the articulos count only; full payloads live in
// the request log, not the audit trail.
func (s *Solicitud) Snapshot() map[string]string {
	direccion := ""
	if s.DireccionEntrega != nil {
		direccion = *s.DireccionEntrega
	}
	snap := map[string]string{
		"id_usuario":        strconv.FormatInt(s.IDUsuario, 10),
		"estado":            s.Estado,
		"metodo_entrega":    s.MetodoEntrega,
		"direccion_entrega": direccion,
	}
	if s.Articulos != nil {
		snap["articulos"] = strconv.Itoa(len(s.Articulos))
	}
	return snap
}
