package solicitud

import (
	"time"
)

type (
	Solicitud struct {
		ID               int64
		IDUsuario        int64
		IDEstado         int64
		Estado           string
		FechaEnvio       time.Time
		MetodoEntrega    string
		DireccionEntrega *string
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
	}

	Foto struct {
		ID         int64
		IDArticulo int64
		URL        string
		Orden      int
	}
)
