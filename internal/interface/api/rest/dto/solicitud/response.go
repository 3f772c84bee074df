package solicitud

import "time"

type (
	Solicitud struct {
		ID               int64      `json:"id"`
		IDUsuario        int64      `json:"id_usuario"`
		Estado           string     `json:"estado"`
		MetodoEntrega    string     `json:"metodo_entrega"`
		DireccionEntrega *string    `json:"direccion_entrega"`
		FechaEnvio       time.Time  `json:"fecha_envio"`
		Articulos        []Articulo `json:"articulos,omitempty"`
	}
	Solicitudes []Solicitud

	Articulo struct {
		ID            int64    `json:"id"`
		IDTipo        int64    `json:"id_tipo_articulo"`
		Descripcion   string   `json:"descripcion"`
		ValorEstimado float64  `json:"valor_estimado"`
		ValorAprobado *float64 `json:"valor_aprobado"`
		Condicion     *string  `json:"condicion"`
		Fotos         []Foto   `json:"fotos"`
	}

	Foto struct {
		ID    int64  `json:"id"`
		URL   string `json:"url"`
		Orden int    `json:"orden"`
	}

	ResponseData struct {
		Data Solicitudes `json:"data"`
	}
)
