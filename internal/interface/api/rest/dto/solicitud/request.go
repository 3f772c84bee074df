package solicitud

type (
	CreateRequest struct {
		MetodoEntrega    string  `json:"metodo_entrega"`
		DireccionEntrega *string `json:"direccion_entrega"`
	}

	PatchRequest struct {
		MetodoEntrega    *string `json:"metodo_entrega"`
		DireccionEntrega *string `json:"direccion_entrega"`
	}

	EstadoRequest struct {
		Estado string `json:"estado"`
	}

	CompletaRequest struct {
		MetodoEntrega    string            `json:"metodo_entrega"`
		DireccionEntrega *string           `json:"direccion_entrega"`
		Articulos        []ArticuloRequest `json:"articulos"`
	}

	ArticuloRequest struct {
		IDTipo        int64         `json:"id_tipo_articulo"`
		Descripcion   string        `json:"descripcion"`
		ValorEstimado float64       `json:"valor_estimado"`
		Condicion     *string       `json:"condicion"`
		Fotos         []FotoRequest `json:"fotos"`
	}

	FotoRequest struct {
		URL   string `json:"url"`
		Orden int    `json:"orden"`
	}
)
