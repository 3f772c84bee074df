package catalogo

type (
	Entrada struct {
		ID     int64  `json:"id"`
		Nombre string `json:"nombre"`
	}
	Entradas []Entrada

	Opcion struct {
		Valor    string `json:"valor"`
		Etiqueta string `json:"etiqueta"`
	}
	Opciones []Opcion

	ResponseData struct {
		Data Entradas `json:"data"`
	}

	OpcionesData struct {
		Data Opciones `json:"data"`
	}

	BootstrapResponse struct {
		MetodosEntrega      Opciones `json:"metodos_entrega"`
		CondicionesArticulo Opciones `json:"condiciones_articulo"`
		TiposArticulo       Entradas `json:"tipos_articulo"`
		EstadosSolicitud    Entradas `json:"estados_solicitud"`
		EstadosArticulo     Entradas `json:"estados_articulo"`
	}
)
