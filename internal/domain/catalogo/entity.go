package catalogo

type (
	// Entrada is a database-seeded catalog row.
	Entrada struct {
		ID     int64
		Nombre string
	}
	Entradas []Entrada

	// Opcion is a static catalog value with a display label.
	Opcion struct {
		Valor    string
		Etiqueta string
	}
)

// MetodosEntrega returns the delivery method catalog (constant).
func MetodosEntrega() []Opcion {
	return []Opcion{
		{Valor: "domicilio", Etiqueta: "Domicilio"},
		{Valor: "oficina", Etiqueta: "Oficina"},
	}
}

// CondicionesArticulo returns the item condition catalog (constant).
func CondicionesArticulo() []Opcion {
	return []Opcion{
		{Valor: "nuevo", Etiqueta: "Nuevo"},
		{Valor: "seminuevo", Etiqueta: "Seminuevo"},
		{Valor: "usado", Etiqueta: "Usado"},
		{Valor: "malo", Etiqueta: "Malo"},
	}
}
