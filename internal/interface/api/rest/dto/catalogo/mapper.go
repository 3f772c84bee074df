package catalogo

import (
	"prestamos-api/internal/application/ports"
	domain "prestamos-api/internal/domain/catalogo"
)

func ToResponseEntradas(esDomain domain.Entradas) Entradas {
	es := make(Entradas, len(esDomain))
	for idx, e := range esDomain {
		es[idx] = Entrada{ID: e.ID, Nombre: e.Nombre}
	}

	return es
}

func ToResponseOpciones(osDomain []domain.Opcion) Opciones {
	os := make(Opciones, len(osDomain))
	for idx, o := range osDomain {
		os[idx] = Opcion{Valor: o.Valor, Etiqueta: o.Etiqueta}
	}

	return os
}

func ToResponseBootstrap(b ports.Bootstrap) BootstrapResponse {
	return BootstrapResponse{
		MetodosEntrega:      ToResponseOpciones(b.MetodosEntrega),
		CondicionesArticulo: ToResponseOpciones(b.CondicionesArticulo),
		TiposArticulo:       ToResponseEntradas(b.TiposArticulo),
		EstadosSolicitud:    ToResponseEntradas(b.EstadosSolicitud),
		EstadosArticulo:     ToResponseEntradas(b.EstadosArticulo),
	}
}
