package solicitud

import (
	domain "prestamos-api/internal/domain/solicitud"
)

func fromDBModel(model *Solicitud) *domain.Solicitud {
	return &domain.Solicitud{
		ID:               model.ID,
		IDUsuario:        model.IDUsuario,
		IDEstado:         model.IDEstado,
		Estado:           model.Estado,
		MetodoEntrega:    model.MetodoEntrega,
		DireccionEntrega: model.DireccionEntrega,
		FechaEnvio:       model.FechaEnvio,
	}
}

func fromDBModels(models Solicitudes) domain.Solicitudes {
	ss := make(domain.Solicitudes, len(models))
	for idx, s := range models {
		ss[idx] = fromDBModel(s)
	}

	return ss
}

func articuloFromDBModel(model *Articulo) *domain.Articulo {
	return &domain.Articulo{
		ID:            model.ID,
		IDSolicitud:   model.IDSolicitud,
		IDTipo:        model.IDTipo,
		IDEstado:      model.IDEstado,
		Descripcion:   model.Descripcion,
		ValorEstimado: model.ValorEstimado,
		ValorAprobado: model.ValorAprobado,
		Condicion:     model.Condicion,
	}
}

func fotoFromDBModel(model *Foto) *domain.Foto {
	return &domain.Foto{
		ID:         model.ID,
		IDArticulo: model.IDArticulo,
		URL:        model.URL,
		Orden:      model.Orden,
	}
}
