package solicitud

import (
	domain "prestamos-api/internal/domain/solicitud"
)

func ToResponseSolicitud(sDomain domain.Solicitud) Solicitud {
	s := Solicitud{
		ID:               sDomain.ID,
		IDUsuario:        sDomain.IDUsuario,
		Estado:           sDomain.Estado,
		MetodoEntrega:    sDomain.MetodoEntrega,
		DireccionEntrega: sDomain.DireccionEntrega,
		FechaEnvio:       sDomain.FechaEnvio,
	}
	for _, a := range sDomain.Articulos {
		s.Articulos = append(s.Articulos, toResponseArticulo(a))
	}

	return s
}

func ToResponseSolicitudes(ssDomain domain.Solicitudes) Solicitudes {
	ss := make(Solicitudes, len(ssDomain))
	for idx, s := range ssDomain {
		ss[idx] = ToResponseSolicitud(*s)
	}

	return ss
}

func toResponseArticulo(aDomain *domain.Articulo) Articulo {
	a := Articulo{
		ID:            aDomain.ID,
		IDTipo:        aDomain.IDTipo,
		Descripcion:   aDomain.Descripcion,
		ValorEstimado: aDomain.ValorEstimado,
		ValorAprobado: aDomain.ValorAprobado,
		Condicion:     aDomain.Condicion,
		Fotos:         make([]Foto, 0, len(aDomain.Fotos)),
	}
	for _, f := range aDomain.Fotos {
		a.Fotos = append(a.Fotos, Foto{ID: f.ID, URL: f.URL, Orden: f.Orden})
	}

	return a
}

// ToDomainCompleta maps the nested payload; database ids are assigned
// on insert.
func ToDomainCompleta(req CompletaRequest) domain.Solicitud {
	s := domain.Solicitud{
		MetodoEntrega:    req.MetodoEntrega,
		DireccionEntrega: req.DireccionEntrega,
	}
	for _, ar := range req.Articulos {
		a := &domain.Articulo{
			IDTipo:        ar.IDTipo,
			Descripcion:   ar.Descripcion,
			ValorEstimado: ar.ValorEstimado,
			Condicion:     ar.Condicion,
		}
		for _, fr := range ar.Fotos {
			a.Fotos = append(a.Fotos, &domain.Foto{URL: fr.URL, Orden: fr.Orden})
		}
		s.Articulos = append(s.Articulos, a)
	}

	return s
}
