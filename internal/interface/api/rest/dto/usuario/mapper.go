package usuario

import (
	"prestamos-api/internal/domain/user"
)

func ToResponseUsuario(uDomain user.User) Usuario {
	return Usuario{
		ID:           int64(uDomain.ID),
		Nombre:       uDomain.Nombre,
		Correo:       uDomain.Correo,
		Telefono:     uDomain.Telefono,
		Direccion:    uDomain.Direccion,
		Verificado:   uDomain.Verificado,
		EstadoActivo: uDomain.EstadoActivo,
		CreatedAt:    uDomain.CreatedAt,
		UpdatedAt:    uDomain.UpdatedAt,
	}
}
