package user

import (
	domain "prestamos-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	return &domain.User{
		ID:             domain.ID(model.ID),
		Nombre:         model.Nombre,
		Correo:         model.Correo,
		ContrasenaHash: model.ContrasenaHash,
		Telefono:       model.Telefono,
		Direccion:      model.Direccion,
		Verificado:     model.Verificado,
		EstadoActivo:   model.EstadoActivo,
		TokenVersion:   model.TokenVersion,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
