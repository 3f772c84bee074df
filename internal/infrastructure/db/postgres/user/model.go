package user

import (
	"time"
)

type (
	User struct {
		ID             int64
		Nombre         string
		Correo         string
		ContrasenaHash *string
		Telefono       *string
		Direccion      *string
		Verificado     bool
		EstadoActivo   bool
		TokenVersion   int

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
