package user

import (
	"time"
)

type (
	ID   int64
	User struct {
		ID             ID
		Nombre         string
		Correo         string
		ContrasenaHash *string
		Telefono       *string
		Direccion      *string
		Verificado     bool
		EstadoActivo   bool

		CreatedAt time.Time
		UpdatedAt time.Time

		// Reserved for token invalidation; nothing reads it yet.
		TokenVersion int
	}
	Users []*User
)

// Role names that may change a solicitud's estado.
const (
	RolAdministrador = "administrador"
	RolEvaluador     = "evaluador"
	RolCliente       = "cliente"
)

// Snapshot returns the audited view of the user: the fields a profile
// mutation can touch plus the account flags.
func (u *User) Snapshot() map[string]string {
	return map[string]string{
		"nombre":        u.Nombre,
		"correo":        u.Correo,
		"telefono":      deref(u.Telefono),
		"direccion":     deref(u.Direccion),
		"verificado":    boolStr(u.Verificado),
		"estado_activo": boolStr(u.EstadoActivo),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
