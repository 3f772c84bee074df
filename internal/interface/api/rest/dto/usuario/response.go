package usuario

import "time"

type Usuario struct {
	ID           int64     `json:"id"`
	Nombre       string    `json:"nombre"`
	Correo       string    `json:"correo"`
	Telefono     *string   `json:"telefono"`
	Direccion    *string   `json:"direccion"`
	Verificado   bool      `json:"verificado"`
	EstadoActivo bool      `json:"estado_activo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
