package services

import "errors"

var (
	ErrValidacion            = errors.New("datos inválidos")
	ErrInvalidCredentials    = errors.New("credenciales inválidas")
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrForbidden             = errors.New("operación no permitida")
	ErrUsuarioInactivo       = errors.New("usuario inactivo")
	ErrRegistroSoloGoogle    = errors.New("el registro es solo con Google")
	ErrFailedToGenerateToken = errors.New("failed to generate token")

	// ErrCatalogoIncompleto means a seed row (e.g. estado 'pendiente')
	// is missing: a server misconfiguration, not a client error.
	ErrCatalogoIncompleto = errors.New("catálogo incompleto")
)
