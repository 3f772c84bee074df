package auditoria

import (
	"time"
)

// Action codes written to the trail. One per state-changing operation.
const (
	AccionRegistrarUsuario = "REGISTRAR_USUARIO"
	AccionActualizarPerfil = "ACTUALIZAR_PERFIL"
	AccionCrearSolicitud   = "CREAR_SOLICITUD"
	AccionActualizar       = "ACTUALIZAR_SOLICITUD"
	AccionEliminar         = "ELIMINAR_SOLICITUD"
	AccionCambiarEstado    = "CAMBIAR_ESTADO_SOLICITUD"
)

const (
	ModuloAuth      = "Auth"
	ModuloUsuarios  = "Usuarios"
	ModuloSolicitud = "Solicitud"
)

type (
	// Registro is one persisted audit row. Append-only.
	Registro struct {
		ID        int64
		IDUsuario int64
		Accion    string
		Modulo    string
		Detalle   string
		OldValues *string
		NewValues *string
		FechaHora time.Time
	}

	// Entrada is what callers hand to the recorder. Snapshots are plain
	// key-value maps produced by each entity's Snapshot method; nil means
	// "no snapshot" and is stored as NULL.
	Entrada struct {
		IDUsuario int64
		Accion    string
		Modulo    string
		Detalle   string
		Old       map[string]string
		New       map[string]string
	}
)
