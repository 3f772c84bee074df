package user

const (
	SelectUserByID = `
		SELECT id_usuario, nombre, correo, contrasena_hash, telefono, direccion, verificado, estado_activo, token_version, created_at, updated_at
		FROM usuario
		WHERE id_usuario = $1
	`
	SelectUserByCorreo = `
		SELECT id_usuario, nombre, correo, contrasena_hash, telefono, direccion, verificado, estado_activo, token_version, created_at, updated_at
		FROM usuario
		WHERE LOWER(correo) = LOWER($1)
	`
	InsertUser = `
		INSERT INTO usuario (nombre, correo, contrasena_hash, verificado, estado_activo)
		VALUES ($1, LOWER($2), $3, $4, $5)
		RETURNING
		  id_usuario, nombre, correo, contrasena_hash, telefono, direccion, verificado, estado_activo, token_version, created_at, updated_at
	`
	UpdatePerfilByID = `
		UPDATE usuario
		SET nombre = $1,
		    telefono = $2,
		    direccion = $3,
		    updated_at = now()
		WHERE id_usuario = $4
		RETURNING
		  id_usuario, nombre, correo, contrasena_hash, telefono, direccion, verificado, estado_activo, token_version, created_at, updated_at
	`
	SelectRolesByUserID = `
		SELECT r.nombre
		FROM usuario_rol ur
		JOIN roles r ON ur.id_rol = r.id_rol
		WHERE ur.id_usuario = $1 AND r.activo
	`
)
