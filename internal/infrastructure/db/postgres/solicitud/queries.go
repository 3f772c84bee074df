package solicitud

const (
	InsertSolicitud = `
		INSERT INTO solicitud (id_usuario, id_estado_solicitud, metodo_entrega, direccion_entrega)
		VALUES ($1, $2, $3, $4)
		RETURNING
		  id_solicitud, id_usuario, id_estado_solicitud, fecha_envio, metodo_entrega, direccion_entrega
	`
	SelectSolicitudByID = `
		SELECT s.id_solicitud, s.id_usuario, s.id_estado_solicitud, e.nombre, s.fecha_envio, s.metodo_entrega, s.direccion_entrega
		FROM solicitud s
		JOIN estado_solicitud e ON e.id_estado_solicitud = s.id_estado_solicitud
		WHERE s.id_solicitud = $1
	`
	SelectMisSolicitudes = `
		SELECT s.id_solicitud, s.id_usuario, s.id_estado_solicitud, e.nombre, s.fecha_envio, s.metodo_entrega, s.direccion_entrega
		FROM solicitud s
		JOIN estado_solicitud e ON e.id_estado_solicitud = s.id_estado_solicitud
		WHERE s.id_usuario = $1
		ORDER BY s.id_solicitud DESC
	`
	UpdateSolicitudHeader = `
		UPDATE solicitud
		SET metodo_entrega = $1,
		    direccion_entrega = $2
		WHERE id_solicitud = $3
		RETURNING
		  id_solicitud, id_usuario, id_estado_solicitud, fecha_envio, metodo_entrega, direccion_entrega
	`
	UpdateSolicitudEstado = `
		UPDATE solicitud
		SET id_estado_solicitud = $1
		WHERE id_solicitud = $2
	`
	DeleteSolicitudByID = `DELETE FROM solicitud WHERE id_solicitud = $1`

	SelectArticulosBySolicitud = `
		SELECT id_articulo, id_solicitud, id_tipo, id_estado, descripcion, valor_estimado, valor_aprobado, condicion
		FROM articulo
		WHERE id_solicitud = $1
		ORDER BY id_articulo
	`
	SelectFotosByArticulos = `
		SELECT id_foto, id_articulo, url, orden
		FROM articulo_foto
		WHERE id_articulo = ANY($1)
		ORDER BY id_articulo, orden
	`
	InsertArticulo = `
		INSERT INTO articulo (id_solicitud, id_tipo, id_estado, descripcion, valor_estimado, condicion)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_articulo
	`
	InsertFoto = `
		INSERT INTO articulo_foto (id_articulo, url, orden)
		VALUES ($1, $2, $3)
	`
	DeleteFotosBySolicitud = `
		DELETE FROM articulo_foto
		WHERE id_articulo IN (SELECT id_articulo FROM articulo WHERE id_solicitud = $1)
	`
	DeleteArticulosBySolicitud = `DELETE FROM articulo WHERE id_solicitud = $1`
)
