package catalogo

const (
	SelectTiposArticulo = `
		SELECT id_tipo, nombre
		FROM cat_tipo_articulo
		ORDER BY nombre
	`
	SelectEstadosSolicitud = `
		SELECT id_estado_solicitud, nombre
		FROM estado_solicitud
		ORDER BY nombre
	`
	SelectEstadosArticulo = `
		SELECT id_estado_articulo, nombre
		FROM estado_articulo
		ORDER BY nombre
	`
	SelectEstadoSolicitudPorNombre = `
		SELECT id_estado_solicitud, nombre
		FROM estado_solicitud
		WHERE LOWER(nombre) = LOWER($1)
	`
	SelectEstadoArticuloPorNombre = `
		SELECT id_estado_articulo, nombre
		FROM estado_articulo
		WHERE LOWER(nombre) = LOWER($1)
	`
	SelectTiposExistentes = `
		SELECT id_tipo
		FROM cat_tipo_articulo
		WHERE id_tipo = ANY($1)
	`
)
