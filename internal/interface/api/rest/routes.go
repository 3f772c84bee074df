package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth         = RouteApiV1 + "/auth"
	RouteAuthRegister = RouteAuth + "/register"
	RouteAuthLogin    = RouteAuth + "/login"
	RouteAuthGoogle   = RouteAuth + "/google"
	RouteAuthMe       = RouteAuth + "/me"

	// usuarios
	RouteUsuarios = RouteApiV1 + "/usuarios"
	RoutePerfil   = RouteUsuarios + "/me"

	// solicitudes
	RouteSolicitudes     = RouteApiV1 + "/solicitudes"
	RouteSolicitudesMis  = RouteSolicitudes + "/mis"
	RouteSolicitud       = RouteSolicitudes + "/:solicitud_id"
	RouteSolicitudEstado = RouteSolicitud + "/estado"

	RouteSolicitudesCompleta = RouteApiV1 + "/solicitudes-completa"
	RouteSolicitudCompleta   = RouteSolicitudesCompleta + "/:solicitud_id"

	// catalogos
	RouteCatalogos           = RouteApiV1 + "/catalogos"
	RouteCatalogoBootstrap   = RouteCatalogos + "/bootstrap"
	RouteCatalogoMetodos     = RouteCatalogos + "/metodos-entrega"
	RouteCatalogoCondiciones = RouteCatalogos + "/condiciones-articulo"
	RouteCatalogoTipos       = RouteCatalogos + "/tipos-articulo"
	RouteCatalogoEstadosSol  = RouteCatalogos + "/estados-solicitud"
	RouteCatalogoEstadosArt  = RouteCatalogos + "/estados-articulo"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
