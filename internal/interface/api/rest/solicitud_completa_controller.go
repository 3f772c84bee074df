package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"prestamos-api/internal/application/ports"
	"prestamos-api/internal/interface/api/rest/dto/solicitud"
	"prestamos-api/internal/interface/api/rest/validator"
)

// SolicitudCompletaController serves the nested representation: the
// solicitud header together with all its articulos and fotos in one
// payload.
type SolicitudCompletaController struct {
	solicitudService ports.SolicitudService
	logger           *zap.Logger
}

func NewSolicitudCompletaController(
	r *gin.Engine,
	solicitudService ports.SolicitudService,
	logger *zap.Logger,
	authMW gin.HandlerFunc,
) *SolicitudCompletaController {
	scc := &SolicitudCompletaController{
		solicitudService: solicitudService,
		logger:           logger,
	}

	r.POST(RouteSolicitudesCompleta, authMW, scc.CreateHandler)
	r.GET(RouteSolicitudesCompleta, authMW, scc.GetMineHandler)
	r.GET(RouteSolicitudCompleta, authMW, scc.GetHandler)
	r.PUT(RouteSolicitudCompleta, authMW, scc.ReplaceHandler)
	r.DELETE(RouteSolicitudCompleta, authMW, scc.DeleteHandler)

	return scc
}

func (scc *SolicitudCompletaController) bind(c *gin.Context) (solicitud.CompletaRequest, bool) {
	var req solicitud.CompletaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return req, false
	}
	if errs := validator.ValidateCompleta(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return req, false
	}
	return req, true
}

func (scc *SolicitudCompletaController) CreateHandler(c *gin.Context) {
	req, ok := scc.bind(c)
	if !ok {
		return
	}

	s, err := scc.solicitudService.CrearCompleta(c.Request.Context(), actorID(c), solicitud.ToDomainCompleta(req))
	if err != nil {
		failSolicitud(c, scc.logger, "CrearCompleta()", err)
		return
	}

	c.JSON(http.StatusCreated, solicitud.ToResponseSolicitud(*s))
}

func (scc *SolicitudCompletaController) GetMineHandler(c *gin.Context) {
	ss, err := scc.solicitudService.Mias(c.Request.Context(), actorID(c))
	if err != nil {
		failSolicitud(c, scc.logger, "Mias()", err)
		return
	}

	c.JSON(http.StatusOK, solicitud.ResponseData{
		Data: solicitud.ToResponseSolicitudes(ss),
	})
}

func (scc *SolicitudCompletaController) GetHandler(c *gin.Context) {
	id, ok := solicitudID(c)
	if !ok {
		return
	}

	s, err := scc.solicitudService.ObtenerCompleta(c.Request.Context(), actorID(c), id)
	if err != nil {
		failSolicitud(c, scc.logger, "ObtenerCompleta()", err)
		return
	}

	c.JSON(http.StatusOK, solicitud.ToResponseSolicitud(*s))
}

func (scc *SolicitudCompletaController) ReplaceHandler(c *gin.Context) {
	id, ok := solicitudID(c)
	if !ok {
		return
	}

	req, ok := scc.bind(c)
	if !ok {
		return
	}

	s, err := scc.solicitudService.ReemplazarCompleta(c.Request.Context(), actorID(c), id, solicitud.ToDomainCompleta(req))
	if err != nil {
		failSolicitud(c, scc.logger, "ReemplazarCompleta()", err)
		return
	}

	c.JSON(http.StatusOK, solicitud.ToResponseSolicitud(*s))
}

func (scc *SolicitudCompletaController) DeleteHandler(c *gin.Context) {
	id, ok := solicitudID(c)
	if !ok {
		return
	}

	if err := scc.solicitudService.Eliminar(c.Request.Context(), actorID(c), id); err != nil {
		failSolicitud(c, scc.logger, "Eliminar()", err)
		return
	}

	c.Status(http.StatusNoContent)
}
