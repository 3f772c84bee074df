package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"prestamos-api/internal/application/ports"
	"prestamos-api/internal/application/services"
	domain "prestamos-api/internal/domain/solicitud"
	"prestamos-api/internal/interface/api/rest/dto/solicitud"
	"prestamos-api/internal/interface/api/rest/validator"
)

type SolicitudController struct {
	solicitudService ports.SolicitudService
	logger           *zap.Logger
}

func NewSolicitudController(
	r *gin.Engine,
	solicitudService ports.SolicitudService,
	logger *zap.Logger,
	authMW gin.HandlerFunc,
) *SolicitudController {
	sc := &SolicitudController{
		solicitudService: solicitudService,
		logger:           logger,
	}

	r.POST(RouteSolicitudes, authMW, sc.CreateHandler)
	r.GET(RouteSolicitudesMis, authMW, sc.GetMineHandler)
	r.GET(RouteSolicitud, authMW, sc.GetHandler)
	r.PATCH(RouteSolicitud, authMW, sc.UpdateHandler)
	r.DELETE(RouteSolicitud, authMW, sc.DeleteHandler)
	r.PATCH(RouteSolicitudEstado, authMW, sc.ChangeEstadoHandler)

	return sc
}

// failSolicitud maps service sentinels onto HTTP statuses; anything
// unmapped is a 500 plus a log line.
func failSolicitud(c *gin.Context, logger *zap.Logger, op string, err error) {
	switch {
	case errors.Is(err, services.ErrValidacion):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to process solicitud"},
		)
		logger.Error(op+" error", zap.Error(err))
	}
}

func actorID(c *gin.Context) int64 {
	return c.GetInt64("userID")
}

func solicitudID(c *gin.Context) (int64, bool) {
	id, ok := validator.ValidateID(c.Param("solicitud_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "solicitud_id must be a positive integer"},
		)
	}
	return id, ok
}

func (sc *SolicitudController) CreateHandler(c *gin.Context) {
	var req solicitud.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateSolicitudCreate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	s, err := sc.solicitudService.Crear(c.Request.Context(), actorID(c), req.MetodoEntrega, req.DireccionEntrega)
	if err != nil {
		failSolicitud(c, sc.logger, "Crear()", err)
		return
	}

	c.JSON(http.StatusCreated, solicitud.ToResponseSolicitud(*s))
}

func (sc *SolicitudController) GetMineHandler(c *gin.Context) {
	ss, err := sc.solicitudService.Mias(c.Request.Context(), actorID(c))
	if err != nil {
		failSolicitud(c, sc.logger, "Mias()", err)
		return
	}

	c.JSON(http.StatusOK, solicitud.ResponseData{
		Data: solicitud.ToResponseSolicitudes(ss),
	})
}

func (sc *SolicitudController) GetHandler(c *gin.Context) {
	id, ok := solicitudID(c)
	if !ok {
		return
	}

	s, err := sc.solicitudService.Obtener(c.Request.Context(), actorID(c), id)
	if err != nil {
		failSolicitud(c, sc.logger, "Obtener()", err)
		return
	}

	c.JSON(http.StatusOK, solicitud.ToResponseSolicitud(*s))
}

func (sc *SolicitudController) UpdateHandler(c *gin.Context) {
	id, ok := solicitudID(c)
	if !ok {
		return
	}

	var req solicitud.PatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateSolicitudPatch(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	s, err := sc.solicitudService.Actualizar(c.Request.Context(), actorID(c), id, domain.Patch{
		MetodoEntrega:    req.MetodoEntrega,
		DireccionEntrega: req.DireccionEntrega,
	})
	if err != nil {
		failSolicitud(c, sc.logger, "Actualizar()", err)
		return
	}

	c.JSON(http.StatusOK, solicitud.ToResponseSolicitud(*s))
}

func (sc *SolicitudController) DeleteHandler(c *gin.Context) {
	id, ok := solicitudID(c)
	if !ok {
		return
	}

	if err := sc.solicitudService.Eliminar(c.Request.Context(), actorID(c), id); err != nil {
		failSolicitud(c, sc.logger, "Eliminar()", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (sc *SolicitudController) ChangeEstadoHandler(c *gin.Context) {
	id, ok := solicitudID(c)
	if !ok {
		return
	}

	var req solicitud.EstadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateEstado(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	s, err := sc.solicitudService.CambiarEstado(c.Request.Context(), actorID(c), id, req.Estado)
	if err != nil {
		failSolicitud(c, sc.logger, "CambiarEstado()", err)
		return
	}

	c.JSON(http.StatusOK, solicitud.ToResponseSolicitud(*s))
}
