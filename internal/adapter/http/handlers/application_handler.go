package handlers

import (
	"errors"
	"net/http"

	request "thaki_platform/internal/adapter/http/dto/request"
	response "thaki_platform/internal/adapter/http/dto/response"
	"thaki_platform/internal/domain/catalog"
	"thaki_platform/internal/usecase"
	"thaki_platform/pkg"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	usecase usecase.IApplicationUseCase
}

func NewApplicationHandler(uc usecase.IApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{usecase: uc}
}

func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var payload request.AddApplicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Apply(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromApplication(created))
}

// ListJobs serves the static openings catalog so the careers page and the
// application form share one source of job ids.
func (h *ApplicationHandler) ListJobs(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Jobs())
}

func mapApplicationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingApplicationFields):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownJob):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job listing not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
