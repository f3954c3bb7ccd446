package handlers

import (
	"errors"
	"net/http"

	request "thaki_platform/internal/adapter/http/dto/request"
	"thaki_platform/internal/usecase"
	"thaki_platform/pkg"

	"github.com/gin-gonic/gin"
)

type ToolHandler struct {
	usecase usecase.IToolUseCase
}

func NewToolHandler(uc usecase.IToolUseCase) *ToolHandler {
	return &ToolHandler{usecase: uc}
}

func (h *ToolHandler) ListTools(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Tools())
}

func (h *ToolHandler) RunTool(c *gin.Context) {
	toolID := c.Param("id")

	var payload request.RunToolRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.RunTool(c.Request.Context(), toolID, payload.Inputs, payload.Language)
	if err != nil {
		appErr := mapToolError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ToolHandler) GetHeroImage(c *gin.Context) {
	url, err := h.usecase.HeroImage(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func mapToolError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownTool):
		return pkg.NewDomainErrorSimple("TOOL_NOT_FOUND", "Tool not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMissingToolInput):
		return pkg.NewDomainErrorSimple("MISSING_TOOL_INPUT", "A required tool input is missing", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceUnavailable):
		return pkg.NewDomainErrorSimple("SERVICE_UNAVAILABLE", "The AI service is unavailable, try again later", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
