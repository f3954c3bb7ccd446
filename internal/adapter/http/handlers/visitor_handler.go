package handlers

import (
	"net/http"

	"thaki_platform/internal/usecase"
	"thaki_platform/pkg"

	"github.com/gin-gonic/gin"
)

type VisitorHandler struct {
	usecase usecase.IVisitorUseCase
}

func NewVisitorHandler(uc usecase.IVisitorUseCase) *VisitorHandler {
	return &VisitorHandler{usecase: uc}
}

func (h *VisitorHandler) RecordVisit(c *gin.Context) {
	count, err := h.usecase.RecordVisit(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *VisitorHandler) GetVisitorCount(c *gin.Context) {
	count, err := h.usecase.Count(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
