package handlers

import (
	"errors"
	"net/http"

	request "thaki_platform/internal/adapter/http/dto/request"
	response "thaki_platform/internal/adapter/http/dto/response"
	"thaki_platform/internal/usecase"
	"thaki_platform/pkg"

	"github.com/gin-gonic/gin"
)

// InterestHandler handles service-interest lead submissions.

type InterestHandler struct {
	usecase usecase.IInterestUseCase
}

func NewInterestHandler(uc usecase.IInterestUseCase) *InterestHandler {
	return &InterestHandler{usecase: uc}
}

func (h *InterestHandler) CreateInterest(c *gin.Context) {
	var payload request.AddInterestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.AddInterest(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapInterestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInterest(created))
}

func mapInterestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingInterestFields), errors.Is(err, usecase.ErrInvalidInterestType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingDreamFields):
		return pkg.NewDomainErrorSimple("MISSING_DREAM_FIELDS", "Dream requests need project type, budget and timeline", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
