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

type MessageHandler struct {
	usecase usecase.IMessageUseCase
}

func NewMessageHandler(uc usecase.IMessageUseCase) *MessageHandler {
	return &MessageHandler{usecase: uc}
}

func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var payload request.AddMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.AddMessage(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapMessageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMessage(created))
}

func mapMessageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingMessageFields):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
