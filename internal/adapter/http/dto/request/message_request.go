package request

import "thaki_platform/internal/domain/entities"

type AddMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Type    string `json:"type"`
	Message string `json:"message" binding:"required"`
}

func (r AddMessageRequest) ToEntity() entities.ContactMessage {
	return entities.ContactMessage{Name: r.Name, Email: r.Email, Type: r.Type, Message: r.Message}
}
