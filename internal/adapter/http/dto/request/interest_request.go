package request

import (
	"thaki_platform/internal/domain/entities"
)

// AddInterestRequest is the payload of both interest forms: the service-card
// "I am interested" modal (standard) and the dream-service form, which adds
// the project fields.

type AddInterestRequest struct {
	ServiceName  string `json:"serviceName" binding:"required"`
	CustomerName string `json:"customerName" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Phone        string `json:"phone"`
	Type         string `json:"type"`
	Details      string `json:"details"`
	ProjectType  string `json:"projectType"`
	Budget       string `json:"budget"`
	Timeline     string `json:"timeline"`
}

func (r AddInterestRequest) ToEntity() entities.ServiceInterest {
	return entities.ServiceInterest{
		ServiceName:  r.ServiceName,
		CustomerName: r.CustomerName,
		Email:        r.Email,
		Phone:        r.Phone,
		Type:         entities.InterestType(r.Type),
		Details:      r.Details,
		ProjectType:  r.ProjectType,
		Budget:       r.Budget,
		Timeline:     r.Timeline,
	}
}
