package request

import "thaki_platform/internal/domain/entities"

// AddApplicationRequest is a careers-page submission. CV is the uploaded
// resume as a data URI.

type AddApplicationRequest struct {
	JobID         string `json:"jobId" binding:"required"`
	ApplicantName string `json:"applicantName" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Position      string `json:"position"`
	CV            string `json:"cvBase64" binding:"required"`
}

func (r AddApplicationRequest) ToEntity() entities.JobApplication {
	return entities.JobApplication{
		JobID:         r.JobID,
		ApplicantName: r.ApplicantName,
		Email:         r.Email,
		Position:      r.Position,
		CV:            r.CV,
	}
}
