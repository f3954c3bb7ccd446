package entities

import "time"

// JobApplication is a careers-page application. JobID references a listing
// from the static job catalog; CV holds the uploaded resume as a data URI.
// Append-only.
type JobApplication struct {
	ID            string    `json:"id"`
	JobID         string    `json:"jobId"`
	ApplicantName string    `json:"applicantName"`
	Email         string    `json:"email"`
	Position      string    `json:"position"`
	CV            string    `json:"cvBase64"`
	Date          time.Time `json:"date"`
}
