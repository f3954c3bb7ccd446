package entities

import "time"

// InterestType distinguishes catalog interest from custom "dream" requests.
//
// A standard interest references one of the fixed platform services; a dream
// request names an unlisted service and carries the extra project fields.

type InterestType string

const (
	InterestTypeStandard InterestType = "standard"
	InterestTypeDream    InterestType = "dream"
)

// ServiceInterest is a lead captured from the demo/interest forms.
type ServiceInterest struct {
	ID           string       `json:"id"`
	ServiceName  string       `json:"serviceName"`
	CustomerName string       `json:"customerName"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone,omitempty"`
	Type         InterestType `json:"type"`
	Details      string       `json:"details,omitempty"`
	ProjectType  string       `json:"projectType,omitempty"`
	Budget       string       `json:"budget,omitempty"`
	Timeline     string       `json:"timeline,omitempty"`
	Date         time.Time    `json:"date"`
}
