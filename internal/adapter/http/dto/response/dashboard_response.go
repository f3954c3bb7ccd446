package response

import (
	"thaki_platform/internal/domain/entities"
	"thaki_platform/internal/usecase"
)

type DemandBucketResponse struct {
	Label       string `json:"label"`
	ServiceName string `json:"serviceName"`
	Count       int    `json:"count"`
}

type StatusBucketResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type SummaryStatsResponse struct {
	Visitors      int `json:"visitors"`
	Messages      int `json:"messages"`
	Payments      int `json:"payments"`
	DreamRequests int `json:"dreamRequests"`
}

type FilterStateResponse struct {
	Service   string `json:"service,omitempty"`
	Status    string `json:"status"`
	ActiveTab string `json:"activeTab"`
}

// DashboardResponse is the full admin dashboard payload: summary strip,
// both charts and the tables narrowed by the active filters.
type DashboardResponse struct {
	Stats         SummaryStatsResponse   `json:"stats"`
	Demand        []DemandBucketResponse `json:"demand"`
	PaymentStatus []StatusBucketResponse `json:"paymentStatus"`
	Filters       FilterStateResponse    `json:"filters"`
	Payments      []PaymentResponse      `json:"payments"`
	Interests     []InterestResponse     `json:"interests"`
	Messages      []MessageResponse      `json:"messages"`
}

func FromDashboardView(v usecase.DashboardView) DashboardResponse {
	demand := make([]DemandBucketResponse, 0, len(v.Demand))
	for _, b := range v.Demand {
		demand = append(demand, DemandBucketResponse{Label: b.Label, ServiceName: b.ServiceName, Count: b.Count})
	}

	distribution := make([]StatusBucketResponse, 0, len(v.PaymentStatus))
	for _, b := range v.PaymentStatus {
		distribution = append(distribution, StatusBucketResponse{Status: string(b.Status), Count: b.Count})
	}

	return DashboardResponse{
		Stats: SummaryStatsResponse{
			Visitors:      v.Stats.Visitors,
			Messages:      v.Stats.Messages,
			Payments:      v.Stats.Payments,
			DreamRequests: v.Stats.DreamRequests,
		},
		Demand:        demand,
		PaymentStatus: distribution,
		Filters:       fromFilterState(v.Filters),
		Payments:      FromPayments(v.Payments),
		Interests:     FromInterests(v.Interests),
		Messages:      FromMessages(v.Messages),
	}
}

func fromFilterState(s entities.FilterState) FilterStateResponse {
	return FilterStateResponse{
		Service:   s.Service,
		Status:    string(s.Status),
		ActiveTab: string(s.ActiveTab),
	}
}
