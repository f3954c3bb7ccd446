package usecase

import (
	"context"
	"sort"

	"thaki_platform/internal/domain/entities"
	"thaki_platform/internal/usecase/interfaces"
)

// Histogram labels longer than this are shortened with an ellipsis for
// display. Truncation is presentation only; grouping and filtering always
// use the full service name.
const demandLabelMaxRunes = 15

// IDashboardUseCase derives every view the admin dashboard renders from the
// raw record collections.

type IDashboardUseCase interface {
	Summary(ctx context.Context) (entities.SummaryStats, error)
	ServiceDemand(ctx context.Context) ([]entities.DemandBucket, error)
	PaymentStatusDistribution(ctx context.Context) ([]entities.StatusBucket, error)
	FilteredPayments(ctx context.Context, filter entities.StatusFilter) ([]entities.PaymentRequest, error)
	FilteredInterests(ctx context.Context, serviceName string) ([]entities.ServiceInterest, error)
	View(ctx context.Context, state entities.FilterState) (DashboardView, error)
}

// DashboardView is one complete dashboard payload: summary strip, both
// charts, and the tables narrowed by the active filters.
type DashboardView struct {
	Stats         entities.SummaryStats      `json:"stats"`
	Demand        []entities.DemandBucket    `json:"demand"`
	PaymentStatus []entities.StatusBucket    `json:"paymentStatus"`
	Filters       entities.FilterState       `json:"filters"`
	Payments      []entities.PaymentRequest  `json:"payments"`
	Interests     []entities.ServiceInterest `json:"interests"`
	Messages      []entities.ContactMessage  `json:"messages"`
}

type DashboardUseCase struct {
	repo interfaces.IRecordRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(repo interfaces.IRecordRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

func (u *DashboardUseCase) Summary(ctx context.Context) (entities.SummaryStats, error) {
	visitors, err := u.repo.VisitorCount(ctx)
	if err != nil {
		return entities.SummaryStats{}, err
	}
	messages, err := u.repo.Messages(ctx)
	if err != nil {
		return entities.SummaryStats{}, err
	}
	payments, err := u.repo.Payments(ctx)
	if err != nil {
		return entities.SummaryStats{}, err
	}
	interests, err := u.repo.Interests(ctx)
	if err != nil {
		return entities.SummaryStats{}, err
	}

	dreams := 0
	for _, in := range interests {
		if in.Type == entities.InterestTypeDream {
			dreams++
		}
	}

	return entities.SummaryStats{
		Visitors:      visitors,
		Messages:      len(messages),
		Payments:      len(payments),
		DreamRequests: dreams,
	}, nil
}

// ServiceDemand groups interests by exact service name and counts each
// group. Two interests naming the service differently count separately:
// dream requests carry free-text names. Buckets come back sorted by count
// descending, name ascending on ties so the chart is stable under input
// reordering.
func (u *DashboardUseCase) ServiceDemand(ctx context.Context) ([]entities.DemandBucket, error) {
	interests, err := u.repo.Interests(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, in := range interests {
		counts[in.ServiceName]++
	}

	buckets := make([]entities.DemandBucket, 0, len(counts))
	for name, count := range counts {
		buckets = append(buckets, entities.DemandBucket{
			Label:       truncateLabel(name),
			ServiceName: name,
			Count:       count,
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].ServiceName < buckets[j].ServiceName
	})
	return buckets, nil
}

// PaymentStatusDistribution always yields the three fixed buckets, zero
// counts included, so an empty collection still renders a chart.
func (u *DashboardUseCase) PaymentStatusDistribution(ctx context.Context) ([]entities.StatusBucket, error) {
	payments, err := u.repo.Payments(ctx)
	if err != nil {
		return nil, err
	}

	buckets := []entities.StatusBucket{
		{Status: entities.PaymentStatusPending},
		{Status: entities.PaymentStatusApproved},
		{Status: entities.PaymentStatusRejected},
	}
	for _, p := range payments {
		for i := range buckets {
			if buckets[i].Status == p.Status {
				buckets[i].Count++
			}
		}
	}
	return buckets, nil
}

func (u *DashboardUseCase) FilteredPayments(ctx context.Context, filter entities.StatusFilter) ([]entities.PaymentRequest, error) {
	payments, err := u.repo.Payments(ctx)
	if err != nil {
		return nil, err
	}
	if filter == "" || filter == entities.StatusFilterAll {
		return payments, nil
	}

	out := make([]entities.PaymentRequest, 0, len(payments))
	for _, p := range payments {
		if entities.StatusFilter(p.Status) == filter {
			out = append(out, p)
		}
	}
	return out, nil
}

// FilteredInterests narrows by exact match against the untruncated service
// name. A name with zero matches yields an empty view, not an error.
func (u *DashboardUseCase) FilteredInterests(ctx context.Context, serviceName string) ([]entities.ServiceInterest, error) {
	interests, err := u.repo.Interests(ctx)
	if err != nil {
		return nil, err
	}
	if serviceName == "" {
		return interests, nil
	}

	out := make([]entities.ServiceInterest, 0, len(interests))
	for _, in := range interests {
		if in.ServiceName == serviceName {
			out = append(out, in)
		}
	}
	return out, nil
}

func (u *DashboardUseCase) View(ctx context.Context, state entities.FilterState) (DashboardView, error) {
	if state.Status == "" {
		state.Status = entities.StatusFilterAll
	}
	if state.ActiveTab == "" {
		state.ActiveTab = entities.AdminTabPayments
	}

	stats, err := u.Summary(ctx)
	if err != nil {
		return DashboardView{}, err
	}
	demand, err := u.ServiceDemand(ctx)
	if err != nil {
		return DashboardView{}, err
	}
	distribution, err := u.PaymentStatusDistribution(ctx)
	if err != nil {
		return DashboardView{}, err
	}
	payments, err := u.FilteredPayments(ctx, state.Status)
	if err != nil {
		return DashboardView{}, err
	}
	interests, err := u.FilteredInterests(ctx, state.Service)
	if err != nil {
		return DashboardView{}, err
	}
	messages, err := u.repo.Messages(ctx)
	if err != nil {
		return DashboardView{}, err
	}

	return DashboardView{
		Stats:         stats,
		Demand:        demand,
		PaymentStatus: distribution,
		Filters:       state,
		Payments:      payments,
		Interests:     interests,
		Messages:      messages,
	}, nil
}

func truncateLabel(name string) string {
	runes := []rune(name)
	if len(runes) <= demandLabelMaxRunes {
		return name
	}
	return string(runes[:demandLabelMaxRunes]) + "..."
}
