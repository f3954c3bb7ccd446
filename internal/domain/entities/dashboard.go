package entities

// AdminTab identifies which table the admin dashboard is showing.

type AdminTab string

const (
	AdminTabPayments  AdminTab = "payments"
	AdminTabInterests AdminTab = "interests"
	AdminTabMessages  AdminTab = "messages"
)

// StatusFilter narrows the payments table. "all" disables the filter.

type StatusFilter string

const (
	StatusFilterAll      StatusFilter = "all"
	StatusFilterPending  StatusFilter = StatusFilter(PaymentStatusPending)
	StatusFilterApproved StatusFilter = StatusFilter(PaymentStatusApproved)
	StatusFilterRejected StatusFilter = StatusFilter(PaymentStatusRejected)
)

func (f StatusFilter) Valid() bool {
	switch f {
	case StatusFilterAll, StatusFilterPending, StatusFilterApproved, StatusFilterRejected:
		return true
	}
	return false
}

// FilterState holds the two independent dashboard filters plus the active
// tab. Service is the untruncated service name, empty when no bar is
// selected. Changing one filter never touches the other.
//
// Transitions are pure: each returns the next state and leaves the receiver
// untouched, so they can be driven from chart clicks, query parameters or
// tests alike.
type FilterState struct {
	Service   string       `json:"service,omitempty"`
	Status    StatusFilter `json:"status"`
	ActiveTab AdminTab     `json:"activeTab"`
}

// NewFilterState returns the dashboard's initial state: no filters, payments
// tab active.
func NewFilterState() FilterState {
	return FilterState{Status: StatusFilterAll, ActiveTab: AdminTabPayments}
}

// SelectService is a click on a demand-histogram bar: it sets the service
// filter and focuses the interests table.
func (s FilterState) SelectService(serviceName string) FilterState {
	s.Service = serviceName
	s.ActiveTab = AdminTabInterests
	return s
}

// SelectStatus is a click on a payment-distribution segment: it sets the
// status filter and focuses the payments table.
func (s FilterState) SelectStatus(status StatusFilter) FilterState {
	s.Status = status
	s.ActiveTab = AdminTabPayments
	return s
}

// ClearService restores the unfiltered interests view.
func (s FilterState) ClearService() FilterState {
	s.Service = ""
	return s
}

// ClearStatus restores the unfiltered payments view.
func (s FilterState) ClearStatus() FilterState {
	s.Status = StatusFilterAll
	return s
}

func (s FilterState) SwitchTab(tab AdminTab) FilterState {
	s.ActiveTab = tab
	return s
}

// DemandBucket is one bar of the demand-by-service histogram. Label is
// truncated for display; ServiceName stays the exact grouping/filter key.
type DemandBucket struct {
	Label       string `json:"label"`
	ServiceName string `json:"serviceName"`
	Count       int    `json:"count"`
}

// StatusBucket is one segment of the payment-status distribution.
type StatusBucket struct {
	Status PaymentStatus `json:"status"`
	Count  int           `json:"count"`
}

// SummaryStats feeds the dashboard summary strip.
type SummaryStats struct {
	Visitors      int `json:"visitors"`
	Messages      int `json:"messages"`
	Payments      int `json:"payments"`
	DreamRequests int `json:"dreamRequests"`
}
