package entities

import "testing"

func TestStatusFilter_Valid(t *testing.T) {
	valid := []StatusFilter{StatusFilterAll, StatusFilterPending, StatusFilterApproved, StatusFilterRejected}
	for _, f := range valid {
		if !f.Valid() {
			t.Fatalf("expected %q valid", f)
		}
	}
	for _, f := range []StatusFilter{"", "cancelled", "Pending"} {
		if f.Valid() {
			t.Fatalf("expected %q invalid", f)
		}
	}
}

func TestPaymentStatus_Terminal(t *testing.T) {
	if PaymentStatusPending.Terminal() {
		t.Fatalf("pending must not be terminal")
	}
	if !PaymentStatusApproved.Terminal() || !PaymentStatusRejected.Terminal() {
		t.Fatalf("approved and rejected must be terminal")
	}
	if PaymentStatusPending.Resolution() {
		t.Fatalf("pending is not a resolution")
	}
}

func TestFilterState_Transitions(t *testing.T) {
	t.Run("initial state", func(t *testing.T) {
		s := NewFilterState()
		if s.Service != "" || s.Status != StatusFilterAll || s.ActiveTab != AdminTabPayments {
			t.Fatalf("unexpected initial state: %+v", s)
		}
	})

	t.Run("select service switches to interests tab", func(t *testing.T) {
		s := NewFilterState().SelectService("AI Solutions")
		if s.Service != "AI Solutions" {
			t.Fatalf("service not set: %+v", s)
		}
		if s.ActiveTab != AdminTabInterests {
			t.Fatalf("expected interests tab, got %s", s.ActiveTab)
		}
	})

	t.Run("select status switches to payments tab", func(t *testing.T) {
		s := NewFilterState().SwitchTab(AdminTabMessages).SelectStatus(StatusFilterApproved)
		if s.Status != StatusFilterApproved {
			t.Fatalf("status not set: %+v", s)
		}
		if s.ActiveTab != AdminTabPayments {
			t.Fatalf("expected payments tab, got %s", s.ActiveTab)
		}
	})

	t.Run("filters are independent", func(t *testing.T) {
		s := NewFilterState().SelectService("Web Development").SelectStatus(StatusFilterPending)
		if s.Service != "Web Development" {
			t.Fatalf("status change must not touch service: %+v", s)
		}

		s = s.ClearStatus()
		if s.Status != StatusFilterAll {
			t.Fatalf("status not cleared: %+v", s)
		}
		if s.Service != "Web Development" {
			t.Fatalf("clearing status must not touch service: %+v", s)
		}

		s = s.ClearService()
		if s.Service != "" {
			t.Fatalf("service not cleared: %+v", s)
		}
	})

	t.Run("transitions leave the receiver untouched", func(t *testing.T) {
		base := NewFilterState()
		_ = base.SelectService("x")
		_ = base.SelectStatus(StatusFilterRejected)
		if base.Service != "" || base.Status != StatusFilterAll {
			t.Fatalf("receiver mutated: %+v", base)
		}
	})
}
