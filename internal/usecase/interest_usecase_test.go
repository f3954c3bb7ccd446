package usecase

import (
	"context"
	"errors"
	"testing"

	"thaki_platform/internal/adapter/persistence/repository"
	"thaki_platform/internal/domain/entities"
)

func newTestRepo() *repository.RecordRepository {
	return repository.NewRecordRepository(repository.NewMemoryKVStore())
}

func TestInterestUseCase_AddInterest(t *testing.T) {
	ctx := context.Background()

	t.Run("missing required fields", func(t *testing.T) {
		uc := NewInterestUseCase(newTestRepo())

		_, err := uc.AddInterest(ctx, entities.ServiceInterest{ServiceName: "AI", CustomerName: "  ", Email: "a@b.com"})
		if !errors.Is(err, ErrMissingInterestFields) {
			t.Fatalf("expected ErrMissingInterestFields, got %v", err)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		uc := NewInterestUseCase(newTestRepo())

		_, err := uc.AddInterest(ctx, entities.ServiceInterest{ServiceName: "AI", CustomerName: "C", Email: "a@b.com", Type: "vip"})
		if !errors.Is(err, ErrInvalidInterestType) {
			t.Fatalf("expected ErrInvalidInterestType, got %v", err)
		}
	})

	t.Run("standard interest drops project fields", func(t *testing.T) {
		uc := NewInterestUseCase(newTestRepo())

		out, err := uc.AddInterest(ctx, entities.ServiceInterest{
			ServiceName:  "AI Solutions",
			CustomerName: "Carlos",
			Email:        "c@x.com",
			ProjectType:  "App",
			Budget:       "5k",
			Timeline:     "1 month",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Type != entities.InterestTypeStandard {
			t.Fatalf("expected default standard type, got %s", out.Type)
		}
		if out.ProjectType != "" || out.Budget != "" || out.Timeline != "" {
			t.Fatalf("project fields must be cleared: %+v", out)
		}
		if out.ID == "" || out.Date.IsZero() {
			t.Fatalf("id and date must be assigned: %+v", out)
		}
	})

	t.Run("dream request requires project fields", func(t *testing.T) {
		uc := NewInterestUseCase(newTestRepo())

		_, err := uc.AddInterest(ctx, entities.ServiceInterest{
			ServiceName:  "Custom Robots",
			CustomerName: "Dana",
			Email:        "d@x.com",
			Type:         entities.InterestTypeDream,
			ProjectType:  "Hardware",
			Budget:       "  ",
			Timeline:     "6 months",
		})
		if !errors.Is(err, ErrMissingDreamFields) {
			t.Fatalf("expected ErrMissingDreamFields, got %v", err)
		}
	})

	t.Run("dream request keeps project fields", func(t *testing.T) {
		uc := NewInterestUseCase(newTestRepo())

		out, err := uc.AddInterest(ctx, entities.ServiceInterest{
			ServiceName:  "Custom Robots",
			CustomerName: "Dana",
			Email:        "d@x.com",
			Type:         entities.InterestTypeDream,
			ProjectType:  "Hardware",
			Budget:       "50k",
			Timeline:     "6 months",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ProjectType != "Hardware" || out.Budget != "50k" || out.Timeline != "6 months" {
			t.Fatalf("project fields lost: %+v", out)
		}
	})

	t.Run("interests append in submission order", func(t *testing.T) {
		uc := NewInterestUseCase(newTestRepo())

		for _, name := range []string{"first", "second", "third"} {
			if _, err := uc.AddInterest(ctx, entities.ServiceInterest{ServiceName: "AI", CustomerName: name, Email: "x@x.com"}); err != nil {
				t.Fatalf("add failed: %v", err)
			}
		}

		list, err := uc.ListInterests(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(list) != 3 || list[0].CustomerName != "first" || list[2].CustomerName != "third" {
			t.Fatalf("unexpected order: %+v", list)
		}
	})
}
