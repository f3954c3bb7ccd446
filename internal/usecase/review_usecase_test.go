package usecase

import (
	"context"
	"errors"
	"testing"

	"thaki_platform/internal/domain/entities"
)

func TestReviewUseCase_AddReview(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		uc := NewReviewUseCase(newTestRepo())

		_, err := uc.AddReview(ctx, entities.Review{Name: "A", Rating: 5, Comment: "   "})
		if !errors.Is(err, ErrMissingReviewFields) {
			t.Fatalf("expected ErrMissingReviewFields, got %v", err)
		}
	})

	t.Run("rating bounds", func(t *testing.T) {
		uc := NewReviewUseCase(newTestRepo())

		for _, rating := range []int{0, -1, 6} {
			_, err := uc.AddReview(ctx, entities.Review{Name: "A", Rating: rating, Comment: "ok"})
			if !errors.Is(err, ErrInvalidRating) {
				t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
			}
		}
	})

	t.Run("reviews come back newest first", func(t *testing.T) {
		uc := NewReviewUseCase(newTestRepo())

		for _, name := range []string{"first", "second", "third"} {
			if _, err := uc.AddReview(ctx, entities.Review{Name: name, Rating: 5, Comment: "nice"}); err != nil {
				t.Fatalf("add failed: %v", err)
			}
		}

		list, err := uc.ListReviews(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(list) != 3 {
			t.Fatalf("expected 3 reviews, got %d", len(list))
		}
		if list[0].Name != "third" || list[2].Name != "first" {
			t.Fatalf("expected newest first, got %+v", list)
		}
	})
}
