package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"thaki_platform/internal/domain/entities"
	"thaki_platform/internal/usecase/interfaces"
)

var (
	ErrMissingReviewFields = errors.New("missing review fields")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
)

// IReviewUseCase manages the testimonials strip. Reviews are prepended so
// reads come back newest-first.

type IReviewUseCase interface {
	AddReview(ctx context.Context, in entities.Review) (entities.Review, error)
	ListReviews(ctx context.Context) ([]entities.Review, error)
}

type ReviewUseCase struct {
	repo interfaces.IRecordRepository
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(repo interfaces.IRecordRepository) *ReviewUseCase {
	return &ReviewUseCase{repo: repo}
}

func (u *ReviewUseCase) AddReview(ctx context.Context, in entities.Review) (entities.Review, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Comment = strings.TrimSpace(in.Comment)
	if in.Name == "" || in.Comment == "" {
		return entities.Review{}, ErrMissingReviewFields
	}
	if in.Rating < 1 || in.Rating > 5 {
		return entities.Review{}, ErrInvalidRating
	}

	in.ID = ensureRecordID(in.ID)
	in.Date = ensureRecordDate(in.Date)

	list, err := u.repo.Reviews(ctx)
	if err != nil {
		return entities.Review{}, err
	}
	list = append([]entities.Review{in}, list...)
	if err := u.repo.SaveReviews(ctx, list); err != nil {
		return entities.Review{}, err
	}
	log.Printf("[review][usecase] add success id=%s rating=%d", in.ID, in.Rating)
	return in, nil
}

func (u *ReviewUseCase) ListReviews(ctx context.Context) ([]entities.Review, error) {
	return u.repo.Reviews(ctx)
}
