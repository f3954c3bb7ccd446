package usecase

import (
	"context"

	"thaki_platform/internal/usecase/interfaces"
)

// IVisitorUseCase tracks the site-wide visit counter: one increment per
// application load, no decrement anywhere.

type IVisitorUseCase interface {
	RecordVisit(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
}

type VisitorUseCase struct {
	repo interfaces.IRecordRepository
}

var _ IVisitorUseCase = (*VisitorUseCase)(nil)

func NewVisitorUseCase(repo interfaces.IRecordRepository) *VisitorUseCase {
	return &VisitorUseCase{repo: repo}
}

func (u *VisitorUseCase) RecordVisit(ctx context.Context) (int, error) {
	return u.repo.IncrementVisitorCount(ctx)
}

func (u *VisitorUseCase) Count(ctx context.Context) (int, error) {
	return u.repo.VisitorCount(ctx)
}
