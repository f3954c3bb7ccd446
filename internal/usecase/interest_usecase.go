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
	ErrMissingInterestFields = errors.New("missing interest fields")
	ErrInvalidInterestType   = errors.New("invalid interest type")
	ErrMissingDreamFields    = errors.New("missing dream request fields")
)

// IInterestUseCase captures service-interest leads from the demo and
// service-card forms.

type IInterestUseCase interface {
	AddInterest(ctx context.Context, in entities.ServiceInterest) (entities.ServiceInterest, error)
	ListInterests(ctx context.Context) ([]entities.ServiceInterest, error)
}

type InterestUseCase struct {
	repo interfaces.IRecordRepository
}

var _ IInterestUseCase = (*InterestUseCase)(nil)

func NewInterestUseCase(repo interfaces.IRecordRepository) *InterestUseCase {
	return &InterestUseCase{repo: repo}
}

func (u *InterestUseCase) AddInterest(ctx context.Context, in entities.ServiceInterest) (entities.ServiceInterest, error) {
	in.ServiceName = strings.TrimSpace(in.ServiceName)
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.ServiceName == "" || in.CustomerName == "" || in.Email == "" {
		return entities.ServiceInterest{}, ErrMissingInterestFields
	}

	if in.Type == "" {
		in.Type = entities.InterestTypeStandard
	}
	switch in.Type {
	case entities.InterestTypeStandard:
		// Project fields belong to dream requests only.
		in.ProjectType = ""
		in.Budget = ""
		in.Timeline = ""
	case entities.InterestTypeDream:
		if strings.TrimSpace(in.ProjectType) == "" || strings.TrimSpace(in.Budget) == "" || strings.TrimSpace(in.Timeline) == "" {
			return entities.ServiceInterest{}, ErrMissingDreamFields
		}
	default:
		return entities.ServiceInterest{}, ErrInvalidInterestType
	}

	in.ID = ensureRecordID(in.ID)
	in.Date = ensureRecordDate(in.Date)

	list, err := u.repo.Interests(ctx)
	if err != nil {
		return entities.ServiceInterest{}, err
	}
	list = append(list, in)
	if err := u.repo.SaveInterests(ctx, list); err != nil {
		return entities.ServiceInterest{}, err
	}
	log.Printf("[interest][usecase] add success id=%s service=%q type=%s", in.ID, in.ServiceName, in.Type)
	return in, nil
}

func (u *InterestUseCase) ListInterests(ctx context.Context) ([]entities.ServiceInterest, error) {
	return u.repo.Interests(ctx)
}
