package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"thaki_platform/internal/domain/catalog"
	"thaki_platform/internal/domain/entities"
	"thaki_platform/internal/usecase/interfaces"
)

var (
	ErrMissingApplicationFields = errors.New("missing application fields")
	ErrUnknownJob               = errors.New("unknown job listing")
)

// IApplicationUseCase stores careers-page applications against the static
// job catalog.

type IApplicationUseCase interface {
	Apply(ctx context.Context, in entities.JobApplication) (entities.JobApplication, error)
	ListApplications(ctx context.Context) ([]entities.JobApplication, error)
}

type ApplicationUseCase struct {
	repo interfaces.IRecordRepository
}

var _ IApplicationUseCase = (*ApplicationUseCase)(nil)

func NewApplicationUseCase(repo interfaces.IRecordRepository) *ApplicationUseCase {
	return &ApplicationUseCase{repo: repo}
}

func (u *ApplicationUseCase) Apply(ctx context.Context, in entities.JobApplication) (entities.JobApplication, error) {
	in.JobID = strings.TrimSpace(in.JobID)
	in.ApplicantName = strings.TrimSpace(in.ApplicantName)
	in.Email = strings.TrimSpace(in.Email)
	if in.ApplicantName == "" || in.Email == "" || in.CV == "" {
		return entities.JobApplication{}, ErrMissingApplicationFields
	}

	job, ok := catalog.JobByID(in.JobID)
	if !ok {
		return entities.JobApplication{}, ErrUnknownJob
	}
	if strings.TrimSpace(in.Position) == "" {
		in.Position = job.Title
	}

	in.ID = ensureRecordID(in.ID)
	in.Date = ensureRecordDate(in.Date)

	list, err := u.repo.Applications(ctx)
	if err != nil {
		return entities.JobApplication{}, err
	}
	list = append(list, in)
	if err := u.repo.SaveApplications(ctx, list); err != nil {
		return entities.JobApplication{}, err
	}
	log.Printf("[application][usecase] apply success id=%s job_id=%s", in.ID, in.JobID)
	return in, nil
}

func (u *ApplicationUseCase) ListApplications(ctx context.Context) ([]entities.JobApplication, error) {
	return u.repo.Applications(ctx)
}
