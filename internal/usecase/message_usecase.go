package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"thaki_platform/internal/domain/entities"
	"thaki_platform/internal/usecase/interfaces"
)

var ErrMissingMessageFields = errors.New("missing message fields")

// IMessageUseCase stores contact-form submissions. Append-only, no status.

type IMessageUseCase interface {
	AddMessage(ctx context.Context, in entities.ContactMessage) (entities.ContactMessage, error)
	ListMessages(ctx context.Context) ([]entities.ContactMessage, error)
}

type MessageUseCase struct {
	repo interfaces.IRecordRepository
}

var _ IMessageUseCase = (*MessageUseCase)(nil)

func NewMessageUseCase(repo interfaces.IRecordRepository) *MessageUseCase {
	return &MessageUseCase{repo: repo}
}

func (u *MessageUseCase) AddMessage(ctx context.Context, in entities.ContactMessage) (entities.ContactMessage, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
	in.Type = strings.TrimSpace(in.Type)
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return entities.ContactMessage{}, ErrMissingMessageFields
	}
	if in.Type == "" {
		in.Type = "general"
	}

	in.ID = ensureRecordID(in.ID)
	in.Date = ensureRecordDate(in.Date)

	list, err := u.repo.Messages(ctx)
	if err != nil {
		return entities.ContactMessage{}, err
	}
	list = append(list, in)
	if err := u.repo.SaveMessages(ctx, list); err != nil {
		return entities.ContactMessage{}, err
	}
	log.Printf("[message][usecase] add success id=%s type=%q", in.ID, in.Type)
	return in, nil
}

func (u *MessageUseCase) ListMessages(ctx context.Context) ([]entities.ContactMessage, error) {
	return u.repo.Messages(ctx)
}
