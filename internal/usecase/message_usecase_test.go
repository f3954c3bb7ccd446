package usecase

import (
	"context"
	"errors"
	"testing"

	"thaki_platform/internal/domain/entities"
)

func TestMessageUseCase_AddMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		uc := NewMessageUseCase(newTestRepo())

		_, err := uc.AddMessage(ctx, entities.ContactMessage{Name: "A", Email: "a@x.com", Message: "  "})
		if !errors.Is(err, ErrMissingMessageFields) {
			t.Fatalf("expected ErrMissingMessageFields, got %v", err)
		}
	})

	t.Run("type defaults to general", func(t *testing.T) {
		uc := NewMessageUseCase(newTestRepo())

		out, err := uc.AddMessage(ctx, entities.ContactMessage{Name: "A", Email: "a@x.com", Message: "hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Type != "general" {
			t.Fatalf("expected general, got %q", out.Type)
		}
	})

	t.Run("explicit type is kept", func(t *testing.T) {
		uc := NewMessageUseCase(newTestRepo())

		out, err := uc.AddMessage(ctx, entities.ContactMessage{Name: "A", Email: "a@x.com", Message: "hello", Type: "support"})
		if err != nil || out.Type != "support" {
			t.Fatalf("unexpected result err=%v type=%q", err, out.Type)
		}

		list, err := uc.ListMessages(ctx)
		if err != nil || len(list) != 1 {
			t.Fatalf("message not persisted: err=%v list=%+v", err, list)
		}
	})
}
