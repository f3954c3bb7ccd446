package usecase

import (
	"context"
	"testing"
)

func TestVisitorUseCase(t *testing.T) {
	ctx := context.Background()
	uc := NewVisitorUseCase(newTestRepo())

	n, err := uc.Count(ctx)
	if err != nil || n != 12450 {
		t.Fatalf("expected seed count, got %d err=%v", n, err)
	}

	n, err = uc.RecordVisit(ctx)
	if err != nil || n != 12451 {
		t.Fatalf("expected 12451, got %d err=%v", n, err)
	}

	n, err = uc.Count(ctx)
	if err != nil || n != 12451 {
		t.Fatalf("expected persisted 12451, got %d err=%v", n, err)
	}
}
