package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"thaki_platform/internal/domain/catalog"
	mock_interfaces "thaki_platform/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestToolUseCase_RunTool(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown tool", func(t *testing.T) {
		uc := NewToolUseCase(newTestRepo(), nil)

		_, err := uc.RunTool(ctx, "nope", nil, "en")
		if !errors.Is(err, ErrUnknownTool) {
			t.Fatalf("expected ErrUnknownTool, got %v", err)
		}
	})

	t.Run("missing required input", func(t *testing.T) {
		uc := NewToolUseCase(newTestRepo(), nil)

		_, err := uc.RunTool(ctx, "edu_quiz", map[string]string{"Topic": "  "}, "en")
		if !errors.Is(err, ErrMissingToolInput) {
			t.Fatalf("expected ErrMissingToolInput, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewToolUseCase(newTestRepo(), nil)

		_, err := uc.RunTool(ctx, "edu_quiz", map[string]string{"Topic": "Algebra"}, "en")
		if !errors.Is(err, ErrServiceUnavailable) {
			t.Fatalf("expected ErrServiceUnavailable, got %v", err)
		}
	})

	t.Run("text prompt is deterministic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIGenerativeGateway(ctrl)
		uc := NewToolUseCase(newTestRepo(), gateway)

		var got string
		gateway.EXPECT().GenerateText(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, prompt string) (string, error) {
				got = prompt
				return "quiz text", nil
			},
		)

		res, err := uc.RunTool(ctx, "edu_quiz", map[string]string{"Topic": "Algebra", "Difficulty": "Hard"}, "en")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Kind != catalog.ToolKindText || res.Content != "quiz text" {
			t.Fatalf("unexpected result: %+v", res)
		}

		if !strings.HasPrefix(got, "Generate 5 multiple choice questions") {
			t.Fatalf("prompt must start with the task descriptor: %q", got)
		}
		// Sorted label order: Difficulty before Topic.
		if !strings.Contains(got, "Inputs:\n- Difficulty: Hard\n- Topic: Algebra\n") {
			t.Fatalf("unexpected input block: %q", got)
		}
		if !strings.Contains(got, "strictly in English") {
			t.Fatalf("missing language instruction: %q", got)
		}
	})

	t.Run("arabic ui gets an arabic instruction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIGenerativeGateway(ctrl)
		uc := NewToolUseCase(newTestRepo(), gateway)

		gateway.EXPECT().GenerateText(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, prompt string) (string, error) {
				if !strings.Contains(prompt, "strictly in Arabic") {
					t.Fatalf("missing arabic instruction: %q", prompt)
				}
				return "ok", nil
			},
		)

		if _, err := uc.RunTool(ctx, "biz_writer", map[string]string{"Topic": "Launch"}, "ar"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("image tool calls the image path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIGenerativeGateway(ctrl)
		uc := NewToolUseCase(newTestRepo(), gateway)

		gateway.EXPECT().GenerateImage(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, prompt string) (string, error) {
				if !strings.HasPrefix(prompt, "A minimal, modern, vector-style logo design concept. Coffee brand") {
					t.Fatalf("unexpected image prompt: %q", prompt)
				}
				if !strings.HasSuffix(prompt, "high quality, professional style.") {
					t.Fatalf("unexpected image prompt suffix: %q", prompt)
				}
				return "data:image/jpeg;base64,img", nil
			},
		)

		res, err := uc.RunTool(ctx, "design_logo", map[string]string{"Description": "Coffee brand"}, "en")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Kind != catalog.ToolKindImage || res.Content != "data:image/jpeg;base64,img" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("gateway failure maps to unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIGenerativeGateway(ctrl)
		uc := NewToolUseCase(newTestRepo(), gateway)

		gateway.EXPECT().GenerateText(gomock.Any(), gomock.Any()).Return("", errors.New("quota exceeded"))

		_, err := uc.RunTool(ctx, "biz_writer", map[string]string{"Topic": "Launch"}, "en")
		if !errors.Is(err, ErrServiceUnavailable) {
			t.Fatalf("expected ErrServiceUnavailable, got %v", err)
		}
	})
}

func TestToolUseCase_HeroImage(t *testing.T) {
	ctx := context.Background()

	t.Run("generates and caches on first access", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIGenerativeGateway(ctrl)
		repo := newTestRepo()
		uc := NewToolUseCase(repo, gateway)

		gateway.EXPECT().GenerateImage(gomock.Any(), catalog.HeroImagePrompt).Return("data:image/jpeg;base64,hero", nil).Times(1)

		img, err := uc.HeroImage(ctx)
		if err != nil || img != "data:image/jpeg;base64,hero" {
			t.Fatalf("unexpected result img=%q err=%v", img, err)
		}

		// Second access is served from the cache, no gateway call.
		img, err = uc.HeroImage(ctx)
		if err != nil || img != "data:image/jpeg;base64,hero" {
			t.Fatalf("expected cached image, got img=%q err=%v", img, err)
		}
	})

	t.Run("generation failure falls back to the static url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIGenerativeGateway(ctrl)
		uc := NewToolUseCase(newTestRepo(), gateway)

		gateway.EXPECT().GenerateImage(gomock.Any(), gomock.Any()).Return("", errors.New("down"))

		img, err := uc.HeroImage(ctx)
		if err != nil {
			t.Fatalf("fallback must not error: %v", err)
		}
		if img != catalog.HeroImageFallbackURL {
			t.Fatalf("expected fallback url, got %q", img)
		}
	})

	t.Run("no gateway falls back to the static url", func(t *testing.T) {
		uc := NewToolUseCase(newTestRepo(), nil)

		img, err := uc.HeroImage(ctx)
		if err != nil || img != catalog.HeroImageFallbackURL {
			t.Fatalf("unexpected result img=%q err=%v", img, err)
		}
	})
}

func TestToolUseCase_Tools(t *testing.T) {
	uc := NewToolUseCase(newTestRepo(), nil)

	tools := uc.Tools()
	if len(tools) != 8 {
		t.Fatalf("expected 8 tools, got %d", len(tools))
	}
	for _, tool := range tools {
		if tool.ID == "" || tool.Name == "" || tool.TaskDescriptor == "" {
			t.Fatalf("incomplete tool entry: %+v", tool)
		}
	}
}
