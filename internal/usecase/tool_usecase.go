package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"thaki_platform/internal/domain/catalog"
	"thaki_platform/internal/usecase/interfaces"
)

var (
	ErrUnknownTool        = errors.New("unknown tool")
	ErrMissingToolInput   = errors.New("missing tool input")
	ErrServiceUnavailable = errors.New("ai service unavailable")
)

// ToolResult is the outcome of one tool run: markdown text or an image
// data URI, depending on the tool kind.
type ToolResult struct {
	Kind    catalog.ToolKind `json:"kind"`
	Content string           `json:"content"`
}

// IToolUseCase drives the AI tool catalog. Every run is a single attempt:
// any gateway failure surfaces as one generic unavailable condition with no
// retry and no partial result.

type IToolUseCase interface {
	Tools() []catalog.ToolConfig
	RunTool(ctx context.Context, toolID string, inputs map[string]string, language string) (ToolResult, error)
	HeroImage(ctx context.Context) (string, error)
}

type ToolUseCase struct {
	repo    interfaces.IRecordRepository
	gateway interfaces.IGenerativeGateway
}

var _ IToolUseCase = (*ToolUseCase)(nil)

func NewToolUseCase(repo interfaces.IRecordRepository, gateway interfaces.IGenerativeGateway) *ToolUseCase {
	return &ToolUseCase{repo: repo, gateway: gateway}
}

func (u *ToolUseCase) Tools() []catalog.ToolConfig {
	return catalog.Tools()
}

func (u *ToolUseCase) RunTool(ctx context.Context, toolID string, inputs map[string]string, language string) (ToolResult, error) {
	tool, ok := catalog.ToolByID(strings.TrimSpace(toolID))
	if !ok {
		return ToolResult{}, ErrUnknownTool
	}

	for _, in := range tool.Inputs {
		if in.Required && strings.TrimSpace(inputs[in.Label]) == "" {
			return ToolResult{}, fmt.Errorf("%w: %s", ErrMissingToolInput, in.Label)
		}
	}

	if u.gateway == nil {
		log.Printf("[tool][usecase] gateway not configured tool=%s", tool.ID)
		return ToolResult{}, ErrServiceUnavailable
	}

	prompt := buildToolPrompt(tool, inputs, language)

	var (
		content string
		err     error
	)
	switch tool.Kind {
	case catalog.ToolKindImage:
		content, err = u.gateway.GenerateImage(ctx, prompt)
	default:
		content, err = u.gateway.GenerateText(ctx, prompt)
	}
	if err != nil {
		log.Printf("[tool][usecase] run failed tool=%s err=%v", tool.ID, err)
		return ToolResult{}, ErrServiceUnavailable
	}

	log.Printf("[tool][usecase] run success tool=%s kind=%s output_len=%d", tool.ID, tool.Kind, len(content))
	return ToolResult{Kind: tool.Kind, Content: content}, nil
}

// HeroImage returns the day's hero background, generating and caching it on
// first access. Generation trouble falls back to the static image and is
// never an error to the page.
func (u *ToolUseCase) HeroImage(ctx context.Context) (string, error) {
	cached, err := u.repo.HeroImage(ctx)
	if err != nil {
		return "", err
	}
	if cached != "" {
		return cached, nil
	}

	if u.gateway == nil {
		return catalog.HeroImageFallbackURL, nil
	}

	img, err := u.gateway.GenerateImage(ctx, catalog.HeroImagePrompt)
	if err != nil {
		log.Printf("[tool][usecase] hero generation failed, using fallback err=%v", err)
		return catalog.HeroImageFallbackURL, nil
	}

	if err := u.repo.SetHeroImage(ctx, img); err != nil {
		log.Printf("[tool][usecase] hero cache write failed err=%v", err)
	}
	return img, nil
}

// buildToolPrompt assembles the prompt deterministically: the tool's fixed
// task descriptor, the labeled inputs in sorted label order, and for text
// tools a strict output-language instruction matching the UI language.
func buildToolPrompt(tool catalog.ToolConfig, inputs map[string]string, language string) string {
	if tool.Kind == catalog.ToolKindImage {
		subject := strings.TrimSpace(inputs["Topic"])
		if subject == "" {
			subject = strings.TrimSpace(inputs["Description"])
		}
		return fmt.Sprintf("%s. %s, high quality, professional style.", tool.TaskDescriptor, subject)
	}

	labels := make([]string, 0, len(inputs))
	for label, value := range inputs {
		if strings.TrimSpace(value) == "" {
			continue
		}
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var b strings.Builder
	b.WriteString(tool.TaskDescriptor)
	b.WriteString("\n\nInputs:\n")
	for _, label := range labels {
		fmt.Fprintf(&b, "- %s: %s\n", label, strings.TrimSpace(inputs[label]))
	}
	fmt.Fprintf(&b, "\nPlease provide the output strictly in %s. Format nicely with Markdown.", languageName(language))
	return b.String()
}

func languageName(code string) string {
	if strings.EqualFold(strings.TrimSpace(code), "ar") {
		return "Arabic"
	}
	return "English"
}
