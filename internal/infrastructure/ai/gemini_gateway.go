package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"thaki_platform/internal/usecase/interfaces"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	textModel      = "gemini-2.5-flash"
	imageModel     = "imagen-3.0-generate-001"
)

// GeminiGateway talks to the Gemini REST API over plain HTTP. One attempt
// per call; callers decide what a failure means.

type GeminiGateway struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

var _ interfaces.IGenerativeGateway = (*GeminiGateway)(nil)

func NewGeminiGateway(apiKey string) (*GeminiGateway, error) {
	if apiKey == "" {
		log.Printf("[tool][gateway] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}
	return &GeminiGateway{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiGateway) GenerateText(ctx context.Context, prompt string) (string, error) {
	reqBody := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	var resp generateContentResponse
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, textModel, g.apiKey)
	if err := g.post(ctx, url, reqBody, &resp); err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini: empty response")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

type predictRequest struct {
	Instances  []predictInstance `json:"instances"`
	Parameters predictParameters `json:"parameters"`
}

type predictInstance struct {
	Prompt string `json:"prompt"`
}

type predictParameters struct {
	SampleCount int    `json:"sampleCount"`
	AspectRatio string `json:"aspectRatio,omitempty"`
	MimeType    string `json:"outputMimeType,omitempty"`
}

type predictResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
	} `json:"predictions"`
}

// GenerateImage returns the generated image as a directly displayable
// data URI.
func (g *GeminiGateway) GenerateImage(ctx context.Context, prompt string) (string, error) {
	reqBody := predictRequest{
		Instances:  []predictInstance{{Prompt: prompt}},
		Parameters: predictParameters{SampleCount: 1, AspectRatio: "1:1", MimeType: "image/jpeg"},
	}

	var resp predictResponse
	url := fmt.Sprintf("%s/models/%s:predict?key=%s", g.baseURL, imageModel, g.apiKey)
	if err := g.post(ctx, url, reqBody, &resp); err != nil {
		return "", err
	}

	if len(resp.Predictions) == 0 || resp.Predictions[0].BytesBase64Encoded == "" {
		return "", errors.New("gemini: no image returned")
	}
	return "data:image/jpeg;base64," + resp.Predictions[0].BytesBase64Encoded, nil
}

func (g *GeminiGateway) post(ctx context.Context, url string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("call gemini: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gemini: status %d: %s", resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
