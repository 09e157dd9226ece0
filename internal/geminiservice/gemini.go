/*
Package geminiservice is a small client for Gemini's generateContent
endpoint in structured-output mode: every call carries a response schema
and the model's answer is decoded straight into a Go value.
*/
package geminiservice

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"HealthCompanion/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// --- Gemini API Configuration ---
const (
	maxRetries         = 3
	initialBackoff     = 1 * time.Second
	requestTimeout     = 30 * time.Second
	structuredMimeType = "application/json"
)

var (
	// ErrNotConfigured is returned when no API key is set.
	ErrNotConfigured = errors.New("gemini: api key not configured")
	// ErrNoContent is returned when the model answers without a text part.
	ErrNoContent = errors.New("gemini: no content in response")
)

// --- Structs for Gemini API Request/Response ---

type GeminiPayload struct {
	Contents          []GeminiContent   `json:"contents"`
	SystemInstruction *GeminiContent    `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

type GeminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData carries a base64-encoded file (an image or PDF) in the prompt.
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// NewInlineData encodes raw bytes for an inline prompt part.
func NewInlineData(mimeType string, raw []byte) *InlineData {
	return &InlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(raw)}
}

type GenerationConfig struct {
	ResponseMimeType string        `json:"responseMimeType"`
	ResponseSchema   *GeminiSchema `json:"responseSchema,omitempty"`
	Temperature      *float32      `json:"temperature,omitempty"`
}

type GeminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Request is one structured generation call.
type Request struct {
	System string
	Prompt string
	Schema *GeminiSchema
	// Inline is attached after the prompt text when set.
	Inline *InlineData
}

// Client calls a single Gemini model.
type Client struct {
	baseURL string
	model   string
	apiKey  string

	http    *http.Client
	backoff time.Duration
}

func NewClient(cfg config.GeminiConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: requestTimeout},
		backoff: initialBackoff,
	}
}

// Enabled reports whether the client has credentials.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

func (c *Client) endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
}

// GenerateJSON runs req and unmarshals the model's JSON answer into out.
func (c *Client) GenerateJSON(ctx context.Context, req Request, out any) error {
	text, err := c.Generate(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("failed to decode model output: %w", err)
	}
	return nil
}

// Generate runs req and returns the raw JSON text of the first candidate.
// Transport failures and non-200 responses are retried with exponential
// backoff; a malformed or empty success response is not.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	if !c.Enabled() {
		return "", ErrNotConfigured
	}
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		logger = &log.Logger
	}

	// Build the payload
	parts := []GeminiPart{{Text: req.Prompt}}
	if req.Inline != nil {
		parts = append(parts, GeminiPart{InlineData: req.Inline})
	}
	payload := GeminiPayload{
		Contents: []GeminiContent{{Role: "user", Parts: parts}},
		GenerationConfig: &GenerationConfig{
			ResponseMimeType: structuredMimeType,
			ResponseSchema:   req.Schema,
		},
	}
	if req.System != "" {
		payload.SystemInstruction = &GeminiContent{Parts: []GeminiPart{{Text: req.System}}}
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			wait := c.backoff * time.Duration(math.Pow(2, float64(i-1)))
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(wait):
			}
		}

		logger.Debug().Int("attempt", i+1).Str("model", c.model).Msg("Calling Gemini API")

		text, retry, err := c.do(ctx, payloadBytes)
		if err == nil {
			return text, nil
		}
		if !retry {
			return "", err
		}
		lastErr = err
		logger.Warn().Err(err).Int("attempt", i+1).Msg("Gemini call failed")
	}

	return "", fmt.Errorf("failed to call Gemini API after %d attempts: %w", maxRetries, lastErr)
}

// do performs one attempt. The bool result reports whether a failure is
// worth retrying.
func (c *Client) do(ctx context.Context, payload []byte) (string, bool, error) {
	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return "", false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", false, ctx.Err()
		}
		return "", true, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", true, fmt.Errorf("API returned non-200 status: %s, Body: %s", resp.Status, string(body))
	}

	var geminiResp GeminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", false, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, false, nil
	}
	return "", false, ErrNoContent
}
