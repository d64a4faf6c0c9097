package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// OllamaGenerator generates questions by calling an OpenAI-compatible LLM
// endpoint (Ollama, LM Studio, vLLM, etc.).
type OllamaGenerator struct {
	url     string       // e.g. "http://localhost:1234"
	model   string       // e.g. "qwen3-8b"
	lessons LessonSource
	client  *http.Client // reused across calls
}

// Compile-time check: *OllamaGenerator satisfies the Generator interface.
var _ Generator = (*OllamaGenerator)(nil)

// NewOllamaGenerator creates a generator that calls the given LLM endpoint.
func NewOllamaGenerator(url, model string, lessons LessonSource) *OllamaGenerator {
	return &OllamaGenerator{
		url:     url,
		model:   model,
		lessons: lessons,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// ============================================================================
// Generator interface
// ============================================================================

// maxAttempts is the total number of LLM calls per Generate, first try included.
const maxAttempts = 2

// generatedBatch is the JSON envelope both providers are asked for.
type generatedBatch struct {
	Questions []RawQuestion `json:"questions"`
}

// Generate asks the LLM for count questions about the lesson.
//
// A failed call or an unusable reply is retried, for at most maxAttempts
// calls in total.
func (g *OllamaGenerator) Generate(ctx context.Context, lessonID string, count int, userID string) ([]RawQuestion, error) {
	lesson, err := g.lessons.GetLesson(ctx, lessonID)
	if err != nil {
		return nil, &GenerateError{Reason: "lesson lookup", Wrapped: err}
	}

	prompt := buildPrompt(lesson, count)

	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := g.callLLM(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		jsonStr := extractJSON(result)
		if jsonStr == "" {
			lastErr = &GenerateError{Reason: "no JSON object found in LLM response"}
			continue
		}

		var batch generatedBatch
		if err := json.Unmarshal([]byte(jsonStr), &batch); err != nil {
			lastErr = &GenerateError{Reason: "invalid JSON from LLM", Wrapped: err}
			continue
		}

		if len(batch.Questions) == 0 {
			lastErr = &GenerateError{Reason: "LLM returned no questions"}
			continue
		}

		return batch.Questions, nil
	}

	return nil, &GenerateError{
		Reason:  fmt.Sprintf("failed after %d attempts", maxAttempts),
		Wrapped: lastErr,
	}
}

// ============================================================================
// LLM communication
// ============================================================================

type llmRequest struct {
	Model       string       `json:"model"`
	Messages    []llmMessage `json:"messages"`
	Temperature float64      `json:"temperature"`
}

type llmMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type llmResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// callLLM sends a single request to the LLM and returns the raw text response.
func (g *OllamaGenerator) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := llmRequest{
		Model: g.model,
		Messages: []llmMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM returned status %d", resp.StatusCode)
	}

	var llmResp llmResponse
	if err := json.NewDecoder(resp.Body).Decode(&llmResp); err != nil {
		return "", fmt.Errorf("failed to decode LLM response: %w", err)
	}

	if len(llmResp.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}

	content := llmResp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("LLM returned empty content")
	}

	return content, nil
}

// ============================================================================
// JSON extraction
// ============================================================================

// extractJSON finds the outermost JSON object in a string.
// It handles nested braces correctly and skips braces inside quoted strings.
func extractJSON(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if ch == '{' {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == '}' {
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
