package generator_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/tutorly/quizengine/internal/generator"
)

func TestOpenAIGenerator_ReadsToolCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatCompletionRequest
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Tools) != 1 || req.Tools[0].Function.Name != "submit_questions" {
			t.Errorf("expected submit_questions tool, got %+v", req.Tools)
		}
		if req.User != "user-7" {
			t.Errorf("expected user-7, got %q", req.User)
		}

		args := `{"questions":[{"question":"Which gas do plants absorb?","type":"MCQ","options":["O2","CO2"],"correctAnswer":"CO2","difficulty":"EASY"}]}`
		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{
					Role: openai.ChatMessageRoleAssistant,
					ToolCalls: []openai.ToolCall{{
						Type:     openai.ToolTypeFunction,
						Function: openai.FunctionCall{Name: "submit_questions", Arguments: args},
					}},
				},
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"

	g := generator.NewOpenAIGeneratorWithConfig(cfg, "", testLessons)
	qs, err := g.Generate(context.Background(), "lesson-1", 1, "user-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	if qs[0].CorrectAnswer != "CO2" || len(qs[0].Options) != 2 {
		t.Errorf("unexpected question: %+v", qs[0])
	}
}
