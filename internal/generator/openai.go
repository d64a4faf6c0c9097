package generator

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const submitTool = "submit_questions"

// OpenAIGenerator generates questions with a hosted OpenAI model, forcing
// the answer through a function call so the arguments arrive as JSON.
type OpenAIGenerator struct {
	client  *openai.Client
	model   string
	lessons LessonSource
}

var _ Generator = (*OpenAIGenerator)(nil)

func NewOpenAIGenerator(apiKey, model string, lessons LessonSource) *OpenAIGenerator {
	return NewOpenAIGeneratorWithConfig(openai.DefaultConfig(apiKey), model, lessons)
}

// NewOpenAIGeneratorWithConfig allows pointing the client at another base URL.
func NewOpenAIGeneratorWithConfig(cfg openai.ClientConfig, model string, lessons LessonSource) *OpenAIGenerator {
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAIGenerator{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		lessons: lessons,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, lessonID string, count int, userID string) ([]RawQuestion, error) {
	lesson, err := g.lessons.GetLesson(ctx, lessonID)
	if err != nil {
		return nil, &GenerateError{Reason: "lesson lookup", Wrapped: err}
	}

	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			User:  userID,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: buildPrompt(lesson, count),
				},
			},
			Tools: []openai.Tool{
				{
					Type: openai.ToolTypeFunction,
					Function: &openai.FunctionDefinition{
						Name:        submitTool,
						Description: "Submit generated quiz questions",
						Parameters:  questionSchema,
					},
				},
			},
			ToolChoice: openai.ToolChoice{
				Type: openai.ToolTypeFunction,
				Function: openai.ToolFunction{
					Name: submitTool,
				},
			},
		},
	)
	if err != nil {
		return nil, &GenerateError{Reason: "chat completion", Wrapped: err}
	}

	if len(resp.Choices) == 0 {
		return nil, &GenerateError{Reason: "no choices in response"}
	}

	choice := resp.Choices[0]
	if len(choice.Message.ToolCalls) == 0 {
		return nil, &GenerateError{Reason: "no tool calls in response"}
	}

	call := choice.Message.ToolCalls[0]
	if call.Function.Name != submitTool {
		return nil, &GenerateError{Reason: fmt.Sprintf("unexpected tool call %q", call.Function.Name)}
	}

	var batch generatedBatch
	if err := json.Unmarshal([]byte(call.Function.Arguments), &batch); err != nil {
		return nil, &GenerateError{Reason: "invalid tool arguments", Wrapped: err}
	}

	return batch.Questions, nil
}

var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question": map[string]any{
						"type":        "string",
						"description": "The question text",
					},
					"type": map[string]any{
						"type": "string",
						"enum": []string{"MCQ", "TRUE_FALSE", "SHORT_ANSWER", "FILL_BLANK"},
					},
					"options": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "Options for MCQ questions only",
					},
					"correctAnswer": map[string]any{
						"type":        "string",
						"description": "Exact correct answer text",
					},
					"explanation": map[string]any{
						"type": "string",
					},
					"difficulty": map[string]any{
						"type": "string",
						"enum": []string{"EASY", "MEDIUM", "HARD"},
					},
					"points": map[string]any{
						"type": "integer",
					},
				},
				"required": []string{"question", "type", "correctAnswer"},
			},
		},
	},
	"required": []string{"questions"},
}
