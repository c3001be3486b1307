package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIStreamer implements CompletionStreamer on top of the OpenAI API.
type OpenAIStreamer struct {
	client *openai.Client
	model  string
}

// NewOpenAIStreamer builds a streamer from the environment. The API key is
// read from OPENAI_API_KEY with a container-secret fallback, the default
// model from OPENAI_MODEL.
func NewOpenAIStreamer() (*OpenAIStreamer, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	model := os.Getenv("OPENAI_MODEL")
	if apiKey == "" {
		secretPath := "/run/secrets/openai_api_key"
		apiKeyBytes, err := os.ReadFile(secretPath)
		if err == nil {
			apiKey = strings.TrimSpace(string(apiKeyBytes))
			slog.Info("Read the OpenAI API Key from container secrets")
		} else {
			slog.Error("OPENAI_API_KEY environment variable not set and secret not found", "path", secretPath)
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}
	if model == "" {
		model = "gpt-5-mini"
		slog.Warn("OPENAI_MODEL not set, defaulting to gpt-5-mini")
	}
	slog.Info("Initializing OpenAI streaming client", "model", model)
	return &OpenAIStreamer{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// NewOpenAIStreamerWithConfig builds a streamer against a custom endpoint.
// Used by tests to point at a mock server.
func NewOpenAIStreamerWithConfig(cfg openai.ClientConfig, model string) *OpenAIStreamer {
	return &OpenAIStreamer{client: openai.NewClientWithConfig(cfg), model: model}
}

// Model returns the default model requested for completions.
func (o *OpenAIStreamer) Model() string {
	return o.model
}

// Stream implements the CompletionStreamer interface.
func (o *OpenAIStreamer) Stream(ctx context.Context, req StreamRequest) (CompletionStream, error) {
	model := req.Model
	if model == "" {
		model = o.model
	}
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Input))
	for _, m := range req.Input {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	oreq := openai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
		Stream:   true,
	}
	if req.MaxOutputTokens > 0 {
		oreq.MaxCompletionTokens = req.MaxOutputTokens
	}
	if req.ReasoningEffort != "" {
		oreq.ReasoningEffort = req.ReasoningEffort
	}

	slog.Debug("Opening completion stream", "model", model, "max_output_tokens", req.MaxOutputTokens)
	stream, err := o.client.CreateChatCompletionStream(ctx, oreq)
	if err != nil {
		return nil, fmt.Errorf("create completion stream: %w", err)
	}
	return &openAIStream{inner: stream}, nil
}

type openAIStream struct {
	inner  *openai.ChatCompletionStream
	closed bool
}

// Recv translates the next OpenAI chunk into a provider event.
func (s *openAIStream) Recv() (Event, error) {
	resp, err := s.inner.Recv()
	if errors.Is(err, io.EOF) {
		return Event{}, io.EOF
	}
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return Event{Type: EventError, Err: apiErr.Message}, nil
		}
		return Event{}, err
	}
	if len(resp.Choices) == 0 {
		return Event{Type: EventDelta}, nil
	}
	choice := resp.Choices[0]
	if choice.FinishReason != "" && choice.FinishReason != openai.FinishReasonNull {
		return Event{
			Type:         EventCompleted,
			Model:        resp.Model,
			FinishReason: string(choice.FinishReason),
		}, nil
	}
	return Event{Type: EventDelta, Text: choice.Delta.Content}, nil
}

// Close aborts the underlying HTTP stream.
func (s *openAIStream) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.inner.Close()
}
