package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

// Fallback is the only failure surface the caller ever sees. The
// underlying cause is logged, never propagated.
const Fallback = "AI service unavailable."

const (
	defaultModel   = "llama3-8b-8192"
	defaultTimeout = 15 * time.Second
)

type Config struct {
	APIKey  string
	BaseURL string // OpenAI-compatible endpoint, e.g. Groq
	Model   string
	Timeout time.Duration
}

// Bridge forwards a user question plus a spending summary to an
// OpenAI-compatible chat completion service.
type Bridge struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	log     zerolog.Logger
}

func NewBridge(cfg Config, log zerolog.Logger) *Bridge {
	cc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		cc.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Bridge{
		client:  openai.NewClientWithConfig(cc),
		model:   model,
		timeout: timeout,
		log:     log,
	}
}

// Ask sends the question with the user's total spending prepended and
// returns the completion text. Any failure (network, non-2xx, malformed
// or empty response) collapses to Fallback. The upstream call always
// runs under a deadline.
func (b *Bridge) Ask(ctx context.Context, question string, totalExpense float64) string {
	prompt := fmt.Sprintf("User spent %.2f this month. %s", totalExpense, question)

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		b.log.Error().Err(err).Str("model", b.model).Msg("chat completion failed")
		return Fallback
	}
	if len(resp.Choices) == 0 {
		b.log.Error().Str("model", b.model).Msg("chat completion returned no choices")
		return Fallback
	}
	return resp.Choices[0].Message.Content
}
