// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/danakim/aegisboard/internal/logging"
)

const systemMessage = "You are an expert IT security auditor specializing in access control analysis and risk assessment."

const promptTemplate = `Analyze the following IT access log data and provide security insights:

Data Summary:
- Total Access Logs: %d
- Security Violations: %d
- Failed Login Attempts: %d
- Privilege Escalations: %d
- Off-Hours Access: %d
- High-Risk Users: %d

Provide a concise professional analysis including:
1. Key security concerns identified
2. Risk assessment summary
3. Top 3 actionable recommendations

Keep response under 300 words, formatted for an executive dashboard.`

// chatClient is the slice of the OpenAI client the summarizer uses.
// Satisfied by *openai.Client.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAI is a Summarizer backed by the OpenAI chat completion API.
type OpenAI struct {
	client  chatClient
	model   string
	timeout time.Duration
}

// NewOpenAI creates an OpenAI summarizer. model and timeout come from
// configuration; timeout bounds each completion call.
func NewOpenAI(apiKey, model string, timeout time.Duration) *OpenAI {
	return &OpenAI{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}
}

// Summarize implements Summarizer. Returns the model's analysis text,
// or an error the caller should replace with Fallback.
func (o *OpenAI) Summarize(ctx context.Context, m Metrics) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(m)},
		},
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("chat completion failed")
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty response")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("chat completion: empty content")
	}
	return content, nil
}

func buildPrompt(m Metrics) string {
	return fmt.Sprintf(promptTemplate,
		m.TotalLogs,
		m.Violations,
		m.FailedAttempts,
		m.PrivilegeEscalations,
		m.OffHoursAccess,
		m.HighRiskUsers,
	)
}
