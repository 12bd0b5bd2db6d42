// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

type fakeChatClient struct {
	lastReq openai.ChatCompletionRequest
	resp    openai.ChatCompletionResponse
	err     error
}

func (f *fakeChatClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func chatResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	m := Metrics{
		TotalLogs:            1200,
		Violations:           84,
		FailedAttempts:       312,
		PrivilegeEscalations: 17,
		OffHoursAccess:       290,
		HighRiskUsers:        6,
	}

	prompt := buildPrompt(m)
	for _, want := range []string{
		"- Total Access Logs: 1200",
		"- Security Violations: 84",
		"- Failed Login Attempts: 312",
		"- Privilege Escalations: 17",
		"- Off-Hours Access: 290",
		"- High-Risk Users: 6",
		"Top 3 actionable recommendations",
		"under 300 words",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestOpenAISummarize(t *testing.T) {
	t.Parallel()

	fake := &fakeChatClient{resp: chatResponse("  All quiet on the network.  ")}
	o := &OpenAI{client: fake, model: "gpt-4o-mini", timeout: time.Second}

	got, err := o.Summarize(context.Background(), Metrics{TotalLogs: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "All quiet on the network." {
		t.Errorf("content = %q", got)
	}

	if fake.lastReq.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", fake.lastReq.Model)
	}
	if len(fake.lastReq.Messages) != 2 {
		t.Fatalf("expected system + user message, got %d", len(fake.lastReq.Messages))
	}
	if fake.lastReq.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("first message role = %q", fake.lastReq.Messages[0].Role)
	}
	if !strings.Contains(fake.lastReq.Messages[0].Content, "expert IT security auditor") {
		t.Errorf("system message = %q", fake.lastReq.Messages[0].Content)
	}
}

func TestOpenAISummarizeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fake *fakeChatClient
	}{
		{"upstream error", &fakeChatClient{err: errors.New("boom")}},
		{"no choices", &fakeChatClient{resp: openai.ChatCompletionResponse{}}},
		{"empty content", &fakeChatClient{resp: chatResponse("   ")}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o := &OpenAI{client: tt.fake, model: "gpt-4o-mini", timeout: time.Second}
			if _, err := o.Summarize(context.Background(), Metrics{}); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestDisabled(t *testing.T) {
	t.Parallel()

	_, err := Disabled{}.Summarize(context.Background(), Metrics{})
	if !errors.Is(err, ErrDisabled) {
		t.Fatalf("err = %v, want ErrDisabled", err)
	}
}

type stubSummarizer struct {
	out   string
	err   error
	calls int
}

func (s *stubSummarizer) Summarize(context.Context, Metrics) (string, error) {
	s.calls++
	return s.out, s.err
}

func TestBreakerPassthrough(t *testing.T) {
	t.Parallel()

	stub := &stubSummarizer{out: "analysis text"}
	b := NewBreaker(stub)

	got, err := b.Summarize(context.Background(), Metrics{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "analysis text" {
		t.Errorf("out = %q", got)
	}
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	stub := &stubSummarizer{err: errors.New("upstream down")}
	b := NewBreaker(stub)

	for i := 0; i < 3; i++ {
		if _, err := b.Summarize(context.Background(), Metrics{}); err == nil {
			t.Fatalf("call %d: expected error", i)
		}
	}

	calls := stub.calls
	if _, err := b.Summarize(context.Background(), Metrics{}); err == nil {
		t.Fatal("expected rejection from open breaker")
	}
	if stub.calls != calls {
		t.Errorf("open breaker reached the inner summarizer (%d calls)", stub.calls)
	}
}
