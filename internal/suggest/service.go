package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Placeholder texts shown when no suggestion could be produced.
// Failures degrade to these; they are rendered as inert content,
// never as an error dialog.
const (
	PlaceholderNoKey = "API key not configured."
	PlaceholderNone  = "No description generated."
)

// Service wraps the generation client with the two operations the
// editing surface consumes. Every failure degrades to an empty or
// placeholder result — nothing past this boundary ever errors.
type Service struct {
	client Client
}

// NewService creates a Service backed by a generation client.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// DescribeIssue drafts a work description for an issue title and type.
// Returns a placeholder on missing credentials or any failure.
func (s *Service) DescribeIssue(ctx context.Context, title, issueType string) string {
	prompt := fmt.Sprintf(`You are a project manager assistant for a construction and infrastructure company.
Write a professional and detailed description for an issue with the title: %q and type: %q.
Include Acceptance Criteria and potential technical considerations. Keep it concise but useful.`,
		title, issueType)

	resp, err := s.client.Generate(ctx, GenerateRequest{Kind: "description", Prompt: prompt})
	if err != nil {
		if err == ErrNoCredentials {
			return PlaceholderNoKey
		}
		return PlaceholderNone
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return PlaceholderNone
	}
	return text
}

// SuggestSubtasks proposes 3-5 subtasks for a description. Returns nil
// on missing credentials, failure, or unparseable output.
func (s *Service) SuggestSubtasks(ctx context.Context, description string) []string {
	prompt := fmt.Sprintf(`Based on this task description, suggest 3-5 subtasks to break it down. Return ONLY a JSON array of strings.
Description: %s`, description)

	resp, err := s.client.Generate(ctx, GenerateRequest{Kind: "subtasks", Prompt: prompt, WantJSON: true})
	if err != nil {
		return nil
	}

	var subtasks []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Text)), &subtasks); err != nil {
		return nil
	}
	return subtasks
}
