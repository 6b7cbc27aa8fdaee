package llm

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/thalaconnect/bloodbot/internal/normalize"
)

// MockBackend is a rule-based stand-in for a real model, so the bot runs
// end-to-end without credentials. It only handles straightforward messages;
// anything it cannot read comes back as intent "other".
type MockBackend struct{}

func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

func (m *MockBackend) Model() string {
	return "mock"
}

var (
	mockNameRE = regexp.MustCompile(`(?i)(?:my name is|i am|i'm)\s+([a-z]+(?:\s+[a-z]+)?)`)
	mockCityRE = regexp.MustCompile(`(?i)\bin\s+([a-z]+(?:\s+[a-z]+)?)`)
	// candidate blood tokens: "A+", "o neg", "AB POSITIVE", ...
	mockBloodRE = regexp.MustCompile(`(?i)\b(ab|a|b|o)\s*(\+|-|pos\w*|neg\w*|plus)`)
)

// Complete only looks at the trailing "Message:" line of the user prompt.
func (m *MockBackend) Complete(_ context.Context, _, user string) (string, error) {
	msg := user
	if i := strings.Index(user, "Message: "); i >= 0 {
		msg = user[i+len("Message: "):]
	}
	if i := strings.Index(msg, "\nState:"); i >= 0 {
		msg = msg[:i]
	}

	out := map[string]any{
		"intent":     "other",
		"full_name":  nil,
		"blood_type": nil,
		"city":       nil,
	}

	low := strings.ToLower(msg)
	switch {
	case strings.Contains(low, "donate") || strings.Contains(low, "donor"):
		out["intent"] = "donor"
	case strings.Contains(low, "need") || strings.Contains(low, "require") || strings.Contains(low, "request"):
		out["intent"] = "request"
	}

	if tok := mockBloodRE.FindString(msg); tok != "" {
		if bt := normalize.BloodType(tok); bt != "" {
			out["blood_type"] = bt
		}
	}
	if sub := mockNameRE.FindStringSubmatch(msg); sub != nil {
		out["full_name"] = strings.TrimSpace(sub[1])
	}
	if sub := mockCityRE.FindStringSubmatch(msg); sub != nil {
		out["city"] = strings.TrimSpace(sub[1])
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
