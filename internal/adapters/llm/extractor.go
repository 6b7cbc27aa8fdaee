// Package llm adapts natural-language extraction backends to the
// conversation flow. The Extractor tries an ordered list of
// capability-equivalent backends and degrades to an empty guess instead of
// failing, so a backend outage turns into a re-prompt, never a crash.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thalaconnect/bloodbot/internal/domain"
	"github.com/thalaconnect/bloodbot/internal/observability"
)

// Backend is one extraction model variant. Complete must return the raw model
// output for a system+user prompt pair; the Extractor owns parsing.
type Backend interface {
	Model() string
	Complete(ctx context.Context, system, user string) (string, error)
}

const defaultCallTimeout = 15 * time.Second

// Extractor implements domain.Extractor over an ordered backend list.
type Extractor struct {
	backends    []Backend
	callTimeout time.Duration
}

// NewExtractor builds an extractor that tries backends in order, stopping at
// the first success. Each backend model is attempted at most once.
func NewExtractor(backends ...Backend) *Extractor {
	return &Extractor{
		backends:    backends,
		callTimeout: defaultCallTimeout,
	}
}

// Extract sends the message plus current state to the backends and returns a
// best-effort structured guess. The second return value identifies the model
// that answered; on total failure it is "error:<cause>" and the guess is
// empty with IntentOther. It never returns an error.
func (e *Extractor) Extract(
	ctx context.Context,
	message, profileName string,
	state *domain.ConversationState,
) (domain.ExtractedFields, string) {
	user := buildUserPrompt(message, profileName, state)
	log := observability.LoggerFromContext(ctx)

	var lastErr error
	tried := map[string]bool{}

	for _, b := range e.backends {
		model := b.Model()
		if tried[model] {
			continue
		}
		tried[model] = true

		raw, err := e.complete(ctx, b, user)
		if err != nil {
			log.Warn("extraction backend failed", "model", model, "error", err)
			lastErr = err
			continue
		}

		fields, err := parseExtraction(raw)
		if err != nil {
			log.Warn("extraction output unparsable", "model", model, "error", err)
			lastErr = err
			continue
		}
		return fields, model
	}

	if lastErr == nil {
		lastErr = errors.New("no extraction backends configured")
	}
	return domain.ExtractedFields{Intent: domain.IntentOther}, "error:" + lastErr.Error()
}

func (e *Extractor) complete(ctx context.Context, b Backend, user string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()
	return b.Complete(callCtx, systemPrompt, user)
}

// extractionPayload mirrors the exact JSON contract demanded from the model.
type extractionPayload struct {
	Intent    *string `json:"intent"`
	FullName  *string `json:"full_name"`
	BloodType *string `json:"blood_type"`
	City      *string `json:"city"`
}

// parseExtraction decodes the model output strictly (exactly the four agreed
// keys, one JSON value) and immediately validates it: the intent collapses to
// the closed set and blank strings become nil so unchecked external values
// never reach domain state.
func parseExtraction(raw string) (domain.ExtractedFields, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(strings.TrimSpace(raw))))
	dec.DisallowUnknownFields()

	var payload extractionPayload
	if err := dec.Decode(&payload); err != nil {
		return domain.ExtractedFields{}, fmt.Errorf("decode extraction: %w", err)
	}

	out := domain.ExtractedFields{Intent: domain.IntentOther}
	if payload.Intent != nil {
		out.Intent = domain.ParseIntent(strings.ToLower(strings.TrimSpace(*payload.Intent)))
	}
	out.FullName = cleanOptional(payload.FullName)
	out.BloodType = cleanOptional(payload.BloodType)
	out.City = cleanOptional(payload.City)
	return out, nil
}

func cleanOptional(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}
