// Package conversation drives the per-identity slot-filling state machine:
// reset detection, role selection, free-text collection, and the terminal
// donor/request actions. Every turn produces a reply; failures along the way
// degrade to re-prompts instead of errors.
package conversation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/thalaconnect/bloodbot/internal/app/slots"
	"github.com/thalaconnect/bloodbot/internal/domain"
	"github.com/thalaconnect/bloodbot/internal/normalize"
	"github.com/thalaconnect/bloodbot/internal/observability"
)

// greetings is the fixed vocabulary that unconditionally restarts a
// conversation, checked case-insensitively before anything else.
var greetings = map[string]struct{}{
	"hi":      {},
	"hello":   {},
	"start":   {},
	"menu":    {},
	"restart": {},
}

const maxDonorResults = 10

type Service struct {
	extractor domain.Extractor
	sessions  domain.SessionStore
	records   domain.RecordStore
}

func NewService(extractor domain.Extractor, sessions domain.SessionStore, records domain.RecordStore) *Service {
	return &Service{
		extractor: extractor,
		sessions:  sessions,
		records:   records,
	}
}

// TurnInput is one inbound message as delivered by the transport.
type TurnInput struct {
	From        domain.ConversationID
	ProfileName string
	Body        string
}

// TurnOutput carries the textual reply and whether this turn completed the
// conversation (record persisted, state deleted).
type TurnOutput struct {
	Reply    string
	Terminal bool
}

// HandleTurn runs one turn of the state machine. It never returns an error:
// whatever happens, the user gets an actionable reply.
func (s *Service) HandleTurn(ctx context.Context, in TurnInput) TurnOutput {
	log := observability.LoggerFromContext(ctx).With("from", in.From)

	body := strings.TrimSpace(in.Body)

	state, err := s.sessions.Get(in.From)
	if err != nil {
		// Unknown identity (or a store hiccup): treat as first contact.
		state = &domain.ConversationState{Role: domain.RoleUnset, Step: domain.StepStart, Fields: map[domain.Field]string{}}
	}

	// Reset takes priority over everything else this turn.
	if _, greeted := greetings[strings.ToLower(body)]; greeted || state.Step == domain.StepStart {
		s.reset(in.From, log)
		return TurnOutput{Reply: replyMenu}
	}

	if state.Step == domain.StepChooseRole {
		return s.chooseRole(in.From, body, state, log)
	}

	return s.collect(ctx, in, body, state)
}

func (s *Service) reset(id domain.ConversationID, log *slog.Logger) {
	if err := s.sessions.Put(id, domain.NewConversationState()); err != nil {
		log.Error("failed to reset session", "error", err)
	}
}

// chooseRole handles the 1/2 menu. Anything unrecognized re-prompts without
// touching the stored state.
func (s *Service) chooseRole(id domain.ConversationID, body string, state *domain.ConversationState, log *slog.Logger) TurnOutput {
	switch strings.ToLower(body) {
	case "1", "donor":
		state.Role = domain.RoleDonor
	case "2", "request", "recipient":
		state.Role = domain.RoleRequest
	default:
		return TurnOutput{Reply: replyInvalidChoice}
	}

	state.Step = domain.StepCollect
	if err := s.sessions.Put(id, state); err != nil {
		log.Error("failed to store session", "error", err)
	}

	if state.Role == domain.RoleDonor {
		return TurnOutput{Reply: replyDonorAck}
	}
	return TurnOutput{Reply: replyRequestAck}
}

// collect runs the extraction-and-merge step and either prompts for the next
// missing field or performs the terminal action.
func (s *Service) collect(ctx context.Context, in TurnInput, body string, state *domain.ConversationState) TurnOutput {
	log := observability.LoggerFromContext(ctx).With("from", in.From)

	extracted, model := s.extractor.Extract(ctx, body, in.ProfileName, state)
	log.Info("extraction completed", "model", model, "intent", extracted.Intent)

	if extracted.Intent == domain.IntentReset {
		s.reset(in.From, log)
		return TurnOutput{Reply: replyReset}
	}

	// A user may state their need before being asked for a role.
	if state.Role == domain.RoleUnset {
		switch extracted.Intent {
		case domain.IntentDonor:
			state.Role = domain.RoleDonor
		case domain.IntentRequest:
			state.Role = domain.RoleRequest
		}
	}

	state.Merge(extracted)

	// Re-normalize the merged values. A blood type that does not normalize is
	// still missing; raw text must not linger in the state.
	if v := state.Field(domain.FieldBloodType); v != "" {
		if bt := normalize.BloodType(v); bt != "" {
			state.SetField(domain.FieldBloodType, bt)
		} else {
			state.ClearField(domain.FieldBloodType)
		}
	}
	if v := state.Field(domain.FieldCity); v != "" {
		state.SetField(domain.FieldCity, normalize.City(v))
	}

	state.Step = domain.StepCollect

	// Role gates everything: without it we do not ask for fields yet.
	if state.Role == domain.RoleUnset {
		if err := s.sessions.Put(in.From, state); err != nil {
			log.Error("failed to store session", "error", err)
		}
		return TurnOutput{Reply: slots.PromptFor(domain.FieldRole)}
	}

	missing := slots.NextMissing(state.Role, state)

	// The channel already tells us who is talking: skip one name prompt.
	if missing == domain.FieldFullName && in.ProfileName != "" {
		state.SetField(domain.FieldFullName, in.ProfileName)
		missing = slots.NextMissing(state.Role, state)
	}

	if missing != "" {
		if err := s.sessions.Put(in.From, state); err != nil {
			log.Error("failed to store session", "error", err)
		}
		return TurnOutput{Reply: slots.PromptFor(missing)}
	}

	var reply string
	switch state.Role {
	case domain.RoleDonor:
		reply = s.finishDonor(ctx, in, state)
	case domain.RoleRequest:
		reply = s.finishRequest(ctx, in, state)
	default:
		// Unrecognized role value in stored state: re-prompt, never error.
		if err := s.sessions.Put(in.From, state); err != nil {
			log.Error("failed to store session", "error", err)
		}
		return TurnOutput{Reply: replyNotUnderstood}
	}

	// Terminal: the next message from this identity starts fresh.
	if err := s.sessions.Delete(in.From); err != nil {
		log.Error("failed to delete session", "error", err)
	}
	return TurnOutput{Reply: reply, Terminal: true}
}
