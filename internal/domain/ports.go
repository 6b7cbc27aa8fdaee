package domain

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned by SessionStore.Get for unknown identities.
var ErrSessionNotFound = errors.New("session not found")

// Extractor turns a raw inbound message into a structured guess, given the
// sender's display name and the state accumulated so far. It never fails:
// when every backend variant errors it returns an empty guess with
// IntentOther, and the model identifier carries an "error:" prefix for
// observability only.
type Extractor interface {
	Extract(ctx context.Context, message, profileName string, state *ConversationState) (ExtractedFields, string)
}

// SessionStore maps conversation identities to in-flight state.
type SessionStore interface {
	Get(id ConversationID) (*ConversationState, error)
	Put(id ConversationID, state *ConversationState) error
	Delete(id ConversationID) error
}

// RecordStore persists completed donor and recipient records and answers the
// donor search behind the request path.
type RecordStore interface {
	InsertDonor(ctx context.Context, rec DonorRecord) (int64, error)
	InsertRecipient(ctx context.Context, rec RecipientRecord) (int64, error)

	// SearchDonors matches donors by exact blood type and case-insensitive
	// substring on city, in storage order, capped at limit.
	SearchDonors(ctx context.Context, bloodType, city string, limit int) ([]DonorMatch, error)
}
