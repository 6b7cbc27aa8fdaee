package conversation

import (
	"context"

	"github.com/thalaconnect/bloodbot/internal/domain"
	"github.com/thalaconnect/bloodbot/internal/normalize"
	"github.com/thalaconnect/bloodbot/internal/observability"
)

// finishDonor persists the completed donor record. A failed insert is
// surfaced to the user as a degradation message; the conversation terminates
// either way.
func (s *Service) finishDonor(ctx context.Context, in TurnInput, state *domain.ConversationState) string {
	log := observability.LoggerFromContext(ctx).With("from", in.From)

	rec := domain.DonorRecord{
		FullName:  state.Field(domain.FieldFullName),
		BloodType: state.Field(domain.FieldBloodType),
		Phone:     normalize.Phone(string(in.From)),
		City:      state.Field(domain.FieldCity),
	}

	id, err := s.records.InsertDonor(ctx, rec)
	if err != nil {
		log.Error("donor insert failed", "error", err)
		return replyDonorInsertFailed
	}

	log.Info("donor registered", "donor_id", id, "blood_type", rec.BloodType, "city", rec.City)
	return replyDonorRegistered(rec)
}

// finishRequest persists the recipient best-effort and then searches donors.
// The insert and the search are independent: a failed write never blocks the
// authoritative read.
func (s *Service) finishRequest(ctx context.Context, in TurnInput, state *domain.ConversationState) string {
	log := observability.LoggerFromContext(ctx).With("from", in.From)

	name := state.Field(domain.FieldFullName)
	if name == "" {
		name = in.ProfileName
	}

	rec := domain.RecipientRecord{
		FullName:  name,
		BloodType: state.Field(domain.FieldBloodType),
		Phone:     normalize.Phone(string(in.From)),
		City:      state.Field(domain.FieldCity),
	}

	if id, err := s.records.InsertRecipient(ctx, rec); err != nil {
		log.Error("recipient insert failed, continuing to search", "error", err)
	} else {
		log.Info("recipient recorded", "recipient_id", id, "blood_type", rec.BloodType, "city", rec.City)
	}

	matches, err := s.records.SearchDonors(ctx, rec.BloodType, rec.City, maxDonorResults)
	if err != nil {
		log.Error("donor search failed", "error", err)
		matches = nil
	}
	log.Info("donor search completed", "matches", len(matches))

	if len(matches) == 0 {
		return replyNoDonors(rec.BloodType, rec.City)
	}
	return replyDonorList(rec.BloodType, rec.City, matches)
}
