package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/thalaconnect/bloodbot/internal/domain"
)

// RecordStore is an append-only in-memory implementation of
// domain.RecordStore for development and tests. Rows keep insertion order so
// search results match the relational store's storage-order contract.
type RecordStore struct {
	mu         sync.RWMutex
	donors     []domain.DonorRecord
	recipients []domain.RecipientRecord
}

func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

func (s *RecordStore) InsertDonor(_ context.Context, rec domain.DonorRecord) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.donors = append(s.donors, rec)
	return int64(len(s.donors)), nil
}

func (s *RecordStore) InsertRecipient(_ context.Context, rec domain.RecipientRecord) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recipients = append(s.recipients, rec)
	return int64(len(s.recipients)), nil
}

func (s *RecordStore) SearchDonors(_ context.Context, bloodType, city string, limit int) ([]domain.DonorMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(city)

	var out []domain.DonorMatch
	for _, d := range s.donors {
		if d.BloodType != bloodType {
			continue
		}
		if !strings.Contains(strings.ToLower(d.City), needle) {
			continue
		}
		out = append(out, domain.DonorMatch{
			FullName: d.FullName,
			Phone:    d.Phone,
			City:     d.City,
		})
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
