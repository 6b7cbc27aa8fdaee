package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/thalaconnect/bloodbot/internal/adapters/storage/memory"
	"github.com/thalaconnect/bloodbot/internal/domain"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	store := memory.NewSessionStore()
	id := domain.ConversationID("whatsapp:+911111111111")

	if _, err := store.Get(id); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("Get before Put: err = %v, want ErrSessionNotFound", err)
	}

	st := domain.NewConversationState()
	st.Role = domain.RoleDonor
	st.SetField(domain.FieldCity, "Pune")
	if err := store.Put(id, st); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Role != domain.RoleDonor || got.Field(domain.FieldCity) != "Pune" {
		t.Fatalf("Get returned %+v", got)
	}

	if err := store.Delete(id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(id); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("Get after Delete: err = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionStoreIsolatesCallers(t *testing.T) {
	store := memory.NewSessionStore()
	id := domain.ConversationID("whatsapp:+912222222222")

	st := domain.NewConversationState()
	if err := store.Put(id, st); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// Mutating the value handed to Put must not leak into the store.
	st.SetField(domain.FieldFullName, "changed after put")

	got, err := store.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Field(domain.FieldFullName) != "" {
		t.Fatalf("store shares memory with caller: %+v", got)
	}

	// And mutating a Get result must not change the stored copy.
	got.SetField(domain.FieldCity, "changed after get")
	again, err := store.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if again.Field(domain.FieldCity) != "" {
		t.Fatalf("Get returned shared memory: %+v", again)
	}
}

func TestDeleteMissingSessionIsNoop(t *testing.T) {
	store := memory.NewSessionStore()
	if err := store.Delete("never-existed"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestRecordStoreSearchDonors(t *testing.T) {
	store := memory.NewRecordStore()
	ctx := context.Background()

	seed := []domain.DonorRecord{
		{FullName: "Asha", BloodType: "O+", Phone: "9000000001", City: "Pune"},
		{FullName: "Binod", BloodType: "A+", Phone: "9000000002", City: "Pune"},
		{FullName: "Chitra", BloodType: "O+", Phone: "9000000003", City: "Navi Mumbai"},
		{FullName: "Deepak", BloodType: "O+", Phone: "9000000004", City: "Delhi"},
	}
	for _, d := range seed {
		if _, err := store.InsertDonor(ctx, d); err != nil {
			t.Fatalf("InsertDonor(%s): %v", d.FullName, err)
		}
	}

	tests := []struct {
		name      string
		bloodType string
		city      string
		limit     int
		want      []string
	}{
		{"exact blood and city", "O+", "Pune", 10, []string{"Asha"}},
		{"city match is substring", "O+", "Mumbai", 10, []string{"Chitra"}},
		{"city match ignores case", "O+", "delhi", 10, []string{"Deepak"}},
		{"blood type is exact", "O-", "Pune", 10, nil},
		{"limit caps results", "O+", "", 2, []string{"Asha", "Chitra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.SearchDonors(ctx, tt.bloodType, tt.city, tt.limit)
			if err != nil {
				t.Fatalf("SearchDonors: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d matches, want %d: %+v", len(got), len(tt.want), got)
			}
			for i, m := range got {
				if m.FullName != tt.want[i] {
					t.Errorf("match[%d] = %q, want %q", i, m.FullName, tt.want[i])
				}
			}
		})
	}
}

func TestRecordStoreInsertIDsAreSequential(t *testing.T) {
	store := memory.NewRecordStore()
	ctx := context.Background()

	first, err := store.InsertRecipient(ctx, domain.RecipientRecord{FullName: "Ravi", BloodType: "B+", Phone: "9", City: "Pune"})
	if err != nil {
		t.Fatalf("InsertRecipient: %v", err)
	}
	second, err := store.InsertRecipient(ctx, domain.RecipientRecord{FullName: "Sita", BloodType: "B+", Phone: "9", City: "Pune"})
	if err != nil {
		t.Fatalf("InsertRecipient: %v", err)
	}
	if first != 1 || second != 2 {
		t.Fatalf("ids = %d, %d; want 1, 2", first, second)
	}
}
