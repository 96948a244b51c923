package services

import (
	"errors"
	"testing"

	"github.com/brightops/campaign-backend/internal/models"
)

func poolOf(specs ...models.SenderIdentity) []*models.SenderIdentity {
	out := make([]*models.SenderIdentity, len(specs))
	for i := range specs {
		out[i] = &specs[i]
	}
	return out
}

func TestNextEligibleSender(t *testing.T) {
	tests := []struct {
		name      string
		senders   []*models.SenderIdentity
		fromIndex int
		wantIndex int
		wantErr   bool
	}{
		{
			name:      "first has capacity",
			senders:   poolOf(models.SenderIdentity{IsActive: true, MaxDailyLimit: 5}),
			fromIndex: 0,
			wantIndex: 0,
		},
		{
			name: "skips exhausted",
			senders: poolOf(
				models.SenderIdentity{IsActive: true, MaxDailyLimit: 2, EmailsSentToday: 2},
				models.SenderIdentity{IsActive: true, MaxDailyLimit: 2},
			),
			fromIndex: 0,
			wantIndex: 1,
		},
		{
			name: "skips inactive",
			senders: poolOf(
				models.SenderIdentity{IsActive: false, MaxDailyLimit: 10},
				models.SenderIdentity{IsActive: true, MaxDailyLimit: 10},
			),
			fromIndex: 0,
			wantIndex: 1,
		},
		{
			name: "never wraps to earlier identities",
			senders: poolOf(
				models.SenderIdentity{IsActive: true, MaxDailyLimit: 10},
				models.SenderIdentity{IsActive: true, MaxDailyLimit: 1, EmailsSentToday: 1},
			),
			fromIndex: 1,
			wantErr:   true,
		},
		{
			name: "all exhausted",
			senders: poolOf(
				models.SenderIdentity{IsActive: true, MaxDailyLimit: 1, EmailsSentToday: 1},
				models.SenderIdentity{IsActive: false, MaxDailyLimit: 10},
			),
			fromIndex: 0,
			wantErr:   true,
		},
		{
			name:      "empty pool",
			senders:   nil,
			fromIndex: 0,
			wantErr:   true,
		},
		{
			name:      "negative index clamps to zero",
			senders:   poolOf(models.SenderIdentity{IsActive: true, MaxDailyLimit: 1}),
			fromIndex: -3,
			wantIndex: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := nextEligibleSender(tt.senders, tt.fromIndex)
			if tt.wantErr {
				if !errors.Is(err, ErrPoolExhausted) {
					t.Fatalf("err = %v, want ErrPoolExhausted", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if idx != tt.wantIndex {
				t.Errorf("index = %d, want %d", idx, tt.wantIndex)
			}
		})
	}
}
