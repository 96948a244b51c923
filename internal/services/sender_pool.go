package services

import (
	"github.com/brightops/campaign-backend/internal/models"
)

// nextEligibleSender scans the pool from fromIndex in array order and returns
// the index of the first identity that is active and under its daily limit.
//
// The scan is forward-only and never wraps: identities before fromIndex are
// treated as exhausted for the rest of the run. This is a stated policy, kept
// for predictability, not an oversight.
func nextEligibleSender(senders []*models.SenderIdentity, fromIndex int) (int, error) {
	if fromIndex < 0 {
		fromIndex = 0
	}
	for i := fromIndex; i < len(senders); i++ {
		if senders[i].HasCapacity() {
			return i, nil
		}
	}
	return -1, ErrPoolExhausted
}
