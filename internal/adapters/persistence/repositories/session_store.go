package repositories

import (
	"sync"

	"rupivo-partner/internal/core/domain"
)

// SessionStore holds the partner's session data in memory.
// Collections are replaced wholesale on write; slices handed out by List are
// never modified afterwards and must be treated as read-only by callers.
type SessionStore struct {
	mu        sync.RWMutex
	profile   domain.UserProfile
	referrals []domain.Referral
	payouts   []domain.Payout
}

// NewSessionStore creates a store seeded with copies of the given data
func NewSessionStore(profile domain.UserProfile, referrals []domain.Referral, payouts []domain.Payout) *SessionStore {
	return &SessionStore{
		profile:   profile,
		referrals: append([]domain.Referral{}, referrals...),
		payouts:   append([]domain.Payout{}, payouts...),
	}
}

// Referrals returns the store as a ReferralRepository
func (s *SessionStore) Referrals() ReferralRepository { return referralRepo{s} }

// Payouts returns the store as a PayoutRepository
func (s *SessionStore) Payouts() PayoutRepository { return payoutRepo{s} }

// Profile returns the store as a ProfileRepository
func (s *SessionStore) Profile() ProfileRepository { return profileRepo{s} }

type referralRepo struct{ s *SessionStore }

// List returns the current referral collection, most recent first
func (r referralRepo) List() []domain.Referral {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.referrals
}

// GetByID finds a referral by ID
func (r referralRepo) GetByID(id string) (*domain.Referral, error) {
	for _, ref := range r.List() {
		if ref.ID == id {
			found := ref
			return &found, nil
		}
	}
	return nil, domain.ErrReferralNotFound
}

// AddReferrals prepends newOnes and swaps in the new collection.
// IDs must be unique across the existing and new records.
func (r referralRepo) AddReferrals(newOnes []domain.Referral) ([]domain.Referral, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seen := make(map[string]struct{}, len(r.s.referrals)+len(newOnes))
	for _, ref := range r.s.referrals {
		seen[ref.ID] = struct{}{}
	}
	for _, ref := range newOnes {
		if _, dup := seen[ref.ID]; dup {
			return nil, domain.ErrDuplicateEntry
		}
		seen[ref.ID] = struct{}{}
	}

	r.s.referrals = domain.AddReferrals(r.s.referrals, newOnes)
	return r.s.referrals, nil
}

type payoutRepo struct{ s *SessionStore }

// List returns all payouts
func (r payoutRepo) List() []domain.Payout {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.payouts
}

type profileRepo struct{ s *SessionStore }

// Get returns the session partner
func (r profileRepo) Get() domain.UserProfile {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.profile
}
