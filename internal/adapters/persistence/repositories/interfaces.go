package repositories

import (
	"rupivo-partner/internal/core/domain"
)

// ReferralRepository defines referral collection access.
// AddReferrals is the only write path.
type ReferralRepository interface {
	List() []domain.Referral
	GetByID(id string) (*domain.Referral, error)
	AddReferrals(newOnes []domain.Referral) ([]domain.Referral, error)
}

// PayoutRepository defines read-only payout access
type PayoutRepository interface {
	List() []domain.Payout
}

// ProfileRepository defines read-only access to the session partner
type ProfileRepository interface {
	Get() domain.UserProfile
}
