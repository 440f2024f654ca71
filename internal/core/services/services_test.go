package services

import (
	"time"

	"rupivo-partner/internal/adapters/persistence/repositories"
	"rupivo-partner/internal/config"
)

var fixedNow = time.Date(2023, 10, 24, 12, 0, 0, 0, time.UTC)

func newSeededStore() *repositories.SessionStore {
	seed := config.Seed()
	return repositories.NewSessionStore(seed.Profile, seed.Referrals, seed.Payouts)
}
