package services

import (
	"time"

	"rupivo-partner/internal/adapters/persistence/repositories"
	"rupivo-partner/internal/core/domain"
)

// ComplianceNotice is shown alongside partner KPIs
const ComplianceNotice = "Please remember to communicate that eligibility and final loan terms are determined solely by the lending partners. Do not guarantee approvals or specific interest rates."

const recentReferralLimit = 5

// DashboardService handles dashboard operations
type DashboardService struct {
	referrals repositories.ReferralRepository
	payouts   repositories.PayoutRepository
	nowFn     func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(referrals repositories.ReferralRepository, payouts repositories.PayoutRepository) *DashboardService {
	return &DashboardService{
		referrals: referrals,
		payouts:   payouts,
		nowFn:     time.Now,
	}
}

// DashboardData represents the partner dashboard
type DashboardData struct {
	KPIs             domain.DashboardKPIs    `json:"kpis"`
	RecentReferrals  []ReferralSummary       `json:"recentReferrals"`
	WeeklyLeads      []domain.DailyLeadCount `json:"weeklyLeads"`
	ComplianceNotice string                  `json:"complianceNotice"`
}

// GetDashboard computes the dashboard from current session state
func (s *DashboardService) GetDashboard() *DashboardData {
	refs := s.referrals.List()

	recent := refs
	if len(recent) > recentReferralLimit {
		recent = recent[:recentReferralLimit]
	}

	return &DashboardData{
		KPIs:             domain.ComputeDashboardKPIs(refs, s.payouts.List()),
		RecentReferrals:  summarizeAll(recent),
		WeeklyLeads:      domain.LeadsLastSevenDays(refs, s.nowFn()),
		ComplianceNotice: ComplianceNotice,
	}
}

// KPIs returns only the headline counters
func (s *DashboardService) KPIs() domain.DashboardKPIs {
	return domain.ComputeDashboardKPIs(s.referrals.List(), s.payouts.List())
}
