package services

import (
	"log"
	"strings"
	"time"

	"rupivo-partner/internal/adapters/persistence/repositories"
	"rupivo-partner/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReferralService handles referral tracking and lead creation
type ReferralService struct {
	referrals      repositories.ReferralRepository
	offsets        []int
	commissionRate decimal.Decimal
	nowFn          func() time.Time
	newID          func(prefix string) string
}

// NewReferralService creates a new referral service
func NewReferralService(referrals repositories.ReferralRepository, offsets []int, commissionRate decimal.Decimal) *ReferralService {
	return &ReferralService{
		referrals:      referrals,
		offsets:        offsets,
		commissionRate: commissionRate,
		nowFn:          func() time.Time { return time.Now().UTC() },
		newID:          func(prefix string) string { return prefix + uuid.NewString() },
	}
}

// ReferralSummary is a referral with its derived progress
type ReferralSummary struct {
	domain.Referral
	StepIndex int     `json:"stepIndex"`
	Progress  float64 `json:"progress"`
}

// ReferralDetail adds the application timeline and estimated commission
type ReferralDetail struct {
	ReferralSummary
	Timeline            []domain.TimelineEntry `json:"timeline"`
	EstimatedCommission *decimal.Decimal       `json:"estimatedCommission,omitempty"`
}

// CreateReferralInput represents a manually entered lead
type CreateReferralInput struct {
	LeadName string `json:"leadName"`
	Mobile   string `json:"mobile"`
	LoanType string `json:"loanType,omitempty"`
}

// BulkReferralRow represents one parsed row of a bulk upload
type BulkReferralRow struct {
	LeadName     string `json:"leadName"`
	MaskedMobile string `json:"maskedMobile"`
	LoanType     string `json:"loanType,omitempty"`
}

func summarize(r domain.Referral) ReferralSummary {
	return ReferralSummary{
		Referral:  r,
		StepIndex: domain.StepIndex(r.Status),
		Progress:  domain.ProgressRatio(r.Status),
	}
}

func summarizeAll(refs []domain.Referral) []ReferralSummary {
	out := make([]ReferralSummary, len(refs))
	for i, r := range refs {
		out[i] = summarize(r)
	}
	return out
}

// List returns referrals matching query and category, in collection order
func (s *ReferralService) List(query, category string) []ReferralSummary {
	return summarizeAll(domain.FilterReferrals(s.referrals.List(), strings.TrimSpace(query), category))
}

// Categories returns the loan-type filter options
func (s *ReferralService) Categories() []string {
	return domain.Categories(s.referrals.List())
}

// GetByID returns the referral with its timeline
func (s *ReferralService) GetByID(id string) (*ReferralDetail, error) {
	ref, err := s.referrals.GetByID(id)
	if err != nil {
		return nil, err
	}

	detail := &ReferralDetail{
		ReferralSummary: summarize(*ref),
		Timeline:        domain.Timeline(*ref, s.offsets),
	}
	if ref.LoanAmount != nil {
		est := ref.LoanAmount.Mul(s.commissionRate)
		detail.EstimatedCommission = &est
	}
	return detail, nil
}

// Create validates and adds a single lead
func (s *ReferralService) Create(input *CreateReferralInput) (*domain.Referral, error) {
	name := strings.TrimSpace(input.LeadName)
	if name == "" {
		return nil, domain.ErrLeadNameRequired
	}
	mobile := strings.TrimSpace(input.Mobile)
	if err := domain.ValidateMobile(mobile); err != nil {
		return nil, err
	}

	ref := s.newReferral("ref_", name, mobile, strings.TrimSpace(input.LoanType))
	if _, err := s.referrals.AddReferrals([]domain.Referral{ref}); err != nil {
		return nil, err
	}

	log.Printf("✅ Referral created: %s (%s)", ref.ID, ref.LeadName)
	return &ref, nil
}

// BulkCreate adds one lead per row. Rows are trusted as-is.
func (s *ReferralService) BulkCreate(rows []BulkReferralRow) ([]domain.Referral, error) {
	if len(rows) == 0 {
		return nil, domain.ErrNoBulkRows
	}

	created := make([]domain.Referral, len(rows))
	for i, row := range rows {
		created[i] = s.newReferral("ref_bulk_", row.LeadName, row.MaskedMobile, row.LoanType)
	}
	if _, err := s.referrals.AddReferrals(created); err != nil {
		return nil, err
	}

	log.Printf("✅ Bulk import added %d referrals", len(created))
	return created, nil
}

func (s *ReferralService) newReferral(prefix, name, mobile, loanType string) domain.Referral {
	return domain.Referral{
		ID:               s.newID(prefix),
		LeadName:         name,
		MaskedMobile:     mobile,
		Date:             s.nowFn(),
		Status:           domain.StatusRegistered,
		CommissionStatus: domain.CommissionPending,
		LoanType:         loanType,
	}
}

// SimulatedBulkRows stands in for parsing an uploaded spreadsheet
func SimulatedBulkRows() []BulkReferralRow {
	return []BulkReferralRow{
		{LeadName: "Rohan Mehta", MaskedMobile: "9988776655", LoanType: "Business Loan"},
		{LeadName: "Priya Sharma", MaskedMobile: "9123456789", LoanType: "Home Loan"},
	}
}
