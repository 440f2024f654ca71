package services

import (
	"time"

	"rupivo-partner/internal/adapters/persistence/repositories"
	"rupivo-partner/internal/core/domain"
	"rupivo-partner/internal/pkg/export"
)

const trendMonths = 7

// EarningsService handles earnings and payout ledger operations
type EarningsService struct {
	payouts repositories.PayoutRepository
	nowFn   func() time.Time
}

// NewEarningsService creates a new earnings service
func NewEarningsService(payouts repositories.PayoutRepository) *EarningsService {
	return &EarningsService{payouts: payouts, nowFn: time.Now}
}

// CommissionLine is a payout with its display rate
type CommissionLine struct {
	domain.Payout
	RatePercent string `json:"ratePercent"`
}

// EarningsData represents the earnings overview
type EarningsData struct {
	Summary   domain.EarningsSummary  `json:"summary"`
	Trend     []domain.MonthlyEarning `json:"trend"`
	Breakdown []CommissionLine        `json:"breakdown"`
}

// GetEarnings returns totals, trend and per-payout breakdown
func (s *EarningsService) GetEarnings() *EarningsData {
	payouts := s.payouts.List()

	lines := make([]CommissionLine, len(payouts))
	for i, p := range payouts {
		lines[i] = CommissionLine{Payout: p, RatePercent: export.FormatRatePercent(p.CommissionRate)}
	}

	return &EarningsData{
		Summary:   domain.ComputeEarningsSummary(payouts),
		Trend:     domain.MonthlyEarningsTrend(payouts, s.nowFn(), trendMonths),
		Breakdown: lines,
	}
}

// ParseDateRange builds a DateRange from query values. Dates use YYYY-MM-DD;
// a custom range with a start after its end is rejected.
func ParseDateRange(mode, start, end string) (domain.DateRange, error) {
	m, err := domain.ParseDateRangeMode(mode)
	if err != nil {
		return domain.DateRange{}, err
	}
	r := domain.DateRange{Mode: m}
	if m != domain.RangeCustom {
		return r, nil
	}

	if start != "" {
		if r.Start, err = time.Parse("2006-01-02", start); err != nil {
			return domain.DateRange{}, domain.ErrInvalidDateRange
		}
	}
	if end != "" {
		if r.End, err = time.Parse("2006-01-02", end); err != nil {
			return domain.DateRange{}, domain.ErrInvalidDateRange
		}
	}
	if !r.Start.IsZero() && !r.End.IsZero() && r.Start.After(r.End) {
		return domain.DateRange{}, domain.ErrInvalidDateRange
	}
	return r, nil
}

// ListPayouts returns payouts inside r
func (s *EarningsService) ListPayouts(r domain.DateRange) []domain.Payout {
	return domain.FilterPayoutsByDateRange(s.payouts.List(), r, s.nowFn())
}

// PendingSummary returns the number and total of payouts awaiting clearance
func (s *EarningsService) PendingSummary() (int, string) {
	payouts := s.payouts.List()
	count := 0
	for _, p := range payouts {
		if p.Status == domain.PayoutPending {
			count++
		}
	}
	return count, domain.SumEarnedAmountByStatus(payouts, domain.PayoutPending).String()
}

// ExportCSV renders the payouts inside r as CSV
func (s *EarningsService) ExportCSV(r domain.DateRange) ([]byte, error) {
	payouts := s.ListPayouts(r)
	if len(payouts) == 0 {
		return nil, domain.ErrNothingToExport
	}
	return export.PayoutsCSV(payouts)
}
