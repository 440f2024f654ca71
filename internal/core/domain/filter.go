package domain

import (
	"strings"
	"time"
)

// CategoryAll matches referrals of every loan type
const CategoryAll = "All"

// ReferralFilter is a text search plus loan-type category
type ReferralFilter struct {
	Query    string
	Category string
}

// Matches reports whether r satisfies the filter. An empty query and an empty
// or "All" category match everything.
func (f ReferralFilter) Matches(r Referral) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(r.LeadName), q) && !strings.Contains(r.MaskedMobile, f.Query) {
			return false
		}
	}
	if f.Category != "" && f.Category != CategoryAll && r.LoanType != f.Category {
		return false
	}
	return true
}

// FilterReferrals returns the referrals matching query and category in input order
func FilterReferrals(referrals []Referral, query, category string) []Referral {
	f := ReferralFilter{Query: query, Category: category}
	out := make([]Referral, 0, len(referrals))
	for _, r := range referrals {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Categories returns "All" followed by the distinct non-empty loan types in order of first appearance
func Categories(referrals []Referral) []string {
	out := []string{CategoryAll}
	seen := make(map[string]struct{})
	for _, r := range referrals {
		if r.LoanType == "" {
			continue
		}
		if _, ok := seen[r.LoanType]; ok {
			continue
		}
		seen[r.LoanType] = struct{}{}
		out = append(out, r.LoanType)
	}
	return out
}

// DateRangeMode selects how payouts are windowed by payout date
type DateRangeMode string

const (
	RangeAll         DateRangeMode = "all"
	RangeLast30Days  DateRangeMode = "30days"
	RangeLastQuarter DateRangeMode = "quarter"
	RangeCustom      DateRangeMode = "custom"
)

// ParseDateRangeMode accepts the query values used by the payouts view.
// An empty value means RangeAll.
func ParseDateRangeMode(raw string) (DateRangeMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all":
		return RangeAll, nil
	case "30days", "last30days":
		return RangeLast30Days, nil
	case "quarter", "lastquarter", "90days":
		return RangeLastQuarter, nil
	case "custom":
		return RangeCustom, nil
	}
	return "", ErrInvalidDateRange
}

// DateRange is a payout window. Start and End are only read for RangeCustom
// and are interpreted as calendar dates.
type DateRange struct {
	Mode  DateRangeMode
	Start time.Time
	End   time.Time
}

// Bounds returns the inclusive [from, to] window relative to now.
// bounded is false when every dated payout qualifies.
func (r DateRange) Bounds(now time.Time) (from, to time.Time, bounded bool) {
	switch r.Mode {
	case RangeLast30Days:
		return now.AddDate(0, 0, -30), now, true
	case RangeLastQuarter:
		return now.AddDate(0, 0, -90), now, true
	case RangeCustom:
		if r.Start.IsZero() || r.End.IsZero() {
			return time.Time{}, time.Time{}, false
		}
		from = time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, r.Start.Location())
		to = time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 23, 59, 59, 0, r.End.Location())
		return from, to, true
	}
	return time.Time{}, time.Time{}, false
}

// Matches reports whether p falls inside the range. Payouts without a payout
// date never match, including under RangeAll.
func (r DateRange) Matches(p Payout, now time.Time) bool {
	if p.PayoutDate == nil {
		return false
	}
	from, to, bounded := r.Bounds(now)
	if !bounded {
		return true
	}
	d := *p.PayoutDate
	return !d.Before(from) && !d.After(to)
}

// FilterPayoutsByDateRange returns the payouts inside r in input order
func FilterPayoutsByDateRange(payouts []Payout, r DateRange, now time.Time) []Payout {
	out := make([]Payout, 0, len(payouts))
	for _, p := range payouts {
		if r.Matches(p, now) {
			out = append(out, p)
		}
	}
	return out
}
