package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CountByStatusAtLeast counts referrals whose step is at or past threshold.
// An unknown threshold counts nothing.
func CountByStatusAtLeast(referrals []Referral, threshold ReferralStatus) int {
	min := StepIndex(threshold)
	if min < 0 {
		return 0
	}

	count := 0
	for _, r := range referrals {
		if StepIndex(r.Status) >= min {
			count++
		}
	}
	return count
}

// SumEarnedAmount returns the total earned amount across all payouts
func SumEarnedAmount(payouts []Payout) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payouts {
		total = total.Add(p.EarnedAmount)
	}
	return total
}

// SumEarnedAmountByStatus returns the earned total of payouts with the given status
func SumEarnedAmountByStatus(payouts []Payout, status PayoutStatus) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payouts {
		if p.Status == status {
			total = total.Add(p.EarnedAmount)
		}
	}
	return total
}

// DashboardKPIs holds the headline dashboard counters
type DashboardKPIs struct {
	TotalReferrals int             `json:"totalReferrals"`
	Applied        int             `json:"applied"`
	Approved       int             `json:"approved"`
	Disbursed      int             `json:"disbursed"`
	TotalEarnings  decimal.Decimal `json:"totalEarnings"`
}

// ComputeDashboardKPIs derives dashboard KPIs from the current collections
func ComputeDashboardKPIs(referrals []Referral, payouts []Payout) DashboardKPIs {
	return DashboardKPIs{
		TotalReferrals: len(referrals),
		Applied:        CountByStatusAtLeast(referrals, StatusApplied),
		Approved:       CountByStatusAtLeast(referrals, StatusApproved),
		Disbursed:      CountByStatusAtLeast(referrals, StatusDisbursed),
		TotalEarnings:  SumEarnedAmount(payouts),
	}
}

// EarningsSummary holds lifetime, paid and pending commission totals
type EarningsSummary struct {
	TotalEarned decimal.Decimal `json:"totalEarned"`
	Paid        decimal.Decimal `json:"paid"`
	Pending     decimal.Decimal `json:"pending"`
}

// ComputeEarningsSummary derives the earnings cards from payouts
func ComputeEarningsSummary(payouts []Payout) EarningsSummary {
	return EarningsSummary{
		TotalEarned: SumEarnedAmount(payouts),
		Paid:        SumEarnedAmountByStatus(payouts, PayoutPaid),
		Pending:     SumEarnedAmountByStatus(payouts, PayoutPending),
	}
}

// DailyLeadCount is the number of referrals created on one day
type DailyLeadCount struct {
	Name  string `json:"name"`
	Date  string `json:"date"`
	Leads int    `json:"leads"`
}

// LeadsLastSevenDays buckets referrals by creation day for the 7 days ending on now's date,
// oldest first. Days are taken in now's location.
func LeadsLastSevenDays(referrals []Referral, now time.Time) []DailyLeadCount {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	first := today.AddDate(0, 0, -6)

	out := make([]DailyLeadCount, 7)
	index := make(map[string]int, len(out))
	for i := range out {
		day := first.AddDate(0, 0, i)
		key := day.Format("2006-01-02")
		out[i] = DailyLeadCount{Name: day.Format("Mon"), Date: key}
		index[key] = i
	}

	for _, r := range referrals {
		if i, ok := index[r.Date.In(loc).Format("2006-01-02")]; ok {
			out[i].Leads++
		}
	}
	return out
}

// MonthlyEarning is the paid commission total for one calendar month
type MonthlyEarning struct {
	Name     string          `json:"name"`
	Month    string          `json:"month"`
	Earnings decimal.Decimal `json:"earnings"`
}

// MonthlyEarningsTrend sums paid payouts by payout month for the last n months ending
// with now's month, oldest first. Payouts without a payout date are skipped.
func MonthlyEarningsTrend(payouts []Payout, now time.Time, n int) []MonthlyEarning {
	if n <= 0 {
		return []MonthlyEarning{}
	}
	loc := now.Location()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	first := current.AddDate(0, -(n - 1), 0)

	out := make([]MonthlyEarning, n)
	index := make(map[string]int, n)
	for i := range out {
		m := first.AddDate(0, i, 0)
		key := m.Format("2006-01")
		out[i] = MonthlyEarning{Name: m.Format("Jan"), Month: key, Earnings: decimal.Zero}
		index[key] = i
	}

	for _, p := range payouts {
		if p.Status != PayoutPaid || p.PayoutDate == nil {
			continue
		}
		if i, ok := index[p.PayoutDate.In(loc).Format("2006-01")]; ok {
			out[i].Earnings = out[i].Earnings.Add(p.EarnedAmount)
		}
	}
	return out
}
