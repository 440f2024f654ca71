package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func sampleStatuses() []Referral {
	statuses := []ReferralStatus{StatusDisbursed, StatusApproved, StatusApplied, StatusRegistered, StatusDisbursed}
	refs := make([]Referral, len(statuses))
	for i, s := range statuses {
		refs[i] = Referral{Status: s}
	}
	return refs
}

func samplePayouts() []Payout {
	paid := time.Date(2023, 10, 25, 10, 0, 0, 0, time.UTC)
	return []Payout{
		{ID: "pay_1", EarnedAmount: decimal.NewFromInt(7500), Status: PayoutPaid, PayoutDate: &paid},
		{ID: "pay_2", EarnedAmount: decimal.NewFromInt(3000), Status: PayoutPending},
	}
}

func TestCountByStatusAtLeast(t *testing.T) {
	refs := sampleStatuses()

	cases := map[ReferralStatus]int{
		StatusRegistered: 5,
		StatusApplied:    4,
		StatusApproved:   3,
		StatusDisbursed:  2,
		"Rejected":       0,
	}
	for threshold, want := range cases {
		if got := CountByStatusAtLeast(refs, threshold); got != want {
			t.Fatalf("CountByStatusAtLeast(%s) = %d, want %d", threshold, got, want)
		}
	}
}

func TestSumEarnedAmount(t *testing.T) {
	payouts := samplePayouts()

	if got := SumEarnedAmount(payouts); !got.Equal(decimal.NewFromInt(10500)) {
		t.Fatalf("total = %s, want 10500", got)
	}
	if got := SumEarnedAmountByStatus(payouts, PayoutPaid); !got.Equal(decimal.NewFromInt(7500)) {
		t.Fatalf("paid = %s, want 7500", got)
	}
	if got := SumEarnedAmountByStatus(payouts, PayoutPending); !got.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("pending = %s, want 3000", got)
	}
	if got := SumEarnedAmount(nil); !got.IsZero() {
		t.Fatalf("empty total = %s, want 0", got)
	}
}

func TestSumEarnedAmountIsExact(t *testing.T) {
	payouts := make([]Payout, 1000)
	for i := range payouts {
		payouts[i] = Payout{EarnedAmount: decimal.RequireFromString("0.10"), Status: PayoutPaid}
	}
	if got := SumEarnedAmount(payouts); !got.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected exact 100, got %s", got)
	}
}

func TestComputeDashboardKPIs(t *testing.T) {
	kpis := ComputeDashboardKPIs(sampleStatuses(), samplePayouts())

	if kpis.TotalReferrals != 5 || kpis.Applied != 4 || kpis.Approved != 3 || kpis.Disbursed != 2 {
		t.Fatalf("unexpected counts: %+v", kpis)
	}
	if !kpis.TotalEarnings.Equal(decimal.NewFromInt(10500)) {
		t.Fatalf("unexpected total earnings: %s", kpis.TotalEarnings)
	}
}

func TestComputeEarningsSummary(t *testing.T) {
	s := ComputeEarningsSummary(samplePayouts())
	if !s.TotalEarned.Equal(decimal.NewFromInt(10500)) || !s.Paid.Equal(decimal.NewFromInt(7500)) || !s.Pending.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestVerifyEarned(t *testing.T) {
	p := Payout{
		DisbursedAmount: decimal.NewFromInt(500000),
		CommissionRate:  decimal.RequireFromString("0.015"),
		EarnedAmount:    decimal.NewFromInt(7500),
	}
	if !p.VerifyEarned() {
		t.Fatalf("expected 500000 * 0.015 = 7500, got %s", p.ExpectedEarned())
	}
	p.EarnedAmount = decimal.NewFromInt(7000)
	if p.VerifyEarned() {
		t.Fatal("expected mismatch to be detected")
	}
}

func TestLeadsLastSevenDays(t *testing.T) {
	now := time.Date(2023, 10, 22, 18, 0, 0, 0, time.UTC)
	refs := []Referral{
		{Date: time.Date(2023, 10, 22, 11, 20, 0, 0, time.UTC)},
		{Date: time.Date(2023, 10, 22, 8, 0, 0, 0, time.UTC)},
		{Date: time.Date(2023, 10, 16, 9, 0, 0, 0, time.UTC)},
		{Date: time.Date(2023, 10, 15, 14, 30, 0, 0, time.UTC)},
	}

	days := LeadsLastSevenDays(refs, now)
	if len(days) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(days))
	}
	if days[0].Date != "2023-10-16" || days[0].Leads != 1 {
		t.Fatalf("unexpected first bucket: %+v", days[0])
	}
	if days[6].Date != "2023-10-22" || days[6].Name != "Sun" || days[6].Leads != 2 {
		t.Fatalf("unexpected last bucket: %+v", days[6])
	}
}

func TestMonthlyEarningsTrend(t *testing.T) {
	now := time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC)
	trend := MonthlyEarningsTrend(samplePayouts(), now, 3)

	if len(trend) != 3 {
		t.Fatalf("expected 3 months, got %d", len(trend))
	}
	if trend[0].Month != "2023-09" || trend[2].Month != "2023-11" {
		t.Fatalf("unexpected months: %+v", trend)
	}
	if !trend[1].Earnings.Equal(decimal.NewFromInt(7500)) || !trend[2].Earnings.IsZero() {
		t.Fatalf("unexpected earnings: %+v", trend)
	}
	if len(MonthlyEarningsTrend(nil, now, 0)) != 0 {
		t.Fatal("expected empty trend for n=0")
	}
}
