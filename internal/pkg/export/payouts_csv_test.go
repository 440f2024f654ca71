package export

import (
	"strings"
	"testing"
	"time"

	"rupivo-partner/internal/core/domain"

	"github.com/shopspring/decimal"
)

func TestPayoutsCSV(t *testing.T) {
	paid := time.Date(2023, 10, 25, 10, 0, 0, 0, time.UTC)
	payouts := []domain.Payout{
		{
			ReferralID:      "ref_1",
			DisbursedAmount: decimal.NewFromInt(500000),
			CommissionRate:  decimal.RequireFromString("0.015"),
			EarnedAmount:    decimal.NewFromInt(7500),
			Status:          domain.PayoutPaid,
			PayoutDate:      &paid,
		},
		{
			ReferralID:      "ref_5",
			DisbursedAmount: decimal.NewFromInt(200000),
			CommissionRate:  decimal.RequireFromString("0.015"),
			EarnedAmount:    decimal.NewFromInt(3000),
			Status:          domain.PayoutPending,
		},
	}

	out, err := PayoutsCSV(payouts)
	if err != nil {
		t.Fatalf("PayoutsCSV returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	want := []string{
		"Referral ID,Disbursed Amount,Commission Rate,Amount Earned,Status,Payout Date",
		"ref_1,500000,1.50%,7500,Paid,25/10/2023",
		"ref_5,200000,1.50%,3000,Pending,-",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestFormatRatePercent(t *testing.T) {
	cases := map[string]string{"0.015": "1.50%", "0.02": "2.00%", "0.0125": "1.25%"}
	for in, want := range cases {
		if got := FormatRatePercent(decimal.RequireFromString(in)); got != want {
			t.Fatalf("FormatRatePercent(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestPayoutsCSVHeaderOnlyWhenEmpty(t *testing.T) {
	out, err := PayoutsCSV(nil)
	if err != nil {
		t.Fatalf("PayoutsCSV returned error: %v", err)
	}
	if strings.TrimSpace(string(out)) != strings.Join(PayoutHeader, ",") {
		t.Fatalf("unexpected output %q", out)
	}
}
