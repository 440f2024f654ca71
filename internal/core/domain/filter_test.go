package domain

import (
	"testing"
	"time"
)

func sampleReferrals() []Referral {
	return []Referral{
		{ID: "ref_1", LeadName: "Amit Verma", MaskedMobile: "9876599210", LoanType: "Personal Loan"},
		{ID: "ref_2", LeadName: "Sarah John", MaskedMobile: "9988711223", LoanType: "Business Loan"},
		{ID: "ref_3", LeadName: "Vikram Singh", MaskedMobile: "8877633445", LoanType: "Personal Loan"},
		{ID: "ref_4", LeadName: "Neha Gupta", MaskedMobile: "7766577889", LoanType: "Home Loan"},
		{ID: "ref_6", LeadName: "No Type", MaskedMobile: "7000000000"},
	}
}

func ids(refs []Referral) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.ID
	}
	return out
}

func TestFilterReferrals(t *testing.T) {
	refs := sampleReferrals()

	cases := []struct {
		name     string
		query    string
		category string
		want     []string
	}{
		{"name case insensitive", "sarah", CategoryAll, []string{"ref_2"}},
		{"phone substring", "9988", CategoryAll, []string{"ref_2"}},
		{"empty matches all", "", CategoryAll, []string{"ref_1", "ref_2", "ref_3", "ref_4", "ref_6"}},
		{"empty category matches all", "", "", []string{"ref_1", "ref_2", "ref_3", "ref_4", "ref_6"}},
		{"category keeps order", "", "Personal Loan", []string{"ref_1", "ref_3"}},
		{"query and category", "singh", "Personal Loan", []string{"ref_3"}},
		{"query excluded by category", "sarah", "Home Loan", []string{}},
		{"no match", "zzz", CategoryAll, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(FilterReferrals(refs, tc.query, tc.category))
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestFilterReferralsEmptyIsNotNil(t *testing.T) {
	if got := FilterReferrals(nil, "x", CategoryAll); got == nil {
		t.Fatal("expected empty non-nil slice")
	}
}

func TestFilterReferralsAllCategoryRoundTrip(t *testing.T) {
	refs := sampleReferrals()
	if got := len(FilterReferrals(refs, "", CategoryAll)); got != len(refs) {
		t.Fatalf("All category returned %d of %d", got, len(refs))
	}
}

func TestCategories(t *testing.T) {
	got := Categories(sampleReferrals())
	want := []string{"All", "Personal Loan", "Business Loan", "Home Loan"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func datedPayout(id string, ts string) Payout {
	d, _ := time.Parse(time.RFC3339, ts)
	return Payout{ID: id, PayoutDate: &d, Status: PayoutPaid}
}

func TestCustomRangeIsInclusiveThroughEndOfDay(t *testing.T) {
	payouts := []Payout{
		datedPayout("in", "2023-10-25T10:00:00Z"),
		datedPayout("out", "2023-11-01T00:00:00Z"),
		datedPayout("edge", "2023-10-31T23:59:59Z"),
		datedPayout("start", "2023-10-01T00:00:00Z"),
	}
	r := DateRange{
		Mode:  RangeCustom,
		Start: time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2023, 10, 31, 0, 0, 0, 0, time.UTC),
	}

	got := FilterPayoutsByDateRange(payouts, r, time.Now())
	if len(got) != 3 || got[0].ID != "in" || got[1].ID != "edge" || got[2].ID != "start" {
		t.Fatalf("unexpected custom range result: %+v", got)
	}
}

func TestDatelessPayoutsNeverMatch(t *testing.T) {
	payouts := []Payout{{ID: "pending"}, datedPayout("paid", "2023-10-25T10:00:00Z")}

	for _, mode := range []DateRangeMode{RangeAll, RangeLast30Days, RangeLastQuarter, RangeCustom} {
		got := FilterPayoutsByDateRange(payouts, DateRange{Mode: mode}, time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC))
		for _, p := range got {
			if p.ID == "pending" {
				t.Fatalf("mode %s included a dateless payout", mode)
			}
		}
	}
}

func TestRelativeRanges(t *testing.T) {
	now := time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC)
	payouts := []Payout{
		datedPayout("recent", "2023-12-20T00:00:00Z"),
		datedPayout("older", "2023-11-01T00:00:00Z"),
		datedPayout("ancient", "2023-06-01T00:00:00Z"),
		datedPayout("future", "2024-01-05T00:00:00Z"),
	}

	last30 := FilterPayoutsByDateRange(payouts, DateRange{Mode: RangeLast30Days}, now)
	if len(last30) != 1 || last30[0].ID != "recent" {
		t.Fatalf("unexpected 30 day result: %+v", last30)
	}

	quarter := FilterPayoutsByDateRange(payouts, DateRange{Mode: RangeLastQuarter}, now)
	if len(quarter) != 2 {
		t.Fatalf("unexpected quarter result: %+v", quarter)
	}

	all := FilterPayoutsByDateRange(payouts, DateRange{Mode: RangeAll}, now)
	if len(all) != 4 {
		t.Fatalf("expected all dated payouts, got %+v", all)
	}

	// a broader window re-applied to a narrower result is a superset
	again := FilterPayoutsByDateRange(last30, DateRange{Mode: RangeLastQuarter}, now)
	if len(again) != len(last30) {
		t.Fatalf("broader filter dropped records: %+v", again)
	}
}

func TestParseDateRangeMode(t *testing.T) {
	cases := map[string]DateRangeMode{
		"":            RangeAll,
		"all":         RangeAll,
		"30days":      RangeLast30Days,
		"last30days":  RangeLast30Days,
		"quarter":     RangeLastQuarter,
		"lastQuarter": RangeLastQuarter,
		"custom":      RangeCustom,
	}
	for raw, want := range cases {
		got, err := ParseDateRangeMode(raw)
		if err != nil || got != want {
			t.Fatalf("ParseDateRangeMode(%q) = %q, %v; want %q", raw, got, err, want)
		}
	}
	if _, err := ParseDateRangeMode("yesterday"); err != ErrInvalidDateRange {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}
