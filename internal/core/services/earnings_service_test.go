package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"rupivo-partner/internal/core/domain"

	"github.com/shopspring/decimal"
)

func newTestEarningsService() *EarningsService {
	store := newSeededStore()
	svc := NewEarningsService(store.Payouts())
	svc.nowFn = func() time.Time { return fixedNow }
	return svc
}

func TestGetEarnings(t *testing.T) {
	data := newTestEarningsService().GetEarnings()

	s := data.Summary
	if !s.TotalEarned.Equal(decimal.NewFromInt(10500)) || !s.Paid.Equal(decimal.NewFromInt(7500)) || !s.Pending.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if len(data.Breakdown) != 2 || data.Breakdown[0].RatePercent != "1.50%" {
		t.Fatalf("unexpected breakdown: %+v", data.Breakdown)
	}
	if len(data.Trend) != trendMonths {
		t.Fatalf("expected %d months, got %d", trendMonths, len(data.Trend))
	}
	last := data.Trend[len(data.Trend)-1]
	if last.Month != "2023-10" || !last.Earnings.Equal(decimal.NewFromInt(7500)) {
		t.Fatalf("unexpected current month: %+v", last)
	}
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		start   string
		end     string
		want    domain.DateRangeMode
		wantErr bool
	}{
		{"default", "", "", "", domain.RangeAll, false},
		{"thirty days", "30days", "", "", domain.RangeLast30Days, false},
		{"custom", "custom", "2023-10-01", "2023-10-31", domain.RangeCustom, false},
		{"custom open end", "custom", "2023-10-01", "", domain.RangeCustom, false},
		{"bad date", "custom", "01/10/2023", "", "", true},
		{"reversed", "custom", "2023-10-31", "2023-10-01", "", true},
		{"unknown mode", "forever", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseDateRange(tt.mode, tt.start, tt.end)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Mode != tt.want {
				t.Fatalf("expected mode %s, got %s", tt.want, r.Mode)
			}
		})
	}
}

func TestListPayoutsByRange(t *testing.T) {
	svc := newTestEarningsService()

	r, _ := ParseDateRange("custom", "2023-10-01", "2023-10-31")
	got := svc.ListPayouts(r)
	if len(got) != 1 || got[0].ID != "pay_1" {
		t.Fatalf("expected pay_1 only, got %+v", got)
	}

	r, _ = ParseDateRange("custom", "2023-11-01", "2023-11-30")
	if got := svc.ListPayouts(r); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %+v", got)
	}
}

func TestExportCSV(t *testing.T) {
	svc := newTestEarningsService()

	data, err := svc.ExportCSV(domain.DateRange{Mode: domain.RangeAll})
	if err != nil {
		t.Fatalf("ExportCSV returned error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "ref_1,") || !strings.Contains(lines[1], "25/10/2023") {
		t.Fatalf("unexpected row: %s", lines[1])
	}

	r, _ := ParseDateRange("custom", "2024-01-01", "2024-01-31")
	if _, err := svc.ExportCSV(r); !errors.Is(err, domain.ErrNothingToExport) {
		t.Fatalf("expected ErrNothingToExport, got %v", err)
	}
}

func TestPendingSummary(t *testing.T) {
	count, total := newTestEarningsService().PendingSummary()
	if count != 1 || total != "3000" {
		t.Fatalf("expected 1 pending totalling 3000, got %d %s", count, total)
	}
}
