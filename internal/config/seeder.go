package config

import (
	"log"
	"time"

	"rupivo-partner/internal/core/domain"

	"github.com/shopspring/decimal"
)

// SeedData is the fixed session data the portal starts from
type SeedData struct {
	Profile   domain.UserProfile
	Referrals []domain.Referral
	Payouts   []domain.Payout
}

// Seed returns the startup session data and logs payouts whose earned
// amount does not match disbursed amount times rate
func Seed() SeedData {
	log.Println("🌱 Seeding partner session...")

	data := SeedData{
		Profile:   seedProfile(),
		Referrals: seedReferrals(),
		Payouts:   seedPayouts(),
	}

	for _, p := range data.Payouts {
		if !p.VerifyEarned() {
			log.Printf("⚠️ Payout %s earned amount %s differs from expected %s", p.ID, p.EarnedAmount, p.ExpectedEarned())
		}
	}

	log.Printf("✅ Session seeded: %d referrals, %d payouts", len(data.Referrals), len(data.Payouts))
	return data
}

func seedProfile() domain.UserProfile {
	return domain.UserProfile{
		Name:          "Rajesh Sharma",
		ReferralCode:  "RVP-8821",
		Email:         "rajesh.s@example.com",
		Phone:         "+91 98765 43210",
		TotalEarnings: decimal.NewFromInt(15400),
		BankDetails: &domain.BankDetails{
			BankName:          "HDFC Bank",
			AccountNumber:     "XXXXXXXX8821",
			IFSCCode:          "HDFC0001234",
			AccountHolderName: "Rajesh Kumar Sharma",
		},
	}
}

func seedReferrals() []domain.Referral {
	return []domain.Referral{
		{
			ID:               "ref_1",
			LeadName:         "Amit Verma",
			MaskedMobile:     "9876599210",
			Date:             mustTime("2023-10-12T10:00:00Z"),
			Status:           domain.StatusDisbursed,
			LoanAmount:       amount(500000),
			CommissionStatus: domain.CommissionPaid,
			LoanType:         "Personal Loan",
			CreditScore:      score(780),
			AssignedLender:   "HDFC Bank",
		},
		{
			ID:               "ref_2",
			LeadName:         "Sarah John",
			MaskedMobile:     "9988711223",
			Date:             mustTime("2023-10-15T14:30:00Z"),
			Status:           domain.StatusApproved,
			CommissionStatus: domain.CommissionPending,
			LoanType:         "Business Loan",
			CreditScore:      score(745),
			AssignedLender:   "Bajaj Finserv",
		},
		{
			ID:               "ref_3",
			LeadName:         "Vikram Singh",
			MaskedMobile:     "8877633445",
			Date:             mustTime("2023-10-18T09:15:00Z"),
			Status:           domain.StatusApplied,
			CommissionStatus: domain.CommissionPending,
			LoanType:         "Personal Loan",
			CreditScore:      score(680),
			AssignedLender:   "Pending Allocation",
		},
		{
			ID:               "ref_4",
			LeadName:         "Neha Gupta",
			MaskedMobile:     "7766577889",
			Date:             mustTime("2023-10-20T16:45:00Z"),
			Status:           domain.StatusRegistered,
			CommissionStatus: domain.CommissionPending,
			LoanType:         "Home Loan",
		},
		{
			ID:               "ref_5",
			LeadName:         "Arjun Das",
			MaskedMobile:     "9900155667",
			Date:             mustTime("2023-10-22T11:20:00Z"),
			Status:           domain.StatusDisbursed,
			LoanAmount:       amount(200000),
			CommissionStatus: domain.CommissionPending,
			LoanType:         "Personal Loan",
			CreditScore:      score(810),
			AssignedLender:   "IDFC First Bank",
		},
	}
}

func seedPayouts() []domain.Payout {
	paidOn := mustTime("2023-10-25T10:00:00Z")
	rate := decimal.RequireFromString("0.015")

	return []domain.Payout{
		{
			ID:              "pay_1",
			ReferralID:      "ref_1",
			DisbursedAmount: decimal.NewFromInt(500000),
			CommissionRate:  rate,
			EarnedAmount:    decimal.NewFromInt(7500),
			Status:          domain.PayoutPaid,
			PayoutDate:      &paidOn,
		},
		{
			ID:              "pay_2",
			ReferralID:      "ref_5",
			DisbursedAmount: decimal.NewFromInt(200000),
			CommissionRate:  rate,
			EarnedAmount:    decimal.NewFromInt(3000),
			Status:          domain.PayoutPending,
		},
	}
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func score(v int) *int {
	return &v
}
