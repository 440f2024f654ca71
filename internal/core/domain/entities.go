package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReferralStatus is the lifecycle stage of a referred lead
type ReferralStatus string

const (
	StatusRegistered ReferralStatus = "Registered"
	StatusApplied    ReferralStatus = "Applied"
	StatusApproved   ReferralStatus = "Approved"
	StatusDisbursed  ReferralStatus = "Disbursed"
)

// CommissionStatus is the payment state of a referral's commission.
// It moves independently of ReferralStatus.
type CommissionStatus string

const (
	CommissionPending    CommissionStatus = "Pending"
	CommissionPaid       CommissionStatus = "Paid"
	CommissionIneligible CommissionStatus = "Ineligible"
)

// PayoutStatus represents the settlement state of a payout
type PayoutStatus string

const (
	PayoutPending PayoutStatus = "Pending"
	PayoutPaid    PayoutStatus = "Paid"
)

// ParseReferralStatus converts a raw value into a known ReferralStatus
func ParseReferralStatus(raw string) (ReferralStatus, error) {
	switch s := ReferralStatus(raw); s {
	case StatusRegistered, StatusApplied, StatusApproved, StatusDisbursed:
		return s, nil
	}
	return "", ErrUnknownStatus
}

// ParsePayoutStatus converts a raw value into a known PayoutStatus
func ParsePayoutStatus(raw string) (PayoutStatus, error) {
	switch s := PayoutStatus(raw); s {
	case PayoutPending, PayoutPaid:
		return s, nil
	}
	return "", ErrUnknownStatus
}

// Referral represents one lead submitted by the partner
type Referral struct {
	ID               string           `json:"id"`
	LeadName         string           `json:"leadName"`
	MaskedMobile     string           `json:"maskedMobile"`
	Date             time.Time        `json:"date"`
	Status           ReferralStatus   `json:"status"`
	LoanAmount       *decimal.Decimal `json:"loanAmount,omitempty"`
	CommissionStatus CommissionStatus `json:"commissionStatus"`
	LoanType         string           `json:"loanType,omitempty"`
	CreditScore      *int             `json:"creditScore,omitempty"`
	AssignedLender   string           `json:"assignedLender,omitempty"`
}

// Payout represents one commission computation tied to a referral.
// ReferralID is not checked against the referral collection.
type Payout struct {
	ID              string          `json:"id"`
	ReferralID      string          `json:"referralId"`
	DisbursedAmount decimal.Decimal `json:"disbursedAmount"`
	CommissionRate  decimal.Decimal `json:"commissionRate"`
	EarnedAmount    decimal.Decimal `json:"earnedAmount"`
	Status          PayoutStatus    `json:"status"`
	PayoutDate      *time.Time      `json:"payoutDate,omitempty"`
}

// ExpectedEarned returns DisbursedAmount * CommissionRate
func (p Payout) ExpectedEarned() decimal.Decimal {
	return p.DisbursedAmount.Mul(p.CommissionRate)
}

// VerifyEarned reports whether EarnedAmount matches the disbursed amount times the rate
func (p Payout) VerifyEarned() bool {
	return p.EarnedAmount.Equal(p.ExpectedEarned())
}

// BankDetails holds the partner's payout account
type BankDetails struct {
	AccountHolderName string `json:"accountHolderName"`
	AccountNumber     string `json:"accountNumber"`
	BankName          string `json:"bankName"`
	IFSCCode          string `json:"ifscCode"`
}

// UserProfile represents the partner of the current session.
// TotalEarnings is a cached display figure and is not derived from payouts.
type UserProfile struct {
	Name          string          `json:"name"`
	ReferralCode  string          `json:"referralCode"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	TotalEarnings decimal.Decimal `json:"totalEarnings"`
	BankDetails   *BankDetails    `json:"bankDetails,omitempty"`
}

// BannerIdea is one generated marketing banner concept
type BannerIdea struct {
	Concept string `json:"concept"`
	Tagline string `json:"tagline"`
}
