package domain

import "errors"

// Common domain errors
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// ReferralErrors
var (
	ErrReferralNotFound = errors.New("referral not found")
	ErrInvalidMobile    = errors.New("mobile number must be exactly 10 digits")
	ErrLeadNameRequired = errors.New("lead name is required")
	ErrUnknownStatus    = errors.New("unknown status")
	ErrNoBulkRows       = errors.New("no rows to import")
	ErrUnsupportedFile  = errors.New("only .csv and .xlsx files are supported")
	ErrFileTooLarge     = errors.New("file exceeds the 5MB upload limit")
)

// PayoutErrors
var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrNothingToExport  = errors.New("no data to export")
)

// MarketingErrors
var (
	ErrInvalidTone      = errors.New("tone must be professional, casual or urgent")
	ErrAudienceRequired = errors.New("target audience is required")
)
