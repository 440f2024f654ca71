package domain

import "time"

// StatusSteps is the fixed, ordered referral progression.
// Every ReferralStatus appears exactly once.
var StatusSteps = []ReferralStatus{
	StatusRegistered,
	StatusApplied,
	StatusApproved,
	StatusDisbursed,
}

// DefaultTimelineOffsets are the display estimates, in days after the referral
// date, for each entry of StatusSteps.
var DefaultTimelineOffsets = []int{0, 2, 7, 10}

var stepDescriptions = map[ReferralStatus]string{
	StatusRegistered: "Lead captured",
	StatusApplied:    "Documents submitted",
	StatusApproved:   "Lender approved",
	StatusDisbursed:  "Funds transferred",
}

// StepIndex returns the position of status in StatusSteps, or -1 if unknown
func StepIndex(status ReferralStatus) int {
	for i, s := range StatusSteps {
		if s == status {
			return i
		}
	}
	return -1
}

// ProgressRatio returns the progress-bar fill fraction for status in [0,1].
// Unknown statuses report 0.
func ProgressRatio(status ReferralStatus) float64 {
	idx := StepIndex(status)
	if idx <= 0 {
		return 0
	}
	return float64(idx) / float64(len(StatusSteps)-1)
}

// IsStepReached reports whether a referral at current has passed through step
func IsStepReached(current, step ReferralStatus) bool {
	stepIdx := StepIndex(step)
	currentIdx := StepIndex(current)
	if stepIdx < 0 || currentIdx < 0 {
		return false
	}
	return stepIdx <= currentIdx
}

// TimelineDateForStep returns referralDate shifted by offsetDays when step has been
// reached, and nil otherwise.
func TimelineDateForStep(referralDate time.Time, offsetDays int, current, step ReferralStatus) *time.Time {
	if !IsStepReached(current, step) {
		return nil
	}
	d := referralDate.AddDate(0, 0, offsetDays)
	return &d
}

// StepDescription returns the human label shown under a timeline step
func StepDescription(step ReferralStatus) string {
	return stepDescriptions[step]
}

// TimelineEntry is one row of a referral's application timeline
type TimelineEntry struct {
	Step        ReferralStatus `json:"step"`
	Description string         `json:"description"`
	Reached     bool           `json:"reached"`
	Date        *time.Time     `json:"date"`
}

// Timeline builds one entry per step of StatusSteps using offsets (same length as StatusSteps)
func Timeline(r Referral, offsets []int) []TimelineEntry {
	entries := make([]TimelineEntry, len(StatusSteps))
	for i, step := range StatusSteps {
		offset := 0
		if i < len(offsets) {
			offset = offsets[i]
		}
		entries[i] = TimelineEntry{
			Step:        step,
			Description: StepDescription(step),
			Reached:     IsStepReached(r.Status, step),
			Date:        TimelineDateForStep(r.Date, offset, r.Status, step),
		}
	}
	return entries
}

// ValidateTimelineOffsets checks there is one non-negative, non-decreasing offset per step
func ValidateTimelineOffsets(offsets []int) error {
	if len(offsets) != len(StatusSteps) {
		return ErrInvalidInput
	}
	prev := 0
	for _, o := range offsets {
		if o < 0 || o < prev {
			return ErrInvalidInput
		}
		prev = o
	}
	return nil
}
