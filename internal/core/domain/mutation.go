package domain

// AddReferrals returns a new collection with newOnes ahead of existing.
// Neither input slice is modified.
func AddReferrals(existing, newOnes []Referral) []Referral {
	out := make([]Referral, 0, len(newOnes)+len(existing))
	out = append(out, newOnes...)
	out = append(out, existing...)
	return out
}

// ValidateMobile checks a manually entered mobile number is exactly 10 digits
func ValidateMobile(mobile string) error {
	if len(mobile) != 10 {
		return ErrInvalidMobile
	}
	for _, c := range mobile {
		if c < '0' || c > '9' {
			return ErrInvalidMobile
		}
	}
	return nil
}
