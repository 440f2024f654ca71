package export

import (
	"bytes"
	"encoding/csv"
	"io"

	"rupivo-partner/internal/core/domain"

	"github.com/shopspring/decimal"
)

// PayoutsFileName is the download name of the payout history export
const PayoutsFileName = "payouts_history.csv"

// MissingDate is written in place of an absent payout date
const MissingDate = "-"

// PayoutHeader is the header row of the payout export
var PayoutHeader = []string{"Referral ID", "Disbursed Amount", "Commission Rate", "Amount Earned", "Status", "Payout Date"}

var hundred = decimal.NewFromInt(100)

// FormatRatePercent renders a fractional rate as a percentage with 2 decimals, e.g. 0.015 -> "1.50%"
func FormatRatePercent(rate decimal.Decimal) string {
	return rate.Mul(hundred).StringFixed(2) + "%"
}

// WritePayoutsCSV writes one row per payout under PayoutHeader.
// Payout dates are rendered as DD/MM/YYYY.
func WritePayoutsCSV(w io.Writer, payouts []domain.Payout) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(PayoutHeader); err != nil {
		return err
	}

	for _, p := range payouts {
		date := MissingDate
		if p.PayoutDate != nil {
			date = p.PayoutDate.Format("02/01/2006")
		}
		row := []string{
			p.ReferralID,
			p.DisbursedAmount.String(),
			FormatRatePercent(p.CommissionRate),
			p.EarnedAmount.String(),
			string(p.Status),
			date,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// PayoutsCSV renders payouts to an in-memory CSV document
func PayoutsCSV(payouts []domain.Payout) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePayoutsCSV(&buf, payouts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
