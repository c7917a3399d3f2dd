package enrich

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/kenh/donor-rfm/internal/types"
)

const dateLayout = "2006-01-02"

// WriteCSV writes enriched rows in the fixed output column order: the 14
// input columns followed by the derived columns. Discrete-regime scores are
// written as integers with the 3-digit RFM string; continuous-regime scores
// and the composite are written with 2 decimal places.
func WriteCSV(w io.Writer, rows []types.EnrichedRow, mode types.Mode) error {
	cw := csv.NewWriter(w)

	header := append(append([]string{}, types.ExpectedColumns...), types.DerivedColumns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.DonorID,
			row.DonorSegment,
			row.DonorName,
			row.DonorCountry,
			row.DonorState,
			row.DonorCity,
			row.DonorZip,
			row.GiftID,
			row.GiftDate.Format(dateLayout),
			formatAmount(row.GiftAmount),
			row.Channel,
			row.CampaignName,
			row.Fund,
			row.GiftType,
			row.LastGift.Format(dateLayout),
			strconv.Itoa(row.DaysSinceLastGift),
		}
		switch mode {
		case types.ModeDiscrete:
			record = append(record,
				strconv.Itoa(int(row.RecencyScore)),
				strconv.Itoa(row.TotalGifts),
				strconv.Itoa(int(row.FrequencyScore)),
				formatAmount(row.TotalAmount),
				strconv.Itoa(int(row.MonetaryScore)),
				row.RFM,
				row.Segment,
			)
		case types.ModeContinuous:
			record = append(record,
				formatScore(row.RecencyScore),
				strconv.Itoa(row.TotalGifts),
				formatScore(row.FrequencyScore),
				formatAmount(row.TotalAmount),
				formatScore(row.MonetaryScore),
				formatScore(row.Composite),
				row.Segment,
			)
		default:
			return fmt.Errorf("unsupported output mode: %s", mode)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row for gift %s: %w", row.GiftID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
