// Package ingestion reads the raw gift log and hands the core a validated,
// in-memory table. Schema mismatches and unparseable dates or amounts are
// fatal; the core itself never sees an invalid record.
package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/kenh/donor-rfm/internal/types"
	"github.com/kenh/donor-rfm/internal/validation"
)

// ReadFile opens and parses a gift log CSV file.
func ReadFile(path string) ([]types.Gift, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer f.Close()

	gifts, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return gifts, nil
}

// Read parses gift records from CSV data. The first record is the header; it
// must contain every expected column (any order, extras ignored).
func Read(r io.Reader) ([]types.Gift, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &validation.SchemaError{Missing: types.ExpectedColumns, Expected: types.ExpectedColumns}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if err := validation.CheckHeader(header); err != nil {
		return nil, err
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	var gifts []types.Gift
	rowNum := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", rowNum+1, err)
		}
		rowNum++

		gift, err := parseRecord(record, col, rowNum)
		if err != nil {
			return nil, err
		}
		gifts = append(gifts, gift)
	}

	return gifts, nil
}

func parseRecord(record []string, col map[string]int, rowNum int) (types.Gift, error) {
	field := func(name string) string { return record[col[name]] }

	date, err := ParseGiftDate(field("Gift Date"))
	if err != nil {
		return types.Gift{}, &validation.ParseError{
			Row: rowNum, Column: "Gift Date", Value: field("Gift Date"), Cause: err,
		}
	}
	amount, err := ParseAmount(field("Gift Amount"))
	if err != nil {
		return types.Gift{}, &validation.ParseError{
			Row: rowNum, Column: "Gift Amount", Value: field("Gift Amount"), Cause: err,
		}
	}

	return types.Gift{
		DonorID:      field("Donor ID"),
		DonorSegment: field("Donor Segment"),
		DonorName:    field("Donor Full Name"),
		DonorCountry: field("Donor Country"),
		DonorState:   field("Donor State"),
		DonorCity:    field("Donor City"),
		DonorZip:     field("Donor Zip"),
		GiftID:       field("Gift ID"),
		GiftDate:     date,
		GiftAmount:   amount,
		Channel:      field("Channel"),
		CampaignName: field("Campaign Name"),
		Fund:         field("Fund/Designation"),
		GiftType:     field("Gift Type"),
	}, nil
}
