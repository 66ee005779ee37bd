// Package csvio reads and writes ledger records as CSV for spreadsheet
// export and bulk import.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/roro-dev/roro/internal/id"
	"github.com/roro-dev/roro/internal/model"
)

// Header is the CSV header row.
const Header = "id,kind,amount,category,icon,note,date,created_at"

const (
	numFields    = 8
	colID        = 0
	colKind      = 1
	colAmount    = 2
	colCategory  = 3
	colIcon      = 4
	colNote      = 5
	colDate      = 6
	colCreatedAt = 7
)

// WriteRecords writes records to w, including the header.
func WriteRecords(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, r := range records {
		if err := cw.Write(MarshalRecord(r)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadRecords reads records written by WriteRecords. The header row is required.
func ReadRecords(r io.Reader) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading records CSV: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}
	if strings.Join(rows[0], ",") != Header {
		return nil, fmt.Errorf("unexpected header %q", strings.Join(rows[0], ","))
	}

	var records []model.Record
	for i, row := range rows[1:] {
		rec, err := UnmarshalRecord(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// MarshalRecord converts a Record to a CSV row.
func MarshalRecord(r model.Record) []string {
	row := make([]string, numFields)
	row[colID] = id.Format(r.ID)
	row[colKind] = string(r.Kind)
	row[colAmount] = r.Amount.String()
	row[colCategory] = r.Category
	row[colIcon] = r.Icon
	row[colNote] = r.Note
	row[colDate] = r.Date
	row[colCreatedAt] = r.CreatedAt
	return row
}

// UnmarshalRecord converts a CSV row to a Record. An empty id column
// yields ID 0, for rows prepared by hand.
func UnmarshalRecord(row []string) (model.Record, error) {
	if len(row) != numFields {
		return model.Record{}, fmt.Errorf("expected %d fields, got %d", numFields, len(row))
	}

	var recordID int64
	if row[colID] != "" {
		v, err := id.Parse(row[colID])
		if err != nil {
			return model.Record{}, err
		}
		recordID = v
	}

	kind := model.Kind(row[colKind])
	if !kind.Valid() {
		return model.Record{}, fmt.Errorf("unknown kind %q", row[colKind])
	}

	amount, err := decimal.NewFromString(row[colAmount])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing amount %q: %w", row[colAmount], err)
	}

	return model.Record{
		ID:        recordID,
		Kind:      kind,
		Amount:    amount,
		Category:  row[colCategory],
		Icon:      row[colIcon],
		Note:      row[colNote],
		Date:      row[colDate],
		CreatedAt: row[colCreatedAt],
	}, nil
}
