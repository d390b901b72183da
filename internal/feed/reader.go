// Package feed decodes the transaction feed and renders the final
// balance snapshot. It owns every CSV concern so the engine never sees
// a wire format.
package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"settle/internal/models"
)

// Feed column names. The header must carry type, client and tx; the
// amount column may be omitted entirely.
const (
	colType   = "type"
	colClient = "client"
	colTx     = "tx"
	colAmount = "amount"
)

// Reader decodes feed rows into typed records. Fields are trimmed of
// surrounding whitespace before decoding.
type Reader struct {
	csv  *csv.Reader
	cols map[string]int
	row  int
	done bool
}

// NewReader wraps r and consumes its header row. A completely empty
// input is a valid feed with no records, not an error.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	rdr := &Reader{csv: cr}
	if err := rdr.readHeader(); err != nil {
		return nil, err
	}
	return rdr, nil
}

func (r *Reader) readHeader() error {
	header, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		r.done = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{colType, colClient, colTx} {
		if _, ok := cols[name]; !ok {
			return fmt.Errorf("header missing %q column", name)
		}
	}
	r.cols = cols
	return nil
}

// Row returns the ordinal of the most recently read data row, starting
// at 1. The header does not count.
func (r *Reader) Row() int {
	return r.row
}

// Next returns the next decoded record, or io.EOF once the feed is
// exhausted. Errors matching Skippable describe rows the caller should
// discard and move past; any other error is a structural failure fatal
// to the run.
func (r *Reader) Next() (models.Record, error) {
	if r.done {
		return models.Record{}, io.EOF
	}

	fields, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		return models.Record{}, io.EOF
	}
	if err != nil {
		return models.Record{}, err
	}
	r.row++

	client, err := strconv.ParseUint(strings.TrimSpace(fields[r.cols[colClient]]), 10, 16)
	if err != nil {
		return models.Record{}, fmt.Errorf("row %d: invalid client id: %w", r.row, err)
	}

	tx, err := strconv.ParseUint(strings.TrimSpace(fields[r.cols[colTx]]), 10, 32)
	if err != nil {
		return models.Record{}, fmt.Errorf("row %d: invalid transaction id: %w", r.row, err)
	}

	var amount decimal.NullDecimal
	if i, ok := r.cols[colAmount]; ok {
		if cell := strings.TrimSpace(fields[i]); cell != "" {
			d, err := decimal.NewFromString(cell)
			if err != nil {
				return models.Record{}, fmt.Errorf("row %d: invalid amount: %w", r.row, err)
			}
			amount = decimal.NullDecimal{Decimal: d, Valid: true}
		}
	}

	// The kind is considered only once the whole row has decoded: a
	// malformed field is fatal even on rows that would be discarded.
	kind, err := models.ParseKind(strings.TrimSpace(fields[r.cols[colType]]))
	if err != nil {
		return models.Record{}, fmt.Errorf("row %d: %w", r.row, err)
	}

	rec, err := models.NewRecord(kind, uint16(client), uint32(tx), amount)
	if err != nil {
		return models.Record{}, fmt.Errorf("row %d: %w", r.row, err)
	}
	return rec, nil
}

// Skippable reports whether err describes a row that should be
// discarded without aborting the run: an unrecognized kind, or a
// deposit or withdrawal whose amount is missing or not positive.
func Skippable(err error) bool {
	return errors.Is(err, models.ErrUnknownKind) ||
		errors.Is(err, models.ErrAmountRequired) ||
		errors.Is(err, models.ErrInvalidAmount)
}
