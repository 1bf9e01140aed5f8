// Package pipeline turns a five-line scalar record into the nine-line
// conversion report.
package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/scalarlab/typecast/pkg/coerce"
)

// recordLines is the fixed number of input lines in a record.
const recordLines = 5

// Record is one parsed input record: three string-typed scalars followed
// by an integer literal and a float literal.
type Record struct {
	RawInt   string
	RawFloat string
	RawBool  string
	IntVal   int64
	FloatVal float64
}

// Line is one labeled row of the conversion report.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Config holds pipeline dependencies.
type Config struct {
	Logger *slog.Logger
}

// Pipeline converts records into reports.
type Pipeline struct {
	logger *slog.Logger
}

// New creates a pipeline. A nil logger is replaced with a discard logger.
func New(cfg Config) *Pipeline {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{logger: logger}
}

// ReadRecord reads the five input lines in their fixed order: an integer
// as a string, a float as a string, a boolean as a string, an integer
// literal, and a float literal. Surrounding whitespace is trimmed from
// every line.
func ReadRecord(r io.Reader) (*Record, error) {
	sc := bufio.NewScanner(r)

	lines := make([]string, 0, recordLines)
	for i := 1; i <= recordLines; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("line %d: %w", i, err)
			}
			return nil, fmt.Errorf("line %d: unexpected end of input", i)
		}
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}

	intVal, err := coerce.ParseInt(lines[3])
	if err != nil {
		return nil, fmt.Errorf("line 4: %w", err)
	}
	floatVal, err := coerce.ParseFloat(lines[4])
	if err != nil {
		return nil, fmt.Errorf("line 5: %w", err)
	}

	return &Record{
		RawInt:   lines[0],
		RawFloat: lines[1],
		RawBool:  lines[2],
		IntVal:   intVal,
		FloatVal: floatVal,
	}, nil
}

// Convert computes the nine conversions for a record, in report order.
// Every conversion runs before anything is returned, so a failure in any
// of them yields no partial report.
func (p *Pipeline) Convert(rec *Record) ([]Line, error) {
	intFromStr, err := coerce.ParseInt(rec.RawInt)
	if err != nil {
		return nil, fmt.Errorf("string to int: %w", err)
	}
	floatFromStr, err := coerce.ParseFloat(rec.RawFloat)
	if err != nil {
		return nil, fmt.Errorf("string to float: %w", err)
	}
	intFromFloat, err := coerce.Truncate(rec.FloatVal)
	if err != nil {
		return nil, fmt.Errorf("float to int: %w", err)
	}

	return []Line{
		{Label: "String to int", Value: coerce.FormatInt(intFromStr)},
		{Label: "String to float", Value: coerce.FormatFloat(floatFromStr)},
		{Label: "String to bool", Value: coerce.FormatBool(coerce.StringTruth(rec.RawBool))},
		{Label: "Int to string", Value: coerce.FormatInt(rec.IntVal)},
		{Label: "Int to float", Value: coerce.FormatFloat(float64(rec.IntVal))},
		{Label: "Int to bool", Value: coerce.FormatBool(coerce.IntTruth(rec.IntVal))},
		{Label: "Float to string", Value: coerce.FormatFloat(rec.FloatVal)},
		{Label: "Float to int", Value: coerce.FormatInt(intFromFloat)},
		{Label: "Float to bool", Value: coerce.FormatBool(coerce.FloatTruth(rec.FloatVal))},
	}, nil
}

// Process reads one record from r and writes the report to w, one
// "Label: value" line per conversion. Nothing is written if reading or
// converting fails.
func (p *Pipeline) Process(r io.Reader, w io.Writer) error {
	rec, err := ReadRecord(r)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	p.logger.Debug("record parsed",
		"raw_int", rec.RawInt,
		"raw_float", rec.RawFloat,
		"raw_bool", rec.RawBool,
		"int", rec.IntVal,
		"float", rec.FloatVal,
	)

	lines, err := p.Convert(rec)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := fmt.Fprintf(bw, "%s: %s\n", line.Label, line.Value); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	p.logger.Debug("report written", "lines", len(lines))
	return nil
}
