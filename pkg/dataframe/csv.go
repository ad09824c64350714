package dataframe

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Candidate field delimiters, checked in priority order.
var candidateDelimiters = []rune{',', '|', '%', '&', '/', '~', '*', '#', '\t'}

// ErrNoDelimiter is returned when no candidate splits the sample.
var ErrNoDelimiter = errors.New("dataframe: no candidate delimiter splits the sample")

// DetectDelimiter inspects a short text sample and returns the first
// candidate delimiter that splits every sampled line into the same
// number of fields, more than one per line.
func DetectDelimiter(sample string) (rune, error) {
	lines := strings.Split(strings.TrimRight(sample, "\r\n"), "\n")
	for _, delimiter := range candidateDelimiters {
		if splitsConsistently(lines, delimiter) {
			return delimiter, nil
		}
	}
	return 0, ErrNoDelimiter
}

func splitsConsistently(lines []string, delimiter rune) bool {
	fields := 0
	for _, line := range lines {
		if line == "" {
			continue
		}
		count := len(strings.Split(line, string(delimiter)))
		if count < 2 {
			return false
		}
		if fields == 0 {
			fields = count
			continue
		}
		if count != fields {
			return false
		}
	}
	return fields > 0
}

// ReadCSV loads a delimited file into a frame, detecting the delimiter
// from the first line when none is supplied (pass 0). The header row
// supplies the column names; empty cells become nil.
func ReadCSV(path string, delimiter rune) (*Frame, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataframe: read %s: %w", path, err)
	}

	if delimiter == 0 {
		sample, _, _ := strings.Cut(string(raw), "\n")
		delimiter, err = DetectDelimiter(sample)
		if err != nil {
			return nil, fmt.Errorf("dataframe: %s: %w", path, err)
		}
	}

	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataframe: parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataframe: %s has no header row", path)
	}

	frame := New(records[0]...)
	for _, record := range records[1:] {
		row := make(Row, len(records[0]))
		for i, column := range records[0] {
			if i >= len(record) || record[i] == "" {
				row[column] = nil
				continue
			}
			row[column] = record[i]
		}
		frame.Append(row)
	}
	return frame, nil
}
