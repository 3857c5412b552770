package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rafflewise/draw-engine/internal/models"
)

// ImportResult summarizes one CSV parse: how many rows were seen, the
// entries that parsed cleanly and a message per rejected row
type ImportResult struct {
	TotalRows int
	Entries   []*models.Entry
	Errors    []string
}

// ParseEntriesCSV reads participant entries from a CSV stream. The header
// row names the columns; common aliases are accepted. Only the code column
// is required. Rows that fail to parse are reported in the result, never
// fatal.
func ParseEntriesCSV(r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	codeIdx := findColumnIndex(header, []string{"Code", "Participant Code", "Ref", "Reference"})
	nameIdx := findColumnIndex(header, []string{"Name", "Participant Name", "Full Name"})
	ticketsIdx := findColumnIndex(header, []string{"Tickets", "Weight", "Chances"})

	if codeIdx == -1 {
		return nil, fmt.Errorf("code column not found in CSV")
	}

	result := &ImportResult{}
	seen := make(map[string]bool)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Error reading row: %v", err))
			continue
		}

		result.TotalRows++

		code := NormalizeCode(row[codeIdx])
		if code == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: No code found", result.TotalRows))
			continue
		}
		if seen[code] {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Duplicate code %s", result.TotalRows, MaskCode(code)))
			continue
		}
		seen[code] = true

		name := ""
		if nameIdx != -1 {
			name = strings.TrimSpace(row[nameIdx])
		}

		tickets := 1
		if ticketsIdx != -1 && row[ticketsIdx] != "" {
			parsed, err := strconv.Atoi(strings.TrimSpace(row[ticketsIdx]))
			if err != nil || parsed < 1 {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Invalid ticket count: %s", result.TotalRows, row[ticketsIdx]))
				continue
			}
			tickets = parsed
		}

		result.Entries = append(result.Entries, &models.Entry{
			Code:    code,
			Name:    name,
			Tickets: tickets,
			Source:  models.EntrySourceCSVImport,
		})
	}

	return result, nil
}

// findColumnIndex finds the index of a column by possible names
func findColumnIndex(header []string, possibleNames []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, name := range possibleNames {
			if strings.ToLower(name) == h {
				return i
			}
		}
	}
	return -1
}
