package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNoRows is returned when an export is requested over an empty collection.
// Callers surface it to the user; it is not a server fault.
var ErrNoRows = errors.New(ErrNothingToExport)

// Bookkeeping fields never included in exports.
var csvExcludedFields = map[string]bool{
	"_id":       true,
	"__v":       true,
	"createdAt": true,
	"updatedAt": true,
}

// ToRows flattens a slice of models into generic records via their JSON
// representation, preserving numeric literals (years stay "2020", not
// "2.020000e+03").
func ToRows(v interface{}) ([]map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to flatten records: %w", err)
	}

	var rows []map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to flatten records: %w", err)
	}

	return rows, nil
}

// MarshalCSV renders rows as CSV. The header comes from the first row's key
// set minus bookkeeping fields, in sorted order so repeated exports line up;
// every data row follows that same order. Absent values render empty,
// structured values render as quoted JSON.
func MarshalCSV(rows []map[string]interface{}) (string, error) {
	if len(rows) == 0 {
		return "", ErrNoRows
	}

	fields := make([]string, 0, len(rows[0]))
	for key := range rows[0] {
		if !csvExcludedFields[key] {
			fields = append(fields, key)
		}
	}
	sort.Strings(fields)

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(fields, ","))

	for _, row := range rows {
		cells := make([]string, len(fields))
		for i, field := range fields {
			cells[i] = formatCSVValue(row[field])
		}
		lines = append(lines, strings.Join(cells, ","))
	}

	return strings.Join(lines, "\n"), nil
}

func formatCSVValue(value interface{}) string {
	if value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return escapeCSVScalar(v)
	case json.Number:
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return "false"
	case map[string]interface{}, []interface{}:
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return `"` + strings.ReplaceAll(string(data), `"`, `""`) + `"`
	default:
		return escapeCSVScalar(fmt.Sprintf("%v", v))
	}
}

func escapeCSVScalar(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
