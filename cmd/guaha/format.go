package main

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// formatScore renders a similarity score with fixed precision so columns
// line up and output stays stable across runs.
func formatScore(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}

// displayValue renders an opaque definition value for the terminal: JSON
// strings print unquoted, anything else prints as compact JSON.
func displayValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err == nil {
		return buf.String()
	}
	return string(raw)
}
