// ABOUTME: Analysis holds the summary and topics produced for a text
// ABOUTME: Used both per-chunk (partial) and after aggregation (final)
package models

// Analysis is the outcome of analyzing one text: a summary plus topic labels.
// Per-chunk results and the aggregated final result share this shape.
type Analysis struct {
	Summary string   `json:"summary"`
	Topics  []string `json:"topics,omitempty"`
}
