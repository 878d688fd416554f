// ABOUTME: Chunk represents a token-bounded excerpt of a larger document
// ABOUTME: Carries its position and the total count for positional framing
package models

// Chunk is one bounded piece of a document. Index is 0-based; Total is the
// final chunk count, known once splitting completes.
type Chunk struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Total int    `json:"total"`
}
