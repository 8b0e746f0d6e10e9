package models

// Proposal is an immutable snapshot of a submitted offer. Value and
// CreatedAt are formatted at submission time and never recomputed.
type Proposal struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"createdAt"`
	Vehicle   string `json:"vehicle"`
	Value     string `json:"value"`
	Notes     string `json:"notes,omitempty"`
	Email     string `json:"email"`
	Admin     bool   `json:"admin"`
}
