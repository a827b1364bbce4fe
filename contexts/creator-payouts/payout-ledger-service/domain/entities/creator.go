package entities

import "time"

// CreatorProfile is derived from a creator's non-rejected video records on
// every read. The stored row is an advisory cache; only ExternalUserID has
// independent life and survives recomputation.
type CreatorProfile struct {
	Name           string
	ExternalUserID string
	LifetimeViews  int64
	CurrentRank    Rank
	VideoCount     int
	TotalPaid      int64
	UnpaidAmount   int64
	UpdatedAt      time.Time
}
