package v1

// CreatorRankPromotedData is the Data payload of creator.rank.promoted
// envelopes (schema version 1).
type CreatorRankPromotedData struct {
	CreatorName    string `json:"creator_name"`
	ExternalUserID string `json:"external_user_id,omitempty"`
	PreviousRank   string `json:"previous_rank"`
	NewRank        string `json:"new_rank"`
	LifetimeViews  int64  `json:"lifetime_views"`
	PromotedAt     string `json:"promoted_at"`
}
