package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ManualGrantRequest struct {
	CreatorName    string `json:"creator_name"`
	ExternalUserID string `json:"external_user_id"`
	PreviousRank   string `json:"previous_rank"`
	NewRank        string `json:"new_rank"`
	LifetimeViews  int64  `json:"lifetime_views"`
}

type ListPromotionsRequest struct {
	Creator        string
	Unacknowledged string
	Limit          string
}

type RoleGrantDTO struct {
	GrantID        string `json:"grant_id"`
	CreatorName    string `json:"creator_name"`
	ExternalUserID string `json:"external_user_id,omitempty"`
	PreviousRank   string `json:"previous_rank"`
	NewRank        string `json:"new_rank"`
	Role           string `json:"role"`
	LifetimeViews  int64  `json:"lifetime_views"`
	OccurredAt     string `json:"occurred_at"`
	Acknowledged   bool   `json:"acknowledged"`
	AcknowledgedAt string `json:"acknowledged_at,omitempty"`
}

type ListPromotionsResponse struct {
	Items []RoleGrantDTO `json:"items"`
}

type GrantResponse struct {
	Grant RoleGrantDTO `json:"grant"`
}
