package gateway

// Draft lifecycle statuses as defined by the gateway API. The set is open
// ended; the console only branches on StatusApproved.
const (
	StatusDraft     = "draft"
	StatusInReview  = "in_review"
	StatusApproved  = "approved"
	StatusPublished = "published"
)

// PublishChannels is the fixed channel set sent with every publish request.
var PublishChannels = []string{"cms", "telegram"}

// Draft represents a draft post as returned by the gateway API. The gateway
// owns the authoritative record; the console holds a per-render copy only.
type Draft struct {
	ID               int      `json:"id"`
	Slug             string   `json:"slug"`
	Title            string   `json:"title"`
	ReliabilityScore *float64 `json:"reliability_score"`
	CreatedAt        string   `json:"created_at"`
	Status           string   `json:"status"`
}

type approveRequest struct {
	PostID int `json:"post_id"`
}

type publishRequest struct {
	PostID   int      `json:"post_id"`
	Channels []string `json:"channels"`
}
