package dto

// DashboardResponse is the admin landing page payload: one row count per
// managed resource plus the contact inbox broken down by status.
type DashboardResponse struct {
	Counts           map[string]int64 `json:"counts"`
	MessagesByStatus map[string]int64 `json:"messages_by_status"`
}
