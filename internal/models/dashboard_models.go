package models

// DashboardStats holds the aggregates shown on the dashboard page. All
// counters are derived in memory from the full client list.
type DashboardStats struct {
	Total   int      `json:"total"`
	Active  int      `json:"active"`
	VIP     int      `json:"vip"`
	Expired []Client `json:"expired"`
}
