package model

// DashboardStats aggregates account counters for the admin dashboard.
type DashboardStats struct {
	TotalUsers        int `json:"totalUsers"`
	TotalWorkers      int `json:"totalWorkers"`
	ActiveWorkers     int `json:"activeWorkers"`
	InactiveWorkers   int `json:"inactiveWorkers"`
	UsersLast30Days   int `json:"usersLast30Days"`
	WorkersLast30Days int `json:"workersLast30Days"`
}
