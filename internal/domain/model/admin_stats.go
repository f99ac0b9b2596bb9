package model

// GET /api/admin/stats
type AdminStats struct {
	TotalProducts int64 `json:"totalProducts"`
	TotalUsers    int64 `json:"totalUsers"`
	TotalOrders   int64 `json:"totalOrders"`
	PendingOrders int64 `json:"pendingOrders"`
}
