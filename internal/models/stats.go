package models

// DashboardStats is the aggregate card row on the admin overview tab.
type DashboardStats struct {
	TotalRevenue float64 `json:"totalRevenue"`
	OrderCount   int     `json:"orderCount"`
	ProductCount int     `json:"productCount"`
	UserCount    int     `json:"userCount"`
	CouponCount  int     `json:"couponCount"`
}

// AdminDashboard aggregates the six independently fetched admin resources. A
// resource whose fetch failed is rendered empty, never as a blocking error.
type AdminDashboard struct {
	Products   []Product       `json:"products"`
	Categories []Category      `json:"categories"`
	Users      []User          `json:"users"`
	Orders     []Order         `json:"orders"`
	Coupons    []Coupon        `json:"coupons"`
	Stats      *DashboardStats `json:"stats,omitempty"`
}
