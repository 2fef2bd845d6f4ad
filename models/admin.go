package models

// PlatformStats is the admin dashboard headline counters payload.
type PlatformStats struct {
	TotalUsers     int     `json:"totalUsers"`
	TotalProviders int     `json:"totalProviders"`
	TotalBookings  int     `json:"totalBookings"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

// AdminUser is a platform account row in the admin users table.
type AdminUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Analytics is the optional admin analytics payload. The endpoint is
// best-effort; a failed fetch leaves this nil.
type Analytics struct {
	BookingsByDay   map[string]int     `json:"bookingsByDay,omitempty"`
	TopCategories   []string           `json:"topCategories,omitempty"`
	RevenueByMonth  map[string]float64 `json:"revenueByMonth,omitempty"`
}
