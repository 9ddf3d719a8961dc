package dto

// DayRevenue doanh thu của một ngày
type DayRevenue struct {
	Date         string  `json:"date"`
	Revenue      float64 `json:"revenue"`
	BookingCount int     `json:"bookingCount"`
}

// OwnerRevenueResponse thống kê doanh thu của chủ nhà theo khoảng thời gian
type OwnerRevenueResponse struct {
	FromDate      string       `json:"fromDate"`
	ToDate        string       `json:"toDate"`
	TotalRevenue  float64      `json:"totalRevenue"`
	RefundedTotal float64      `json:"refundedTotal"`
	BookingCount  int          `json:"bookingCount"`
	DailyRevenue  []DayRevenue `json:"dailyRevenue"`
}
