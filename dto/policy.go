package dto

// PolicyRuleRequest một rule hoàn tiền trong chính sách hủy
type PolicyRuleRequest struct {
	DaysBeforeCheckIn int `json:"daysBeforeCheckIn" binding:"gte=0"`
	RefundPercentage  int `json:"refundPercentage" binding:"gte=0,lte=100"`
}

// UpdatePolicyRequest là DTO cho request cập nhật chính sách hủy của chỗ ở
type UpdatePolicyRequest struct {
	PropertyID uint                `json:"propertyId" binding:"required"`
	IsCustom   bool                `json:"isCustom"`
	Rules      []PolicyRuleRequest `json:"rules" binding:"required,min=1,dive"`
}

// PolicyRuleResponse một rule hoàn tiền trong response
type PolicyRuleResponse struct {
	DaysBeforeCheckIn int `json:"daysBeforeCheckIn"`
	RefundPercentage  int `json:"refundPercentage"`
}

// PolicyResponse là DTO cho response chính sách hủy
type PolicyResponse struct {
	ID         uint                 `json:"id"`
	PropertyID uint                 `json:"propertyId"`
	IsCustom   bool                 `json:"isCustom"`
	Rules      []PolicyRuleResponse `json:"rules"`
}

// RefundPreviewResponse là DTO xem trước số tiền hoàn khi hủy
type RefundPreviewResponse struct {
	BookingID         uint    `json:"bookingId"`
	DaysBeforeCheckIn int     `json:"daysBeforeCheckIn"`
	RefundPercentage  int     `json:"refundPercentage"`
	RefundAmount      float64 `json:"refundAmount"`
}
