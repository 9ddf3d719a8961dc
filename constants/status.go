package constants

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
	UserStatusBanned   = 2
)

// User role
const (
	RoleRenter    = 0
	RoleOwner     = 1
	RoleModerator = 2
	RoleAdmin     = 3
)

// Booking status
const (
	BookingStatusPending           = 0
	BookingStatusConfirmed         = 1
	BookingStatusCancelledByRenter = 2
	BookingStatusCancelledByOwner  = 3
	BookingStatusCompleted         = 4
	BookingStatusFailed            = 5
)

// BookingStatusName trả về tên trạng thái booking
func BookingStatusName(status int) string {
	switch status {
	case BookingStatusPending:
		return "pending"
	case BookingStatusConfirmed:
		return "confirmed"
	case BookingStatusCancelledByRenter:
		return "cancelled_by_renter"
	case BookingStatusCancelledByOwner:
		return "cancelled_by_owner"
	case BookingStatusCompleted:
		return "completed"
	case BookingStatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Property status
const (
	PropertyStatusPending  = 0
	PropertyStatusApproved = 1
	PropertyStatusHidden   = 2
)

// Room status
const (
	RoomStatusAvailable   = 1
	RoomStatusOccupied    = 2
	RoomStatusMaintenance = 3
)

// Payment status
const (
	PaymentStatusPending  = 0
	PaymentStatusSuccess  = 1
	PaymentStatusFailed   = 2
	PaymentStatusRefunded = 3
)
