package models

import (
	"errors"

	"homestay/constants"
)

// BookingState định nghĩa interface cho các trạng thái booking
type BookingState interface {
	Confirm(booking *Booking) error
	CancelByRenter(booking *Booking) error
	CancelByOwner(booking *Booking) error
	Complete(booking *Booking) error
	Fail(booking *Booking) error
}

// PendingState trạng thái chờ xác nhận
type PendingState struct{}

func (s *PendingState) Confirm(booking *Booking) error {
	booking.Status = constants.BookingStatusConfirmed
	return nil
}

func (s *PendingState) CancelByRenter(booking *Booking) error {
	booking.Status = constants.BookingStatusCancelledByRenter
	return nil
}

func (s *PendingState) CancelByOwner(booking *Booking) error {
	booking.Status = constants.BookingStatusCancelledByOwner
	return nil
}

func (s *PendingState) Complete(booking *Booking) error {
	return errors.New("cannot complete pending booking")
}

func (s *PendingState) Fail(booking *Booking) error {
	booking.Status = constants.BookingStatusFailed
	return nil
}

// ConfirmedState trạng thái đã xác nhận
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(booking *Booking) error {
	return errors.New("booking already confirmed")
}

func (s *ConfirmedState) CancelByRenter(booking *Booking) error {
	booking.Status = constants.BookingStatusCancelledByRenter
	return nil
}

func (s *ConfirmedState) CancelByOwner(booking *Booking) error {
	booking.Status = constants.BookingStatusCancelledByOwner
	return nil
}

func (s *ConfirmedState) Complete(booking *Booking) error {
	booking.Status = constants.BookingStatusCompleted
	return nil
}

func (s *ConfirmedState) Fail(booking *Booking) error {
	return errors.New("cannot fail confirmed booking")
}

// CompletedState trạng thái hoàn thành
type CompletedState struct{}

func (s *CompletedState) Confirm(booking *Booking) error {
	return errors.New("booking already completed")
}

func (s *CompletedState) CancelByRenter(booking *Booking) error {
	return errors.New("cannot cancel completed booking")
}

func (s *CompletedState) CancelByOwner(booking *Booking) error {
	return errors.New("cannot cancel completed booking")
}

func (s *CompletedState) Complete(booking *Booking) error {
	return errors.New("booking already completed")
}

func (s *CompletedState) Fail(booking *Booking) error {
	return errors.New("cannot fail completed booking")
}

// CancelledState trạng thái đã hủy (bởi khách hoặc chủ nhà)
type CancelledState struct{}

func (s *CancelledState) Confirm(booking *Booking) error {
	return errors.New("cannot confirm cancelled booking")
}

func (s *CancelledState) CancelByRenter(booking *Booking) error {
	return errors.New("booking already cancelled")
}

func (s *CancelledState) CancelByOwner(booking *Booking) error {
	return errors.New("booking already cancelled")
}

func (s *CancelledState) Complete(booking *Booking) error {
	return errors.New("cannot complete cancelled booking")
}

func (s *CancelledState) Fail(booking *Booking) error {
	return errors.New("cannot fail cancelled booking")
}

// FailedState trạng thái thanh toán thất bại
type FailedState struct{}

func (s *FailedState) Confirm(booking *Booking) error {
	return errors.New("cannot confirm failed booking")
}

func (s *FailedState) CancelByRenter(booking *Booking) error {
	return errors.New("cannot cancel failed booking")
}

func (s *FailedState) CancelByOwner(booking *Booking) error {
	return errors.New("cannot cancel failed booking")
}

func (s *FailedState) Complete(booking *Booking) error {
	return errors.New("cannot complete failed booking")
}

func (s *FailedState) Fail(booking *Booking) error {
	return errors.New("booking already failed")
}

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status int) BookingState {
	switch status {
	case constants.BookingStatusPending:
		return &PendingState{}
	case constants.BookingStatusConfirmed:
		return &ConfirmedState{}
	case constants.BookingStatusCompleted:
		return &CompletedState{}
	case constants.BookingStatusCancelledByRenter, constants.BookingStatusCancelledByOwner:
		return &CancelledState{}
	case constants.BookingStatusFailed:
		return &FailedState{}
	default:
		return &PendingState{}
	}
}
