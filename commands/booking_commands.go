package commands

import (
	"homestay/models"

	"gorm.io/gorm"
)

// BookingCommand định nghĩa interface cho các command
type BookingCommand interface {
	Execute() error
}

// CreateBookingCommand command để tạo booking mới
type CreateBookingCommand struct {
	booking *models.Booking
	db      *gorm.DB
}

func NewCreateBookingCommand(booking *models.Booking, db *gorm.DB) *CreateBookingCommand {
	return &CreateBookingCommand{
		booking: booking,
		db:      db,
	}
}

func (c *CreateBookingCommand) Execute() error {
	return c.db.Create(c.booking).Error
}

// UpdateBookingCommand command để cập nhật booking
type UpdateBookingCommand struct {
	booking *models.Booking
	db      *gorm.DB
}

func NewUpdateBookingCommand(booking *models.Booking, db *gorm.DB) *UpdateBookingCommand {
	return &UpdateBookingCommand{
		booking: booking,
		db:      db,
	}
}

func (c *UpdateBookingCommand) Execute() error {
	return c.db.Save(c.booking).Error
}

// ChangeBookingStatusCommand command để đổi trạng thái booking
type ChangeBookingStatusCommand struct {
	bookingID uint
	status    int
	db        *gorm.DB
}

func NewChangeBookingStatusCommand(bookingID uint, status int, db *gorm.DB) *ChangeBookingStatusCommand {
	return &ChangeBookingStatusCommand{
		bookingID: bookingID,
		status:    status,
		db:        db,
	}
}

func (c *ChangeBookingStatusCommand) Execute() error {
	return c.db.Model(&models.Booking{}).Where("id = ?", c.bookingID).
		Update("status", c.status).Error
}
