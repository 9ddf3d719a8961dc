package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

type MessageBuilder struct {
	bookingID uint
	status    string
}

func NewMessageBuilder(bookingID uint, status string) *MessageBuilder {
	return &MessageBuilder{
		bookingID: bookingID,
		status:    status,
	}
}

func (b *MessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Booking %d chuyển sang trạng thái %s.", b.bookingID, b.status)
}
