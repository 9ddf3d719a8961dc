package jobs

import (
	"context"
	"log"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// BookingCompleter định nghĩa interface cho việc chuyển booking đã trả phòng sang hoàn tất
type BookingCompleter interface {
	CompletePastCheckouts(ctx context.Context) (int64, error)
}

var bookingCompleter BookingCompleter

// SetBookingCompleter thiết lập implementation cho BookingCompleter
func SetBookingCompleter(completer BookingCompleter) {
	bookingCompleter = completer
}

func runCompletionSweep() {
	if bookingCompleter == nil {
		log.Printf("Lỗi: BookingCompleter chưa được thiết lập")
		return
	}
	n, err := bookingCompleter.CompletePastCheckouts(context.Background())
	if err != nil {
		log.Printf("Lỗi khi cập nhật trạng thái booking đã trả phòng: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Đã chuyển %d booking sang trạng thái hoàn tất", n)
	}
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", runCompletionSweep)
	if err != nil {
		return err
	}

	// Chạy bù ngay khi service khởi động, phòng trường hợp service
	// không chạy đúng thời điểm 0h
	go runCompletionSweep()

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
