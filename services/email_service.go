package services

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"
)

func smtpConfig() (string, string, string, string) {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	return from, password, host, port
}

func formatCurrency(amount float64) string {
	s := fmt.Sprintf("%.0f", amount)
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	pre := n % 3
	if pre > 0 {
		b.WriteString(s[:pre])
		if n > pre {
			b.WriteString(".")
		}
	}
	for i := pre; i < n; i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < n {
			b.WriteString(".")
		}
	}
	return b.String()
}

func sendMail(to, subject, body string) error {
	from, password, host, port := smtpConfig()

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" +
		fmt.Sprintf("Subject: %s\n", subject) + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, []string{to}, msg)
}

// SendBookingEmail gửi email xác nhận đặt phòng thành công
func SendBookingEmail(email string, bookingID uint, totalPrice float64, checkInDate string, checkOutDate string) error {
	priceFormatted := formatCurrency(totalPrice)

	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Đặt phòng thành công</title>
	</head>
	<body>
		<p>Xin chào,</p>
		<p>Chúc mừng! Bạn đã đặt phòng thành công.</p>
		<p>Thông tin đặt phòng của bạn như sau:</p>
		<ul>
			<li>Mã đặt phòng: <strong>%d</strong></li>
			<li>Ngày nhận phòng: <strong>%s</strong></li>
			<li>Ngày trả phòng: <strong>%s</strong></li>
			<li>Tổng giá trị: <strong>%s VND</strong></li>
		</ul>
		<p>Chúng tôi sẽ gửi cho bạn thông tin chi tiết khi có sự thay đổi.</p>
		<p>Cảm ơn bạn đã sử dụng dịch vụ của chúng tôi!</p>
		<p>Xin cảm ơn,<br>Nhóm hỗ trợ</p>
	</body>
	</html>`, bookingID, checkInDate, checkOutDate, priceFormatted)

	return sendMail(email, "Đặt phòng thành công", body)
}

// SendCancellationEmail gửi email thông báo hủy booking kèm số tiền hoàn
func SendCancellationEmail(email string, bookingID uint, refundAmount float64, refundPercentage int) error {
	refundFormatted := formatCurrency(refundAmount)

	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Hủy đặt phòng</title>
	</head>
	<body>
		<p>Xin chào,</p>
		<p>Booking <strong>%d</strong> của bạn đã được hủy.</p>
		<p>Theo chính sách hủy, bạn được hoàn <strong>%d%%</strong>, tương ứng <strong>%s VND</strong>.</p>
		<p>Số tiền sẽ được hoàn về phương thức thanh toán ban đầu trong vòng 5-7 ngày làm việc.</p>
		<p>Xin cảm ơn,<br>Nhóm hỗ trợ</p>
	</body>
	</html>`, bookingID, refundPercentage, refundFormatted)

	return sendMail(email, "Hủy đặt phòng", body)
}

// SendNews gửi email thông báo chung
func SendNews(email string, title string, mess string) error {
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>%s</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>%s</p>
			<p>Xin cám ơn,<br>Nhóm tài khoản</p>
		</body>
		</html>
	`, title, email, mess)

	return sendMail(email, title, body)
}
