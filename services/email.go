package services

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/gomail.v2"
)

// smtpDialer builds a dialer from EMAIL_USER / EMAIL_PASS and optional
// SMTP_HOST / SMTP_PORT overrides. Defaults match a Gmail sender.
func smtpDialer() *gomail.Dialer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		port = p
	}
	return gomail.NewDialer(host, port, os.Getenv("EMAIL_USER"), os.Getenv("EMAIL_PASS"))
}

func send(to, subject, contentType, body string) error {
	from := os.Getenv("EMAIL_USER")
	if from == "" {
		log.Printf("📪 Email disabled (EMAIL_USER not set), skipping %q to %s", subject, to)
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", from, "Sea Side Waffle")
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody(contentType, body)

	return smtpDialer().DialAndSend(m)
}

// SendOTPEmail mails a login code together with its expiry window.
func SendOTPEmail(to, code string, ttl time.Duration) error {
	body := fmt.Sprintf("Your login OTP is %s. It will expire in %d seconds.", code, int(ttl.Seconds()))
	return send(to, "Your OTP for Login", "text/plain", body)
}

// SendWelcomeEmail mails the post-registration greeting.
func SendWelcomeEmail(to, name string) error {
	body := fmt.Sprintf("<h2>Welcome %s!</h2><p>Thank you for joining Sea Side Waffle. Enjoy our delicious waffles 🍫🧇.</p>", name)
	return send(to, "Welcome to Sea Side Waffle!", "text/html", body)
}

// SendOrderConfirmation mails the checkout receipt.
func SendOrderConfirmation(to string, orderID uint) error {
	body := fmt.Sprintf("<h2>Thank you for your order!</h2><p>Your order has been placed successfully.</p><p><strong>Order ID:</strong> %d</p>", orderID)
	return send(to, "Order Confirmation - Sea Side Waffle", "text/html", body)
}
