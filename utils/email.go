package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/smtp"
	"os"
	"strconv"

	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// OrderConfirmationData feeds the order confirmation template.
type OrderConfirmationData struct {
	OrderNumber   string
	CustomerName  string
	Items         string
	Subtotal      float64
	Shipping      float64
	Tax           float64
	Discount      float64
	Total         float64
	PaymentMethod string
	DetailLink    string
}

// SendOrderConfirmationEmail sends the order confirmation (async so the
// checkout response is not delayed). Failures are logged only.
func SendOrderConfirmationEmail(to string, qrPNG []byte, data OrderConfirmationData) {
	go func() {
		tmplPath := "templates/order_confirmation.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("failed to load order confirmation template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("failed to render order confirmation template: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Order confirmation #"+data.OrderNumber)
		m.SetBody("text/html", body.String())

		if len(qrPNG) > 0 {
			m.Embed("order_qr.png", gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrPNG)
				return err
			}), gomail.SetHeader(map[string][]string{
				"Content-Type":        {"image/png"},
				"Content-ID":          {"<order_qr_code>"},
				"Content-Disposition": {"inline"},
			}))
		}

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send order confirmation email: %v", err)
		}
	}()
}

// SendOtpEmail delivers the login code as plain text. Used when the
// customer has an email on file; OTP delivery is best-effort.
func SendOtpEmail(to, otp string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	e := email.NewEmail()
	e.From = from
	e.To = []string{to}
	e.Subject = "Your login code"
	e.Text = []byte(fmt.Sprintf("Your one-time login code is %s. It expires in 10 minutes.", otp))
	return e.Send(host+":"+port, smtp.PlainAuth("", username, password, host))
}

// SendNewsletterEmail sends one plain-text newsletter mail.
func SendNewsletterEmail(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	e := email.NewEmail()
	e.From = from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)
	return e.Send(host+":"+port, smtp.PlainAuth("", username, password, host))
}
