package utils

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// BookingConfirmationData feeds the confirmation email template.
type BookingConfirmationData struct {
	BookingID     string
	TransportName string
	TransportID   string
	Origin        string
	Destination   string
	TravelDate    string
	Departure     string
	SeatClass     string
	BookingStatus string
}

// SendBookingConfirmationEmail sends the booking confirmation asynchronously
// so the API response is never delayed by SMTP. The QR code carrying the
// booking reference is attached when qrBytes is non-nil.
func SendBookingConfirmationEmail(to string, data BookingConfirmationData, qrBytes []byte) {
	go func() {
		tmplPath := "templates/booking_confirmation.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("[EMAIL] cannot load template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("[EMAIL] cannot render template: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")
		if host == "" || from == "" {
			log.Print("[EMAIL] SMTP not configured, skipping confirmation email")
			return
		}

		port, _ := strconv.Atoi(portStr)
		if port == 0 {
			port = 587
		}

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Booking confirmation #"+data.BookingID)
		m.SetBody("text/html", body.String())

		if qrBytes != nil {
			filename := "booking_" + data.BookingID + ".png"
			m.Attach(filename, gomail.Rename(filename), gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, bytes.NewReader(qrBytes))
				return err
			}))
		}

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("[EMAIL] send failed: %v", err)
		} else {
			log.Printf("[EMAIL] confirmation sent to %s for booking %s", to, data.BookingID)
		}
	}()
}
