package contactapi

import (
	"fmt"
	"net/smtp"
	"os"

	"portfolio-app/config"
	"portfolio-app/internal/domain/contact"
)

// notifyAdminOfMessage forwards a new contact message to the admin inbox.
// SMTP is optional; without SMTP_HOST the inbox in the dashboard is the
// only place messages show up.
func notifyAdminOfMessage(msg contact.ContactMessage) {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	if host == "" || from == "" {
		return
	}

	auth := smtp.PlainAuth("", from, password, host)

	subject := fmt.Sprintf("New contact message from %s", msg.Name)
	body := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + config.ADMIN_EMAIL + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	if err := smtp.SendMail(host+":"+port, auth, from, []string{config.ADMIN_EMAIL}, message); err != nil {
		fmt.Println("SMTP error:", err)
	}
}
