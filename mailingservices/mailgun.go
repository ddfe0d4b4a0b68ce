package mailingservices

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mailgun/mailgun-go/v4"
)

// Mailgun wraps the mailgun client used for transactional mail
type Mailgun struct {
	Client *mailgun.MailgunImpl
}

func (m *Mailgun) Init() {
	m.Client = mailgun.NewMailgun(os.Getenv("PLUME_MG_DOMAIN"), os.Getenv("PLUME_MG_PUBLIC_API_KEY"))
}

// SendResetPassword mails a password reset link to the given address
func (m *Mailgun) SendResetPassword(toEmail, resetLink string) (string, error) {
	sender := os.Getenv("PLUME_EMAIL_FROM")
	subject := "Reset your Plume password"
	body := fmt.Sprintf("We received a request to reset your password.\n\nFollow this link to choose a new one: %s\n\nIf you didn't ask for this, you can ignore this email.", resetLink)

	message := m.Client.NewMessage(sender, subject, body, toEmail)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	resp, id, err := m.Client.Send(ctx, message)
	if err != nil {
		log.Printf("SendResetPassword error: %v", err)
		return "", err
	}

	log.Printf("Queued reset mail, ID: %s Resp: %s", id, resp)
	return id, nil
}
