// Fire-and-forget outbound email over the MailJet API. Delivery is never
// awaited by a request handler; failures are logged, not surfaced.
package mailer

import (
	"log"

	mailjet "github.com/mailjet/mailjet-apiv3-go"

	"shikshaksangh_backend/internals/configs"
)

var client *mailjet.Client

func Init() {
	if configs.MailjetAPIKey == "" || configs.MailjetSecretKey == "" {
		log.Println("[WARN] mailer disabled (no MailJet keys)")
		return
	}
	client = mailjet.NewMailjetClient(configs.MailjetAPIKey, configs.MailjetSecretKey)
}

// SendAsync queues one message on a goroutine and returns immediately.
func SendAsync(to, subject, htmlBody string) {
	if client == nil {
		return
	}
	sender := configs.GetEnv("MAIL_SENDER", "noreply@shikshaksangh.org.np")
	go func() {
		info := []mailjet.InfoMessagesV31{{
			From:     &mailjet.RecipientV31{Email: sender},
			To:       &mailjet.RecipientsV31{mailjet.RecipientV31{Email: to}},
			Subject:  subject,
			HTMLPart: htmlBody,
		}}
		msgs := mailjet.MessagesV31{Info: info}
		if _, err := client.SendMailV31(&msgs); err != nil {
			log.Printf("[ERROR] mailer: send to %s: %v", to, err)
		}
	}()
}
