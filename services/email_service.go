package services

import (
	"fmt"
	"html"
	"mountspa_server/structs"
	"mountspa_server/structs/tables"
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendLeadNotification delivers a new configurator lead to the sales inbox.
// The email carries the contact details plus the configuration deep link so
// sales can open exactly what the customer built.
func (es *EmailService) SendLeadNotification(lead *tables.Lead) error {
	subject := fmt.Sprintf("Nowe zapytanie %s - %s", lead.LeadNumber, lead.HotTubModel)

	configRow := ""
	if lead.ConfigLink != "" {
		configRow = fmt.Sprintf(`
					<p style="text-align: center;">
						<a href="%s" class="button">Zobacz konfiguracje klienta</a>
					</p>`, html.EscapeString(lead.ConfigLink))
	}

	totalRow := ""
	if lead.QuotedTotal != "" {
		totalRow = fmt.Sprintf(`<p><strong>Wycena:</strong> %s</p>`, html.EscapeString(lead.QuotedTotal))
	}

	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #2B5F75; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.button { display: inline-block; padding: 15px 30px; background-color: #EC8C3F; color: white; text-decoration: none; border-radius: 5px; margin: 20px 0; }
				.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>Nowe zapytanie z konfiguratora</h1>
				</div>
				<div class="content">
					<p><strong>Numer:</strong> %s</p>
					<p><strong>Model:</strong> %s</p>
					<p><strong>Imie i nazwisko:</strong> %s</p>
					<p><strong>E-mail:</strong> %s</p>
					<p><strong>Telefon:</strong> %s</p>
					<p><strong>Wiadomosc:</strong></p>
					<p>%s</p>
					%s
					%s
				</div>
				<div class="footer">
					<p>MountSPA | Konfigurator wanien SPA</p>
				</div>
			</div>
		</body>
		</html>
	`,
		html.EscapeString(lead.LeadNumber),
		html.EscapeString(lead.HotTubModel),
		html.EscapeString(lead.Name),
		html.EscapeString(lead.Email),
		html.EscapeString(lead.Phone),
		html.EscapeString(lead.Message),
		totalRow,
		configRow,
	)

	return es.SendEmail([]string{es.cfg.Email.LeadInbox}, subject, emailBody)
}
