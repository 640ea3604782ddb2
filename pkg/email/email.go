package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// EmailService sends transactional mail. Sends are one-shot: a failure is
// returned to the caller and never retried here.
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// QuotationLineView is one rendered line item row
type QuotationLineView struct {
	Description    string
	Quantity       int
	UnitPrice      float64
	TaxRatePercent float64
	LineTotal      float64
}

// QuotationView is the rendered-document payload for a quotation email
type QuotationView struct {
	Number     string
	IssuerName string
	ClientName string
	IssueDate  string
	ExpiryDate string
	Items      []QuotationLineView
	Subtotal   float64
	TaxTotal   float64
	GrandTotal float64
}

// SendQuotation emails the rendered quotation document to the client
func (s *EmailService) SendQuotation(toEmail string, view QuotationView) error {
	htmlContent, err := s.renderQuotation(view)
	if err != nil {
		return fmt.Errorf("failed to render quotation email: %w", err)
	}

	subject := fmt.Sprintf("Cotización %s - %s", view.Number, view.IssuerName)
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// SendTaskReminder emails a reminder for a due task
func (s *EmailService) SendTaskReminder(toEmail, taskTitle, dueAt string) error {
	body := fmt.Sprintf(
		"<html><body><h2>Recordatorio</h2><p>La tarea <strong>%s</strong> vence el %s.</p></body></html>",
		template.HTMLEscapeString(taskTitle), template.HTMLEscapeString(dueAt),
	)
	message := s.buildHTMLEmail(toEmail, "Recordatorio de tarea: "+taskTitle, body)
	return s.sendEmail(toEmail, message)
}

var quotationTemplate = template.Must(template.New("quotation").Parse(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>Cotización {{.Number}}</h2>
	<p><strong>{{.IssuerName}}</strong></p>
	<p>Señores {{.ClientName}},</p>
	<p>Adjuntamos la cotización solicitada. Fecha de emisión: {{.IssueDate}}. Válida hasta: {{.ExpiryDate}}.</p>
	<table border="0" cellpadding="6" cellspacing="0" style="border-collapse: collapse; width: 100%;">
		<tr style="background: #f0f0f0;">
			<th align="left">Descripción</th>
			<th align="right">Cantidad</th>
			<th align="right">Valor unitario</th>
			<th align="right">IVA %</th>
			<th align="right">Total</th>
		</tr>
		{{range .Items}}
		<tr>
			<td>{{.Description}}</td>
			<td align="right">{{.Quantity}}</td>
			<td align="right">{{printf "%.2f" .UnitPrice}}</td>
			<td align="right">{{printf "%.2f" .TaxRatePercent}}</td>
			<td align="right">{{printf "%.2f" .LineTotal}}</td>
		</tr>
		{{end}}
	</table>
	<p align="right">
		Subtotal: {{printf "%.2f" .Subtotal}}<br>
		IVA: {{printf "%.2f" .TaxTotal}}<br>
		<strong>Total: {{printf "%.2f" .GrandTotal}}</strong>
	</p>
</body>
</html>`))

func (s *EmailService) renderQuotation(view QuotationView) (string, error) {
	var buf bytes.Buffer
	if err := quotationTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlContent string) []byte {
	headers := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n",
		s.config.FromName, s.config.FromEmail, to, subject)
	return []byte(headers + htmlContent)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
