package services

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/config"
)

// Mailer is the outbound notification surface used by the handlers.
type Mailer interface {
	SendContactNotification(name, email, phone, service, message string) error
	SendWelcomeEmail(email, name string) error
}

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	return &EmailService{
		config: cfg,
		dialer: dialer,
	}
}

// serviceLabels maps the contact form's service codes to display labels.
// Unrecognized codes pass through escaped.
var serviceLabels = map[string]string{
	"revisao":      "Revisão Completa",
	"oleo":         "Troca de Óleo",
	"diagnostico":  "Diagnóstico Eletrónico",
	"pneus":        "Pneus e Travões",
	"motor":        "Reparação Motor",
	"customizacao": "Customização",
	"outro":        "Outro",
}

// ServiceLabel resolves a service code into its display label.
func ServiceLabel(code string) string {
	if code == "" {
		return "Não especificado"
	}
	if label, ok := serviceLabels[code]; ok {
		return label
	}
	return html.EscapeString(code)
}

// ComposeContactEmail builds the contact-notification subject and HTML body.
// Every user-supplied string is HTML-escaped before interpolation.
func ComposeContactEmail(name, email, phone, service, message string) (subject, body string) {
	safeName := html.EscapeString(name)
	safeEmail := html.EscapeString(email)

	safePhone := "Não fornecido"
	if phone != "" {
		safePhone = html.EscapeString(phone)
	}
	safeMessage := "Sem mensagem adicional"
	if message != "" {
		safeMessage = html.EscapeString(message)
	}

	subject = fmt.Sprintf("Novo contacto de %s", safeName)
	body = fmt.Sprintf(`
<h2>Novo contacto recebido</h2>
<p><strong>Nome:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Telefone:</strong> %s</p>
<p><strong>Serviço Pretendido:</strong> %s</p>
<p><strong>Mensagem:</strong></p>
<p>%s</p>
<hr>
<p><em>Enviado através do formulário de contacto do website</em></p>
`, safeName, safeEmail, safePhone, ServiceLabel(service), safeMessage)

	return subject, body
}

// ComposeWelcomeEmail builds the welcome subject and HTML body for a newly
// registered client.
func ComposeWelcomeEmail(name string) (subject, body string) {
	safeName := html.EscapeString(name)

	subject = fmt.Sprintf("Bem-vindo à MotoTech, %s!", safeName)
	body = fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #2C3E50; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #2C3E50; padding: 30px; text-align: center; border-radius: 8px 8px 0 0;">
        <h1 style="color: #FFFFFF; margin: 0; font-size: 28px;">🏍️ MotoTech</h1>
    </div>

    <div style="background-color: #F4F4F4; padding: 30px; border-radius: 0 0 8px 8px;">
        <h2 style="color: #2C3E50; margin-top: 0;">Olá %s!</h2>

        <p>Bem-vindo à <strong>MotoTech</strong>! A sua conta foi criada com sucesso.</p>

        <p>Agora pode aceder à sua <strong>Garagem Virtual</strong> onde pode:</p>

        <ul style="padding-left: 20px;">
            <li>📋 Registar as suas motas</li>
            <li>🔧 Acompanhar o histórico de serviços</li>
            <li>⏰ Receber alertas de manutenção</li>
            <li>📅 Agendar serviços online</li>
        </ul>

        <p>Se tiver alguma dúvida, não hesite em contactar-nos.</p>

        <hr style="border: none; border-top: 1px solid #ddd; margin: 20px 0;">

        <p style="font-size: 12px; color: #666; text-align: center;">
            Este email foi enviado automaticamente. Por favor não responda directamente.
        </p>
    </div>
</body>
</html>
`, safeName)

	return subject, body
}

// SendContactNotification forwards a contact-form submission to the
// workshop's inbox.
func (es *EmailService) SendContactNotification(name, email, phone, service, message string) error {
	subject, body := ComposeContactEmail(name, email, phone, service, message)

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", es.config.WorkshopEmail)
	m.SetHeader("Reply-To", email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}
	return nil
}

// SendWelcomeEmail greets a newly registered client.
func (es *EmailService) SendWelcomeEmail(email, name string) error {
	subject, body := ComposeWelcomeEmail(name)

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}
