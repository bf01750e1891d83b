package services

import (
	"fmt"
	"net/url"

	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/utils"
)

// FormatBookingMessage renders a validated booking request into the text
// block handed to the messaging deep link. Nothing is persisted.
func FormatBookingMessage(f *utils.BookingForm) string {
	date, _ := utils.ParseDate(f.Date)
	formattedDate := date.Format("02/01/2006")

	motorcycle := f.Motorcycle
	if motorcycle == "" {
		motorcycle = "Não especificado"
	}
	notes := f.Notes
	if notes == "" {
		notes = "Nenhuma"
	}

	return fmt.Sprintf(`*Novo Agendamento*

📋 *Serviço:* %s
📅 *Data:* %s
🕐 *Horário:* %s

👤 *Nome:* %s
📱 *Telefone:* %s
📧 *Email:* %s

📍 *Morada:* %s
🏍️ *Mota:* %s

📝 *Observações:* %s`,
		f.Service, formattedDate, f.Time,
		f.Name, f.Phone, f.Email,
		f.Location, motorcycle, notes)
}

// WhatsAppURL builds the wa.me deep link with the message URL-encoded into
// the text query parameter.
func WhatsAppURL(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}
