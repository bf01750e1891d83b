package utils

import (
	"strings"
	"time"
)

// FieldErrors maps a form field name to its first validation failure.
// Later violations for the same field are dropped.
type FieldErrors map[string]string

func (fe FieldErrors) Add(field, message string) {
	if _, exists := fe[field]; !exists {
		fe[field] = message
	}
}

// FieldDetail is the entry shape used by the notification endpoints'
// "details" array.
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (fe FieldErrors) Details() []FieldDetail {
	details := make([]FieldDetail, 0, len(fe))
	for field, message := range fe {
		details = append(details, FieldDetail{Field: field, Message: message})
	}
	return details
}

// MotorcycleForm backs the add/edit motorcycle dialogs. Numeric fields are
// coerced by the JSON binding layer before the schema runs.
type MotorcycleForm struct {
	Brand     string `json:"brand"`
	Model     string `json:"model"`
	Year      int    `json:"year"`
	Plate     string `json:"plate"`
	CurrentKm int    `json:"current_km"`
}

func (f *MotorcycleForm) Validate() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(f.Brand) == "" {
		errs.Add("brand", "Marca é obrigatória")
	}
	if len(f.Brand) > 50 {
		errs.Add("brand", "Marca demasiado longa")
	}
	if strings.TrimSpace(f.Model) == "" {
		errs.Add("model", "Modelo é obrigatório")
	}
	if len(f.Model) > 50 {
		errs.Add("model", "Modelo demasiado longo")
	}
	if !IsValidYear(f.Year) {
		errs.Add("year", "Ano inválido")
	}
	if strings.TrimSpace(f.Plate) == "" {
		errs.Add("plate", "Matrícula é obrigatória")
	}
	if len(f.Plate) > 20 {
		errs.Add("plate", "Matrícula demasiado longa")
	}
	if f.CurrentKm < 0 {
		errs.Add("current_km", "KM deve ser positivo")
	}

	return errs
}

// ServiceForm backs the "add manual record" dialog.
type ServiceForm struct {
	ServiceDate string `json:"service_date"`
	Description string `json:"service_description"`
	KmAtService int    `json:"km_at_service"`
}

func (f *ServiceForm) Validate() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(f.ServiceDate) == "" {
		errs.Add("service_date", "Data é obrigatória")
	} else if _, err := ParseDate(f.ServiceDate); err != nil {
		errs.Add("service_date", "Data inválida")
	}
	if strings.TrimSpace(f.Description) == "" {
		errs.Add("service_description", "Descrição é obrigatória")
	}
	if len(f.Description) > 200 {
		errs.Add("service_description", "Descrição demasiado longa")
	}
	if f.KmAtService < 0 {
		errs.Add("km_at_service", "KM deve ser positivo")
	}

	return errs
}

type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f *LoginForm) Validate() FieldErrors {
	errs := FieldErrors{}

	if !IsValidEmail(strings.TrimSpace(f.Email)) || len(f.Email) > 255 {
		errs.Add("email", "Email inválido")
	}
	if len(f.Password) < 6 {
		errs.Add("password", "A password deve ter pelo menos 6 caracteres")
	}
	if len(f.Password) > 100 {
		errs.Add("password", "Password demasiado longa")
	}

	return errs
}

// SignupForm extends the login fields with name and password confirmation.
// The equality failure is attached to the confirmation field.
type SignupForm struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (f *SignupForm) Validate() FieldErrors {
	errs := (&LoginForm{Email: f.Email, Password: f.Password}).Validate()

	if strings.TrimSpace(f.Name) == "" {
		errs.Add("name", "Nome é obrigatório")
	}
	if len(f.Name) > 100 {
		errs.Add("name", "Nome demasiado longo")
	}
	if f.ConfirmPassword != f.Password {
		errs.Add("confirm_password", "As passwords não coincidem")
	}

	return errs
}

type PasswordResetForm struct {
	Email string `json:"email"`
}

func (f *PasswordResetForm) Validate() FieldErrors {
	errs := FieldErrors{}

	if !IsValidEmail(strings.TrimSpace(f.Email)) || len(f.Email) > 255 {
		errs.Add("email", "Email inválido")
	}

	return errs
}

// ContactForm backs the contact-notification endpoint. Only name and email
// are required; the remaining fields are length-capped.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

func (f *ContactForm) Validate() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(f.Name) == "" {
		errs.Add("name", "Nome é obrigatório")
	}
	if len(f.Name) > 100 {
		errs.Add("name", "Nome demasiado longo")
	}
	if strings.TrimSpace(f.Email) == "" {
		errs.Add("email", "Email é obrigatório")
	} else if !IsValidEmail(f.Email) || len(f.Email) > 255 {
		errs.Add("email", "Email inválido")
	}
	if len(f.Phone) > 20 {
		errs.Add("phone", "Telefone demasiado longo")
	}
	if len(f.Service) > 50 {
		errs.Add("service", "Serviço inválido")
	}
	if len(f.Message) > 1000 {
		errs.Add("message", "Mensagem demasiado longa")
	}

	return errs
}

// WelcomeForm backs the welcome-notification endpoint.
type WelcomeForm struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (f *WelcomeForm) Validate() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(f.Name) == "" {
		errs.Add("name", "Nome é obrigatório")
	}
	if len(f.Name) > 100 {
		errs.Add("name", "Nome demasiado longo")
	}
	if strings.TrimSpace(f.Email) == "" {
		errs.Add("email", "Email é obrigatório")
	} else if !IsValidEmail(f.Email) || len(f.Email) > 255 {
		errs.Add("email", "Email inválido")
	}

	return errs
}

// BookingForm backs the booking composer. The date must be today or later
// and the workshop does not work on Sundays.
type BookingForm struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Service    string `json:"service"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Location   string `json:"location"`
	Motorcycle string `json:"motorcycle"`
	Notes      string `json:"notes"`
}

func (f *BookingForm) Validate() FieldErrors {
	errs := FieldErrors{}

	if len(strings.TrimSpace(f.Name)) < 2 {
		errs.Add("name", "Nome deve ter pelo menos 2 caracteres")
	}
	if len(f.Name) > 100 {
		errs.Add("name", "Nome demasiado longo")
	}
	if len(strings.TrimSpace(f.Phone)) < 9 {
		errs.Add("phone", "Telefone inválido")
	}
	if len(f.Phone) > 20 {
		errs.Add("phone", "Telefone inválido")
	}
	if !IsValidEmail(strings.TrimSpace(f.Email)) || len(f.Email) > 255 {
		errs.Add("email", "Email inválido")
	}
	if strings.TrimSpace(f.Service) == "" {
		errs.Add("service", "Selecione um serviço")
	}
	f.validateDate(errs)
	if strings.TrimSpace(f.Time) == "" {
		errs.Add("time", "Selecione um horário")
	}
	if len(strings.TrimSpace(f.Location)) < 5 {
		errs.Add("location", "Indique a morada")
	}
	if len(f.Location) > 200 {
		errs.Add("location", "Morada demasiado longa")
	}
	if len(f.Motorcycle) > 100 {
		errs.Add("motorcycle", "Mota demasiado longa")
	}
	if len(f.Notes) > 500 {
		errs.Add("notes", "Observações demasiado longas")
	}

	return errs
}

func (f *BookingForm) validateDate(errs FieldErrors) {
	if strings.TrimSpace(f.Date) == "" {
		errs.Add("date", "Selecione uma data")
		return
	}

	date, err := ParseDate(f.Date)
	if err != nil {
		errs.Add("date", "Data inválida")
		return
	}

	today := time.Now().Truncate(24 * time.Hour)
	if date.Before(today) {
		errs.Add("date", "A data deve ser hoje ou posterior")
	}
	if date.Weekday() == time.Sunday {
		errs.Add("date", "Não há serviço ao domingo")
	}
}
