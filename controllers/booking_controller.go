package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/config"
	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/services"
	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/utils"
)

type BookingController struct {
	cfg *config.Config
}

func NewBookingController(cfg *config.Config) *BookingController {
	return &BookingController{cfg: cfg}
}

type BookingResponse struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// ComposeBooking validates a booking request and returns the pre-filled
// messaging deep link. Nothing is stored; the conversation continues on
// WhatsApp.
func (bc *BookingController) ComposeBooking(c *gin.Context) {
	var form utils.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		utils.SendValidationErrors(c, errs)
		return
	}

	message := services.FormatBookingMessage(&form)

	c.JSON(http.StatusOK, BookingResponse{
		Message:     message,
		WhatsAppURL: services.WhatsAppURL(bc.cfg.WhatsAppNumber, message),
	})
}
