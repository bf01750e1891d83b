package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/services"
	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/utils"
)

// NotificationController hosts the two outbound mail endpoints. Their wire
// contract predates this service: 200 {success,data}, 400 with a details
// array, 500 with a generic message only.
type NotificationController struct {
	mailer services.Mailer
}

func NewNotificationController(mailer services.Mailer) *NotificationController {
	return &NotificationController{mailer: mailer}
}

func (nc *NotificationController) SendContactNotification(c *gin.Context) {
	var form utils.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid input data",
			"details": []utils.FieldDetail{{Field: "body", Message: err.Error()}},
		})
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid input data",
			"details": errs.Details(),
		})
		return
	}

	if err := nc.mailer.SendContactNotification(form.Name, form.Email, form.Phone, form.Service, form.Message); err != nil {
		// Provider failures never leak detail to the caller
		fmt.Printf("Error sending contact email: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "An error occurred sending the contact email",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"to": "workshop"},
	})
}

func (nc *NotificationController) SendWelcomeNotification(c *gin.Context) {
	var form utils.WelcomeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid input data",
			"details": []utils.FieldDetail{{Field: "body", Message: err.Error()}},
		})
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid input data",
			"details": errs.Details(),
		})
		return
	}

	if err := nc.mailer.SendWelcomeEmail(form.Email, form.Name); err != nil {
		fmt.Printf("Error sending welcome email: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "An error occurred sending the welcome email",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"to": form.Email},
	})
}
