package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/models"
	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/repositories"
	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/utils"
)

type HistoryController struct {
	db      *gorm.DB
	history *repositories.HistoryRepository
}

func NewHistoryController(db *gorm.DB, history *repositories.HistoryRepository) *HistoryController {
	return &HistoryController{db: db, history: history}
}

// ownsMotorcycle checks that the motorcycle belongs to the session user.
func (hc *HistoryController) ownsMotorcycle(userID, motorcycleID string) error {
	var motorcycle models.Motorcycle
	return hc.db.First(&motorcycle, "id = ? AND user_id = ?", motorcycleID, userID).Error
}

func (hc *HistoryController) GetServiceRecords(c *gin.Context) {
	userID := c.GetString("user_id")
	motorcycleID := c.Param("id")

	if err := hc.ownsMotorcycle(userID, motorcycleID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Motorcycle not found or access denied"})
		return
	}

	records, err := hc.history.List(motorcycleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// CreateServiceRecord adds a customer-reported maintenance event. The source
// tag is always "cliente" on this path; workshop records are created
// out-of-band.
func (hc *HistoryController) CreateServiceRecord(c *gin.Context) {
	userID := c.GetString("user_id")
	motorcycleID := c.Param("id")

	if err := hc.ownsMotorcycle(userID, motorcycleID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Motorcycle not found or access denied"})
		return
	}

	var form utils.ServiceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		utils.SendValidationErrors(c, errs)
		return
	}

	serviceDate, err := utils.ParseDate(form.ServiceDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida"})
		return
	}

	record := models.ServiceRecord{
		ID:           uuid.New().String(),
		MotorcycleID: motorcycleID,
		ServiceDate:  serviceDate,
		Description:  form.Description,
		KmAtService:  form.KmAtService,
		Source:       models.SourceCustomer,
	}

	if err := hc.history.Create(&record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (hc *HistoryController) DeleteServiceRecord(c *gin.Context) {
	userID := c.GetString("user_id")
	recordID := c.Param("id")

	var record models.ServiceRecord
	if err := hc.db.First(&record, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := hc.ownsMotorcycle(userID, record.MotorcycleID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service record not found"})
		return
	}

	if err := hc.history.Delete(recordID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registo removido"})
}
