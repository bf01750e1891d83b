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

type GarageController struct {
	db     *gorm.DB
	garage *repositories.GarageRepository
}

func NewGarageController(db *gorm.DB, garage *repositories.GarageRepository) *GarageController {
	return &GarageController{db: db, garage: garage}
}

// MotorcycleView is a motorcycle plus the display metrics derived on every
// read. km_to_next_service is never persisted.
type MotorcycleView struct {
	models.Motorcycle
	ServicesCount   int `json:"services_count"`
	KmToNextService int `json:"km_to_next_service"`
}

func (gc *GarageController) GetMotorcycles(c *gin.Context) {
	userID := c.GetString("user_id")

	motorcycles, err := gc.garage.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := make([]MotorcycleView, 0, len(motorcycles))
	for _, moto := range motorcycles {
		var records []models.ServiceRecord
		if err := gc.db.Where("motorcycle_id = ?", moto.ID).Find(&records).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		views = append(views, MotorcycleView{
			Motorcycle:      moto,
			ServicesCount:   len(records),
			KmToNextService: moto.KmToNextService(records),
		})
	}

	c.JSON(http.StatusOK, views)
}

func (gc *GarageController) CreateMotorcycle(c *gin.Context) {
	userID := c.GetString("user_id")

	var form utils.MotorcycleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		utils.SendValidationErrors(c, errs)
		return
	}

	motorcycle := models.Motorcycle{
		ID:        uuid.New().String(),
		Brand:     form.Brand,
		Model:     form.Model,
		Year:      form.Year,
		Plate:     form.Plate,
		CurrentKm: form.CurrentKm,
	}

	if err := gc.garage.Create(userID, &motorcycle); err != nil {
		if errors.Is(err, repositories.ErrNotAuthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, motorcycle)
}

// UpdateMotorcycleRequest carries a partial set of the mutable fields.
// Identifier and owner are immutable.
type UpdateMotorcycleRequest struct {
	Brand     *string `json:"brand"`
	Model     *string `json:"model"`
	Year      *int    `json:"year"`
	Plate     *string `json:"plate"`
	CurrentKm *int    `json:"current_km"`
}

func (req *UpdateMotorcycleRequest) validate() utils.FieldErrors {
	errs := utils.FieldErrors{}

	if req.Brand != nil && (*req.Brand == "" || len(*req.Brand) > 50) {
		errs.Add("brand", "Marca inválida")
	}
	if req.Model != nil && (*req.Model == "" || len(*req.Model) > 50) {
		errs.Add("model", "Modelo inválido")
	}
	if req.Year != nil && !utils.IsValidYear(*req.Year) {
		errs.Add("year", "Ano inválido")
	}
	if req.Plate != nil && (*req.Plate == "" || len(*req.Plate) > 20) {
		errs.Add("plate", "Matrícula inválida")
	}
	if req.CurrentKm != nil && *req.CurrentKm < 0 {
		errs.Add("current_km", "KM deve ser positivo")
	}

	return errs
}

func (req *UpdateMotorcycleRequest) updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.Plate != nil {
		updates["plate"] = *req.Plate
	}
	if req.CurrentKm != nil {
		updates["current_km"] = *req.CurrentKm
	}
	return updates
}

func (gc *GarageController) UpdateMotorcycle(c *gin.Context) {
	userID := c.GetString("user_id")
	motorcycleID := c.Param("id")

	var req UpdateMotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := req.validate(); len(errs) > 0 {
		utils.SendValidationErrors(c, errs)
		return
	}

	motorcycle, err := gc.garage.Update(userID, motorcycleID, req.updates())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Motorcycle not found or access denied"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, motorcycle)
}

func (gc *GarageController) DeleteMotorcycle(c *gin.Context) {
	userID := c.GetString("user_id")
	motorcycleID := c.Param("id")

	if err := gc.garage.Delete(userID, motorcycleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Motorcycle not found or access denied"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mota removida"})
}
