package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/config"
)

// ContentController serves the static catalog behind the site's
// presentational sections.
type ContentController struct {
	cfg *config.Config
}

func NewContentController(cfg *config.Config) *ContentController {
	return &ContentController{cfg: cfg}
}

type ServiceOffering struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type Testimonial struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Quote  string `json:"quote"`
}

type Tip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var serviceOfferings = []ServiceOffering{
	{Code: "revisao", Title: "Revisão Completa", Description: "Inspeção de 50 pontos, filtros, velas e regulações.", Price: "Desde 150€"},
	{Code: "oleo", Title: "Troca de óleo de motor + Filtro de óleo", Description: "Óleo premium e filtro de óleo incluído.", Price: "Desde 75€"},
	{Code: "diagnostico", Title: "Diagnóstico de falhas e problemas", Description: "Leitura de erros e programação de centralinas.", Price: "Desde 35€"},
	{Code: "pneus", Title: "Pneus e Travões", Description: "Montagem, calibração e substituição de pastilhas.", Price: "Sob consulta"},
	{Code: "motor", Title: "Reparação Motor", Description: "Retificação, juntas, válvulas e embraiagem.", Price: "Sob consulta"},
	{Code: "customizacao", Title: "Restauros e Customizações", Description: "Escapes, suspensões, acessórios e pintura.", Price: "Sob consulta"},
}

var testimonials = []Testimonial{
	{Name: "Ricardo Mendes", Rating: 5, Quote: "Serviço impecável e sem sair de casa. Recomendo!"},
	{Name: "Ana Costa", Rating: 5, Quote: "Rápidos, profissionais e com preços justos."},
	{Name: "Miguel Ferreira", Rating: 5, Quote: "A minha mota nunca esteve tão bem cuidada."},
}

var tips = []Tip{
	{Title: "As 3 Etapas da Manutenção", Description: "Conheça as fases essenciais para manter a sua mota em perfeitas condições: Inspeção, Diagnóstico e Reparos."},
	{Title: "Checklist Antes de Conduzir", Description: "Verificações rápidas e essenciais para garantir a sua segurança antes de pegar na estrada."},
	{Title: "Guia de Diagnóstico de Avarias", Description: "Aprenda a identificar os sintomas mais comuns de problemas no motor, transmissão e sistema elétrico."},
	{Title: "10 Serviços Essenciais", Description: "Os serviços de reparação mais importantes para manter a sua mota a funcionar na perfeição."},
}

func (cc *ContentController) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, serviceOfferings)
}

func (cc *ContentController) GetTestimonials(c *gin.Context) {
	c.JSON(http.StatusOK, testimonials)
}

func (cc *ContentController) GetTips(c *gin.Context) {
	c.JSON(http.StatusOK, tips)
}

func (cc *ContentController) GetBusinessInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":     "MotoTech - Mecânico de Motos ao Domicílio",
		"phone":    "+351 910 392 073",
		"email":    cc.cfg.WorkshopEmail,
		"whatsapp": cc.cfg.WhatsAppNumber,
		"location": "Montijo",
		"hours": gin.H{
			"weekdays": "10h-18h",
			"saturday": "10h-13h",
			"sunday":   "Encerrado",
		},
	})
}
