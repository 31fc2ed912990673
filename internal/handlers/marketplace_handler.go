package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonika/salon-marketplace/internal/httperr"
	"github.com/salonika/salon-marketplace/internal/httpresp"
	"github.com/salonika/salon-marketplace/internal/models"
)

////////////////////////////////////////////////////////
// VITRINE PÚBLICA (categorias / salões)
////////////////////////////////////////////////////////

type MarketplaceHandler struct {
	db *gorm.DB
}

func NewMarketplaceHandler(db *gorm.DB) *MarketplaceHandler {
	return &MarketplaceHandler{db: db}
}

// --------- DTOs ---------

type CategoryDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	IconClass string `json:"icon_class"`
}

type SalonListItemDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	LogoURL     string `json:"logo_url"`
}

// `lang` vem da query (?lang=ru|en|uz); renderização de textos de
// interface fica no front, aqui só escolhemos o campo do registro
func langFrom(c *gin.Context) string {
	return c.DefaultQuery("lang", "ru")
}

// --------- Handlers ---------

func (h *MarketplaceHandler) ListCategories(c *gin.Context) {
	lang := langFrom(c)

	var categories []models.Category
	if err := h.db.Order("id ASC").Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Erro ao listar categorias.")
		return
	}

	out := make([]CategoryDTO, 0, len(categories))
	for _, cat := range categories {
		out = append(out, CategoryDTO{
			ID:        cat.ID,
			Name:      cat.LocalizedName(lang),
			Slug:      cat.Slug,
			IconClass: cat.IconClass,
		})
	}

	httpresp.List(c, out)
}

func (h *MarketplaceHandler) ListSalons(c *gin.Context) {
	lang := langFrom(c)

	q := h.db.Model(&models.Salon{})

	if slug := c.Query("category"); slug != "" {
		var category models.Category
		if err := h.db.Where("slug = ?", slug).First(&category).Error; err != nil {
			httperr.NotFound(c, "category_not_found", "Categoria não encontrada.")
			return
		}
		q = q.Where("category_id = ?", category.ID)
	}

	var salons []models.Salon
	if err := q.Order("id ASC").Find(&salons).Error; err != nil {
		httperr.Internal(c, "failed_to_list_salons", "Erro ao listar salões.")
		return
	}

	out := make([]SalonListItemDTO, 0, len(salons))
	for _, s := range salons {
		out = append(out, SalonListItemDTO{
			ID:          s.ID,
			Name:        s.LocalizedName(lang),
			Description: s.LocalizedDescription(lang),
			Address:     s.Address,
			Phone:       s.Phone,
			LogoURL:     s.LogoURL,
		})
	}

	httpresp.List(c, out)
}

func (h *MarketplaceHandler) GetSalon(c *gin.Context) {
	lang := langFrom(c)
	id := c.Param("id")

	var salon models.Salon
	if err := h.db.Preload("Category").First(&salon, id).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	var services []models.Service
	h.db.Where("salon_id = ?", salon.ID).Order("id ASC").Find(&services)

	var masters []models.Master
	h.db.Where("salon_id = ? AND is_active = true", salon.ID).Order("id ASC").Find(&masters)

	var photos []models.SalonPhoto
	h.db.Where("salon_id = ?", salon.ID).
		Order("is_main DESC, created_at DESC").
		Find(&photos)

	var hours []models.WorkingHours
	h.db.Where("salon_id = ?", salon.ID).Order("weekday ASC").Find(&hours)

	type serviceDTO struct {
		ID              uint    `json:"id"`
		Name            string  `json:"name"`
		Price           float64 `json:"price"`
		DurationMinutes int     `json:"duration_minutes"`
		ImageURL        string  `json:"image_url"`
	}

	type masterDTO struct {
		ID             uint   `json:"id"`
		Name           string `json:"name"`
		Specialization string `json:"specialization"`
		PhotoURL       string `json:"photo_url"`
	}

	svcOut := make([]serviceDTO, 0, len(services))
	for _, s := range services {
		svcOut = append(svcOut, serviceDTO{
			ID:              s.ID,
			Name:            s.LocalizedName(lang),
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
			ImageURL:        s.ImageURL,
		})
	}

	mstOut := make([]masterDTO, 0, len(masters))
	for _, m := range masters {
		mstOut = append(mstOut, masterDTO{
			ID:             m.ID,
			Name:           m.Name,
			Specialization: m.LocalizedSpecialization(lang),
			PhotoURL:       m.PhotoURL,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"salon": SalonListItemDTO{
			ID:          salon.ID,
			Name:        salon.LocalizedName(lang),
			Description: salon.LocalizedDescription(lang),
			Address:     salon.Address,
			Phone:       salon.Phone,
			LogoURL:     salon.LogoURL,
		},
		"services":      svcOut,
		"masters":       mstOut,
		"photos":        photos,
		"working_hours": hours,
	})
}
