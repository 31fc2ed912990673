package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonika/salon-marketplace/internal/httperr"
	"github.com/salonika/salon-marketplace/internal/media"
	"github.com/salonika/salon-marketplace/internal/middleware"
	"github.com/salonika/salon-marketplace/internal/models"
	"github.com/salonika/salon-marketplace/internal/timezone"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type SalonPhotoHandler struct {
	db    *gorm.DB
	store *media.Store
}

func NewSalonPhotoHandler(db *gorm.DB, store *media.Store) *SalonPhotoHandler {
	return &SalonPhotoHandler{db: db, store: store}
}

// POST /api/me/salon/photos (multipart: file, caption, is_main)
func (h *SalonPhotoHandler) Upload(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	if h.store == nil {
		httperr.Internal(c, "uploads_disabled", "Upload de fotos não está configurado.")
		return
	}

	var salon models.Salon
	if err := h.db.Where("owner_id = ?", ownerID).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo obrigatório.")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Arquivo acima de 10MB.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler arquivo.")
		return
	}
	defer file.Close()

	body, err := media.ToWebP(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida (use JPEG ou PNG).")
		return
	}

	now := timezone.NowIn(salon.Timezone)
	key := media.SalonPhotoKey(salon.ID, now)

	url, err := h.store.Upload(c.Request.Context(), key, body, "image/webp")
	if err != nil {
		httperr.Internal(c, "upload_failed", "Erro ao enviar foto.")
		return
	}

	isMain := c.PostForm("is_main") == "true"

	photo := models.SalonPhoto{
		SalonID:   salon.ID,
		ImageURL:  url,
		Caption:   c.PostForm("caption"),
		IsMain:    isMain,
		CreatedAt: time.Now(),
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		// só uma foto principal por salão
		if isMain {
			if err := tx.Model(&models.SalonPhoto{}).
				Where("salon_id = ?", salon.ID).
				Update("is_main", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&photo).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_photo", "Erro ao salvar foto.")
		return
	}

	c.JSON(http.StatusCreated, photo)
}
