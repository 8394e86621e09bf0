package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MediBookLabs/clinic-scheduler/internal/audit"
	"github.com/MediBookLabs/clinic-scheduler/internal/httperr"
	"github.com/MediBookLabs/clinic-scheduler/internal/media"
	"github.com/MediBookLabs/clinic-scheduler/internal/middleware"
	"github.com/MediBookLabs/clinic-scheduler/internal/models"
)

// AvatarUploader stores a processed avatar and returns its public URL.
type AvatarUploader interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

type DoctorHandler struct {
	db       *gorm.DB
	uploader AvatarUploader
	audit    *audit.Dispatcher
}

func NewDoctorHandler(db *gorm.DB, uploader AvatarUploader, auditor *audit.Dispatcher) *DoctorHandler {
	return &DoctorHandler{
		db:       db,
		uploader: uploader,
		audit:    auditor,
	}
}

// --------- Handlers ---------

func (h *DoctorHandler) List(c *gin.Context) {
	var doctors []models.Doctor
	if err := h.db.Order("id ASC").Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed to list doctors")
		return
	}

	c.JSON(http.StatusOK, doctors)
}

// Create accepts multipart form data: name, email, specialty and an
// optional avatar image. The image is resized, webp-encoded and
// uploaded before the row is written.
func (h *DoctorHandler) Create(c *gin.Context) {
	actor := c.MustGet(middleware.ContextUserEmail).(string)

	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	specialty := strings.TrimSpace(c.PostForm("specialty"))

	if name == "" || email == "" {
		httperr.BadRequest(c, "name and email are required")
		return
	}

	var imageURL string
	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			httperr.BadRequest(c, "could not read image")
			return
		}
		defer src.Close()

		avatar, err := media.ProcessAvatar(src)
		if err != nil {
			httperr.BadRequest(c, "unsupported image format")
			return
		}

		key := fmt.Sprintf("doctors/%s.webp", email)
		imageURL, err = h.uploader.Upload(c.Request.Context(), key, avatar, "image/webp")
		if err != nil {
			httperr.Internal(c, "failed to store avatar")
			return
		}
	}

	doctor := models.Doctor{
		Name:      name,
		Email:     email,
		Specialty: specialty,
		ImageURL:  imageURL,
	}

	if err := h.db.Create(&doctor).Error; err != nil {
		httperr.Internal(c, "failed to create doctor")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actor,
		Action:     "doctor_created",
		Entity:     "doctor",
		EntityID:   &doctor.ID,
	})

	c.JSON(http.StatusCreated, doctor)
}

func (h *DoctorHandler) Delete(c *gin.Context) {
	actor := c.MustGet(middleware.ContextUserEmail).(string)
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))

	res := h.db.Where("email = ?", email).Delete(&models.Doctor{})
	if res.Error != nil {
		httperr.Internal(c, "failed to delete doctor")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actor,
		Action:     "doctor_deleted",
		Entity:     "doctor",
		Metadata:   gin.H{"email": email},
	})

	c.JSON(http.StatusOK, gin.H{"deletedCount": res.RowsAffected})
}
