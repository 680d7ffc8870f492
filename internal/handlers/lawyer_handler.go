package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devansh21640/Kanoonwise-sub002/internal/httperr"
	"github.com/devansh21640/Kanoonwise-sub002/internal/httpresp"
	"github.com/devansh21640/Kanoonwise-sub002/internal/models"
	"github.com/devansh21640/Kanoonwise-sub002/internal/storage"
	ucAppointment "github.com/devansh21640/Kanoonwise-sub002/internal/usecase/appointment"
)

const (
	maxPhotoBytes       = 5 << 20
	maxCertificateBytes = 10 << 20
)

type LawyerHandler struct {
	db        *gorm.DB
	respondUC *ucAppointment.RespondToAppointment
	listUC    *ucAppointment.ListAppointments
	store     *storage.Store
	loc       *time.Location
}

func NewLawyerHandler(
	db *gorm.DB,
	respondUC *ucAppointment.RespondToAppointment,
	listUC *ucAppointment.ListAppointments,
	store *storage.Store,
	loc *time.Location,
) *LawyerHandler {
	return &LawyerHandler{
		db:        db,
		respondUC: respondUC,
		listUC:    listUC,
		store:     store,
		loc:       loc,
	}
}

// --------- Requests ---------

type RespondRequest struct {
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	Status        string `json:"status" binding:"required"`
}

// --------- Profile ---------

func (h *LawyerHandler) GetProfile(c *gin.Context) {
	var lp models.LawyerProfile
	if err := h.db.Where("user_id = ?", currentUserID(c)).First(&lp).Error; err != nil {
		httperr.NotFound(c, "not_found", "Create your profile first.")
		return
	}

	h.respondWithProfile(c, &lp)
}

// UpdateProfile takes a multipart form so text fields and the two uploads
// (photo, bar certificate) travel together. Replaced files are deleted from
// storage best-effort after the new upload succeeds.
func (h *LawyerHandler) UpdateProfile(c *gin.Context) {
	userID := currentUserID(c)

	fullName := strings.TrimSpace(c.PostForm("full_name"))
	if fullName == "" {
		httperr.BadRequest(c, "invalid_request", "full_name is required.")
		return
	}

	for _, field := range []string{"fee_consultation", "fee_court"} {
		if v := c.PostForm(field); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil || n < 0 {
				httperr.BadRequest(c, "invalid_fee", "Fees must be non-negative integers.")
				return
			}
		}
	}

	var lp models.LawyerProfile
	if err := h.db.Where("user_id = ?", userID).First(&lp).Error; err != nil {
		lp = models.LawyerProfile{UserID: userID, ApprovalStatus: "pending"}
	}

	lp.FullName = fullName
	lp.BarRegistrationNumber = c.DefaultPostForm("bar_registration_number", lp.BarRegistrationNumber)
	lp.Specialization = c.DefaultPostForm("specialization", lp.Specialization)
	lp.CourtPractice = c.DefaultPostForm("court_practice", lp.CourtPractice)
	lp.City = c.DefaultPostForm("city", lp.City)
	lp.Languages = c.DefaultPostForm("languages", lp.Languages)
	lp.ExperienceYears = postFormInt(c, "experience_years", lp.ExperienceYears)
	lp.FeeStructure.Consultation = postFormInt64(c, "fee_consultation", lp.FeeStructure.Consultation)
	lp.FeeStructure.Court = postFormInt64(c, "fee_court", lp.FeeStructure.Court)

	if file, err := c.FormFile("photo"); err == nil {
		key, uerr := h.uploadPhoto(c, file, lp.PhotoKey)
		if uerr != nil {
			httperr.BadRequest(c, "upload_failed", "Could not store the profile photo.")
			return
		}
		lp.PhotoKey = key
	}

	if file, err := c.FormFile("certificate"); err == nil {
		key, uerr := h.uploadCertificate(c, file, lp.CertificateKey)
		if uerr != nil {
			httperr.BadRequest(c, "upload_failed", "Could not store the certificate.")
			return
		}
		lp.CertificateKey = key
	}

	if err := h.db.Save(&lp).Error; err != nil {
		httperr.Internal(c, "profile_save_failed", "Could not save the profile.")
		return
	}

	h.respondWithProfile(c, &lp)
}

// --------- Appointments ---------

func (h *LawyerHandler) ListAppointments(c *gin.Context) {
	var dayStart *time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		d, err := time.ParseInLocation("2006-01-02", dateStr, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD.")
			return
		}
		dayStart = &d
	}

	aps, err := h.listUC.ForLawyer(c.Request.Context(), currentUserID(c), dayStart)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, aps)
}

func (h *LawyerHandler) Respond(c *gin.Context) {
	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.respondUC.Execute(
		c.Request.Context(),
		currentUserID(c),
		req.AppointmentID,
		req.Status,
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// --------- Internals ---------

func (h *LawyerHandler) respondWithProfile(c *gin.Context, lp *models.LawyerProfile) {
	var photoURL, certificateURL string
	if lp.PhotoKey != "" {
		photoURL, _ = h.store.SignedURL(c.Request.Context(), lp.PhotoKey, signedURLTTL)
	}
	if lp.CertificateKey != "" {
		certificateURL, _ = h.store.SignedURL(c.Request.Context(), lp.CertificateKey, signedURLTTL)
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":         lp,
		"photo_url":       photoURL,
		"certificate_url": certificateURL,
	})
}

func (h *LawyerHandler) uploadPhoto(
	c *gin.Context,
	file *multipart.FileHeader,
	oldKey string,
) (string, error) {

	if file.Size > maxPhotoBytes {
		return "", errTooLarge
	}

	data, err := readUpload(file)
	if err != nil {
		return "", err
	}

	encoded, err := storage.EncodePhotoWebP(data)
	if err != nil {
		return "", err
	}

	key := storage.NewKey("photos", "photo.webp")
	if err := h.store.Put(c.Request.Context(), key, encoded, "image/webp"); err != nil {
		return "", err
	}

	h.store.DeleteAsync(oldKey)
	return key, nil
}

func (h *LawyerHandler) uploadCertificate(
	c *gin.Context,
	file *multipart.FileHeader,
	oldKey string,
) (string, error) {

	if file.Size > maxCertificateBytes {
		return "", errTooLarge
	}
	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return "", errBadType
	}

	data, err := readUpload(file)
	if err != nil {
		return "", err
	}

	key := storage.NewKey("certificates", file.Filename)
	if err := h.store.Put(c.Request.Context(), key, data, "application/pdf"); err != nil {
		return "", err
	}

	h.store.DeleteAsync(oldKey)
	return key, nil
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
