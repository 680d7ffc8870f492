package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devansh21640/Kanoonwise-sub002/internal/httperr"
	"github.com/devansh21640/Kanoonwise-sub002/internal/httpresp"
	"github.com/devansh21640/Kanoonwise-sub002/internal/models"
	"github.com/devansh21640/Kanoonwise-sub002/internal/storage"
	ucAppointment "github.com/devansh21640/Kanoonwise-sub002/internal/usecase/appointment"
	ucLawyer "github.com/devansh21640/Kanoonwise-sub002/internal/usecase/lawyer"
	ucReview "github.com/devansh21640/Kanoonwise-sub002/internal/usecase/review"
	"github.com/devansh21640/Kanoonwise-sub002/internal/validators"

	reviewDomain "github.com/devansh21640/Kanoonwise-sub002/internal/domain/review"
)

const signedURLTTL = 15 * time.Minute

type ClientHandler struct {
	db         *gorm.DB
	bookUC     *ucAppointment.BookAppointment
	cancelUC   *ucAppointment.CancelAppointment
	listUC     *ucAppointment.ListAppointments
	slotsUC    *ucAppointment.GetAvailableSlots
	searchUC   *ucLawyer.SearchLawyers
	reviewUC   *ucReview.CreateReview
	reviewRepo reviewDomain.Repository
	store      *storage.Store
}

func NewClientHandler(
	db *gorm.DB,
	bookUC *ucAppointment.BookAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	listUC *ucAppointment.ListAppointments,
	slotsUC *ucAppointment.GetAvailableSlots,
	searchUC *ucLawyer.SearchLawyers,
	reviewUC *ucReview.CreateReview,
	reviewRepo reviewDomain.Repository,
	store *storage.Store,
) *ClientHandler {
	return &ClientHandler{
		db:         db,
		bookUC:     bookUC,
		cancelUC:   cancelUC,
		listUC:     listUC,
		slotsUC:    slotsUC,
		searchUC:   searchUC,
		reviewUC:   reviewUC,
		reviewRepo: reviewRepo,
		store:      store,
	}
}

// --------- Requests ---------

type UpdateClientProfileRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
}

type BookAppointmentRequest struct {
	LawyerID         uint   `json:"lawyer_id" binding:"required"`
	ConsultationType string `json:"consultation_type" binding:"required"`
	ScheduledTime    string `json:"scheduled_time" binding:"required"`
	CaseDescription  string `json:"case_description"`
}

type CreateReviewRequest struct {
	LawyerID uint   `json:"lawyer_id" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Comment  string `json:"comment"`
}

// --------- Profile ---------

func (h *ClientHandler) GetProfile(c *gin.Context) {
	var cp models.ClientProfile
	if err := h.db.Where("user_id = ?", currentUserID(c)).First(&cp).Error; err != nil {
		httperr.NotFound(c, "client_profile_not_found", "Create your profile first.")
		return
	}
	httpresp.OK(c, cp)
}

func (h *ClientHandler) UpdateProfile(c *gin.Context) {
	var req UpdateClientProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	userID := currentUserID(c)

	var cp models.ClientProfile
	err := h.db.Where("user_id = ?", userID).First(&cp).Error
	if err != nil {
		cp = models.ClientProfile{UserID: userID}
	}

	cp.FullName = req.FullName
	cp.Phone = req.Phone
	cp.City = req.City

	if err := h.db.Save(&cp).Error; err != nil {
		httperr.Internal(c, "profile_save_failed", "Could not save the profile.")
		return
	}

	httpresp.OK(c, cp)
}

// --------- Lawyer browsing ---------

func (h *ClientHandler) ListLawyers(c *gin.Context) {
	in := ucLawyer.SearchInput{
		Specialization: c.Query("specialization"),
		City:           c.Query("city"),
		Query:          c.Query("q"),
		MinExperience:  queryInt(c, "min_experience", 0),
		Page:           queryInt(c, "page", 1),
		Limit:          queryInt(c, "limit", ucLawyer.DefaultLimit),
	}
	if v := c.Query("min_rating"); v != "" {
		if f, err := parseFloat(v); err == nil {
			in.MinRating = f
		}
	}

	items, total, err := h.searchUC.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Internal(c, "search_failed", "Could not search lawyers.")
		return
	}

	httpresp.Page(c, items, total, in.Page, in.Limit)
}

func (h *ClientHandler) GetLawyer(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var lp models.LawyerProfile
	if err := h.db.
		Where("id = ? AND approval_status = ?", id, "approved").
		First(&lp).Error; err != nil {
		httperr.NotFound(c, "lawyer_not_found", "Lawyer not found.")
		return
	}

	avg, count, err := h.reviewRepo.StatsForLawyer(c.Request.Context(), lp.ID)
	if err != nil {
		httperr.Internal(c, "stats_failed", "Could not load lawyer details.")
		return
	}

	limit := queryInt(c, "slots", 20)
	slots, err := h.slotsUC.Execute(c.Request.Context(), lp.ID, limit)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Could not compute available slots.")
		return
	}

	reviews, err := h.reviewRepo.ListForLawyer(c.Request.Context(), lp.ID)
	if err != nil {
		httperr.Internal(c, "reviews_failed", "Could not load reviews.")
		return
	}

	slotStrings := make([]string, 0, len(slots))
	for _, s := range slots {
		slotStrings = append(slotStrings, s.Format(time.RFC3339))
	}

	var photoURL string
	if lp.PhotoKey != "" {
		photoURL, _ = h.store.SignedURL(c.Request.Context(), lp.PhotoKey, signedURLTTL)
	}

	c.JSON(http.StatusOK, gin.H{
		"lawyer":          lp,
		"average_rating":  avg,
		"review_count":    count,
		"available_slots": slotStrings,
		"reviews":         reviews,
		"photo_url":       photoURL,
	})
}

// --------- Appointments ---------

func (h *ClientHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	scheduled, err := time.Parse(time.RFC3339, req.ScheduledTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "scheduled_time must be RFC 3339.")
		return
	}

	email := currentUserEmail(c)

	ap, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookInput{
		ClientUserID:      currentUserID(c),
		ClientEmail:       email,
		LawyerID:          req.LawyerID,
		ConsultationType:  req.ConsultationType,
		ScheduledTime:     scheduled,
		CaseDescription:   req.CaseDescription,
		DefaultClientName: validators.LocalPart(email),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *ClientHandler) ListAppointments(c *gin.Context) {
	aps, err := h.listUC.ForClient(c.Request.Context(), currentUserID(c))
	if err != nil {
		httperr.Internal(c, "list_failed", "Could not list appointments.")
		return
	}
	httpresp.List(c, aps)
}

func (h *ClientHandler) CancelAppointment(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	if err := h.cancelUC.Execute(c.Request.Context(), currentUserID(c), id); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled."})
}

// --------- Reviews ---------

func (h *ClientHandler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	rv, err := h.reviewUC.Execute(c.Request.Context(), ucReview.CreateInput{
		ClientUserID: currentUserID(c),
		LawyerID:     req.LawyerID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rv)
}
