package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devansh21640/Kanoonwise-sub002/internal/audit"
	"github.com/devansh21640/Kanoonwise-sub002/internal/httperr"
	"github.com/devansh21640/Kanoonwise-sub002/internal/httpresp"
	"github.com/devansh21640/Kanoonwise-sub002/internal/models"
	"github.com/devansh21640/Kanoonwise-sub002/internal/notify"
	"github.com/devansh21640/Kanoonwise-sub002/internal/storage"
)

type AdminHandler struct {
	db     *gorm.DB
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
	store  *storage.Store
}

func NewAdminHandler(
	db *gorm.DB,
	auditor *audit.Dispatcher,
	notifier *notify.Dispatcher,
	store *storage.Store,
) *AdminHandler {
	return &AdminHandler{
		db:     db,
		audit:  auditor,
		notify: notifier,
		store:  store,
	}
}

// --------- Lawyer vetting ---------

func (h *AdminHandler) ListLawyers(c *gin.Context) {
	status := c.DefaultQuery("status", "pending")
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	q := h.db.Model(&models.LawyerProfile{}).Where("approval_status = ?", status)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "list_failed", "Could not list lawyers.")
		return
	}

	var lawyers []models.LawyerProfile
	if err := q.
		Order("created_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&lawyers).Error; err != nil {
		httperr.Internal(c, "list_failed", "Could not list lawyers.")
		return
	}

	httpresp.Page(c, lawyers, total, page, limit)
}

// GetLawyer returns one profile with signed URLs so the reviewer can open the
// bar certificate.
func (h *AdminHandler) GetLawyer(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var lp models.LawyerProfile
	if err := h.db.First(&lp, id).Error; err != nil {
		httperr.NotFound(c, "not_found", "Lawyer not found.")
		return
	}

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

func (h *AdminHandler) Approve(c *gin.Context) {
	h.setApproval(c, "approved")
}

func (h *AdminHandler) Reject(c *gin.Context) {
	h.setApproval(c, "rejected")
}

func (h *AdminHandler) setApproval(c *gin.Context, status string) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var lp models.LawyerProfile
	if err := h.db.Preload("User").First(&lp, id).Error; err != nil {
		httperr.NotFound(c, "not_found", "Lawyer not found.")
		return
	}

	lp.ApprovalStatus = status
	if err := h.db.Save(&lp).Error; err != nil {
		httperr.Internal(c, "approval_failed", "Could not update the lawyer.")
		return
	}

	adminID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "lawyer_" + status,
		Entity:   "lawyer_profile",
		EntityID: &lp.ID,
	})

	h.notify.Dispatch(notify.Email{
		To:      lp.User.Email,
		Subject: "Your Kanoonwise account was " + status,
		HTML:    fmt.Sprintf("<p>Hello %s, your lawyer account is now <b>%s</b>.</p>", lp.FullName, status),
	})

	c.JSON(http.StatusOK, lp)
}

// --------- Audit trail ---------

func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 50)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	var total int64
	if err := h.db.Model(&models.AuditLog{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "list_failed", "Could not list audit logs.")
		return
	}

	var logs []models.AuditLog
	if err := h.db.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "list_failed", "Could not list audit logs.")
		return
	}

	httpresp.Page(c, logs, total, page, limit)
}
