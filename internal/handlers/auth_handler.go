package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devansh21640/Kanoonwise-sub002/internal/config"
	"github.com/devansh21640/Kanoonwise-sub002/internal/httperr"
	"github.com/devansh21640/Kanoonwise-sub002/internal/middleware"
	"github.com/devansh21640/Kanoonwise-sub002/internal/models"
	"github.com/devansh21640/Kanoonwise-sub002/internal/notify"
	"github.com/devansh21640/Kanoonwise-sub002/internal/otp"
	"github.com/devansh21640/Kanoonwise-sub002/internal/validators"
)

const sessionMaxAge = 24 * 60 * 60

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	otp    *otp.Store
	notify *notify.Dispatcher
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	otpStore *otp.Store,
	notifier *notify.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		db:     db,
		config: cfg,
		otp:    otpStore,
		notify: notifier,
	}
}

// --------- Requests ---------

type RequestOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=client lawyer"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	code, err := h.otp.Issue(c.Request.Context(), email, req.Role)
	if err != nil {
		httperr.Internal(c, "otp_issue_failed", "Could not send the login code.")
		return
	}

	// Delivery is fire-and-forget: a transient SMTP failure must not fail
	// the login flow.
	h.notify.Dispatch(notify.Email{
		To:      email,
		Subject: "Your Kanoonwise login code",
		HTML:    fmt.Sprintf("<p>Your login code is <b>%s</b>. It expires in 5 minutes.</p>", code),
	})

	c.JSON(http.StatusOK, gin.H{"message": "A login code has been sent to your email."})
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	role, err := h.otp.Verify(c.Request.Context(), email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, otp.ErrExpired):
			httperr.BadRequest(c, "otp_expired", "The login code expired. Request a new one.")
		case errors.Is(err, otp.ErrTooManyAttempts):
			httperr.BadRequest(c, "too_many_attempts", "Too many attempts. Request a new code.")
		case errors.Is(err, otp.ErrInvalid):
			httperr.BadRequest(c, "invalid_otp", "That code is not correct.")
		default:
			httperr.Internal(c, "otp_verify_failed", "Could not verify the login code.")
		}
		return
	}

	if h.config.IsAdminEmail(email) {
		role = "admin"
	}

	user, err := h.getOrCreateUser(email, role)
	if err != nil {
		httperr.Internal(c, "login_failed", "Could not complete the login.")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not complete the login.")
		return
	}

	csrf := uuid.New().String()

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, sessionMaxAge, "/", "", h.config.IsProduction(), true)
	c.SetCookie(middleware.CSRFCookie, csrf, sessionMaxAge, "/", "", h.config.IsProduction(), false)

	c.JSON(http.StatusOK, gin.H{
		"user":       user,
		"csrf_token": csrf,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.config.IsProduction(), true)
	c.SetCookie(middleware.CSRFCookie, "", -1, "/", "", h.config.IsProduction(), false)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out."})
}

func (h *AuthHandler) Me(c *gin.Context) {
	var user models.User
	if err := h.db.First(&user, currentUserID(c)).Error; err != nil {
		httperr.Unauthorized(c, "unknown_user", "Session user no longer exists.")
		return
	}
	c.JSON(http.StatusOK, user)
}

// --------- Internals ---------

func (h *AuthHandler) getOrCreateUser(email, role string) (*models.User, error) {
	var user models.User
	err := h.db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{Email: email, Role: role}
	if err := h.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"role":  user.Role,
		"email": user.Email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
