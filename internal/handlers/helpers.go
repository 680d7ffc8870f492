package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devansh21640/Kanoonwise-sub002/internal/httperr"
	"github.com/devansh21640/Kanoonwise-sub002/internal/middleware"
)

// Human-readable messages for every business code a use case can raise.
var businessMessages = map[string]string{
	"slot_unavailable":          "That time slot is no longer available.",
	"invalid_time":              "Scheduled time must be in the future.",
	"invalid_consultation_type": "Consultation type must be online or offline.",
	"invalid_status":            "Unknown appointment status.",
	"invalid_transition":        "The appointment cannot move to that status.",
	"lawyer_not_found":          "Lawyer not found.",
	"lawyer_not_approved":       "This lawyer is not accepting bookings yet.",
	"client_profile_not_found":  "Client profile not found.",
	"not_found":                 "Not found.",
	"review_not_allowed":        "You can only review a lawyer after a completed consultation.",
	"duplicate_review":          "You have already reviewed this lawyer.",
	"invalid_rating":            "Rating must be between 1 and 5.",
	"invalid_fee":               "The lawyer's fee for this consultation type is not set.",
}

// writeBusinessError maps a use-case error onto the response: known business
// codes become 4xx, anything else is a generic 500.
func writeBusinessError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	msg := businessMessages[code]
	if msg == "" {
		msg = "Request failed."
	}

	if code == "not_found" {
		httperr.NotFound(c, code, msg)
		return
	}

	httperr.BadRequest(c, code, msg)
}

func currentUserID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

func currentUserEmail(c *gin.Context) string {
	return c.GetString(middleware.ContextUserEmail)
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(v), true
}

var (
	errTooLarge = errors.New("upload too large")
	errBadType  = errors.New("unsupported file type")
)

func postFormInt(c *gin.Context, name string, def int) int {
	if v := c.PostForm(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func postFormInt64(c *gin.Context, name string, def int64) int64 {
	if v := c.PostForm(name); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func parseFloat(v string) (float64, error) {
	return strconv.ParseFloat(v, 64)
}

func queryInt(c *gin.Context, name string, def int) int {
	if v := c.Query(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
