package handlers

import (
	"errors"
	"net/http"

	"voyago/database/repository"
	"voyago/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves persisted booking confirmations.
type BookingHandler struct {
	Repo repository.BookingRepository
}

func NewBookingHandler(repo repository.BookingRepository) *BookingHandler {
	return &BookingHandler{Repo: repo}
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	record, err := h.Repo.GetByID(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			utils.JSONErrorCode(c, http.StatusNotFound, "booking_not_found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListForSession returns the session's booking history, newest first.
func (h *BookingHandler) ListForSession(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	records, err := h.Repo.GetBySessionID(c.Request.Context(), sid)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": records})
}
