package handlers

import (
	"net/http"

	"voyago/models"
	"voyago/services/trip"
	"voyago/utils"

	"github.com/gin-gonic/gin"
)

// TripHandler exposes trip session state and the checkout flow.
type TripHandler struct {
	Service trip.TripSessionService
}

func NewTripHandler(service trip.TripSessionService) *TripHandler {
	return &TripHandler{Service: service}
}

// CreateSession starts a fresh trip session; the returned ID is echoed back
// by clients in the X-Session-ID header.
func (h *TripHandler) CreateSession(c *gin.Context) {
	session, err := h.Service.Create(c.Request.Context())
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *TripHandler) GetSession(c *gin.Context) {
	session, err := h.Service.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectFlight captures an outbound or return flight selection.
func (h *TripHandler) SelectFlight(c *gin.Context) {
	var input struct {
		Leg    string        `json:"leg" binding:"required"` // "outbound" or "return"
		Flight models.Flight `json:"flight" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ctx := c.Request.Context()
	id := c.Param("sessionID")
	var session *models.TripSession
	var err error
	switch input.Leg {
	case "outbound":
		session, err = h.Service.SetOutboundFlight(ctx, id, input.Flight)
	case "return":
		session, err = h.Service.SetReturnFlight(ctx, id, input.Flight)
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "leg must be \"outbound\" or \"return\"")
		return
	}
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *TripHandler) SetLodgings(c *gin.Context) {
	var input struct {
		Lodgings []models.Hotel `json:"lodgings"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.SetLodgings(c.Request.Context(), c.Param("sessionID"), input.Lodgings)
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *TripHandler) AddLodging(c *gin.Context) {
	var lodging models.Hotel
	if err := c.ShouldBindJSON(&lodging); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.AddLodging(c.Request.Context(), c.Param("sessionID"), lodging)
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *TripHandler) RemoveLodging(c *gin.Context) {
	session, err := h.Service.RemoveLodging(c.Request.Context(), c.Param("sessionID"), c.Param("lodgingID"))
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *TripHandler) SetPreferences(c *gin.Context) {
	var prefs trip.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.SetPreferences(c.Request.Context(), c.Param("sessionID"), prefs)
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *TripHandler) Total(c *gin.Context) {
	total, err := h.Service.Total(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

func (h *TripHandler) BeginCheckout(c *gin.Context) {
	session, err := h.Service.BeginCheckout(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Checkout finalizes the booking and returns the persisted record.
func (h *TripHandler) Checkout(c *gin.Context) {
	var payment models.PaymentInput
	if err := c.ShouldBindJSON(&payment); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	record, err := h.Service.Checkout(c.Request.Context(), c.Param("sessionID"), payment)
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *TripHandler) Reset(c *gin.Context) {
	session, err := h.Service.Reset(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
