package handlers

import (
	"net/http"

	"voyago/models"
	"voyago/services/search"
	"voyago/utils"

	"github.com/gin-gonic/gin"
)

// SearchHandler exposes the five domain fetches plus the typeahead helpers.
type SearchHandler struct {
	Service search.Service
}

func NewSearchHandler(service search.Service) *SearchHandler {
	return &SearchHandler{Service: service}
}

func (h *SearchHandler) Flights(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var q models.FlightQuery
	var f models.FlightFilter
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", err.Error())
		return
	}
	if err := c.ShouldBindQuery(&f); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	res, err := h.Service.Flights(c.Request.Context(), sid, q, f)
	if err != nil {
		respondSearchError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *SearchHandler) Hotels(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var q models.HotelQuery
	var f models.HotelFilter
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", err.Error())
		return
	}
	if err := c.ShouldBindQuery(&f); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	res, err := h.Service.Hotels(c.Request.Context(), sid, q, f)
	if err != nil {
		respondSearchError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *SearchHandler) Cars(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var q models.CarQuery
	var f models.CarFilter
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", err.Error())
		return
	}
	if err := c.ShouldBindQuery(&f); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	res, err := h.Service.Cars(c.Request.Context(), sid, q, f)
	if err != nil {
		respondSearchError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *SearchHandler) Packages(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var q models.PackageQuery
	var f models.PackageFilter
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", err.Error())
		return
	}
	if err := c.ShouldBindQuery(&f); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	res, err := h.Service.Packages(c.Request.Context(), sid, q, f)
	if err != nil {
		respondSearchError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *SearchHandler) Cities(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var q models.CityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", err.Error())
		return
	}

	res, err := h.Service.Cities(c.Request.Context(), sid, q)
	if err != nil {
		respondSearchError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *SearchHandler) RecentCities(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	recent, err := h.Service.RecentCities(c.Request.Context(), sid)
	if err != nil {
		respondSearchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recent": recent})
}

func (h *SearchHandler) RecordRecentCity(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var city models.RecentCity
	if err := c.ShouldBindJSON(&city); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Service.RecordRecentCity(c.Request.Context(), sid, city); err != nil {
		respondSearchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "recorded"})
}

// LoadMore fetches another page for a domain, guarded by the per-session busy
// flag so overlapping requests cannot fan out duplicate upstream calls.
func (h *SearchHandler) LoadMore(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	domain := c.Param("domain")

	ctx := c.Request.Context()
	if err := h.Service.AcquireLoadMore(ctx, sid, domain); err != nil {
		respondSearchError(c, err)
		return
	}
	defer func() {
		_ = h.Service.ReleaseLoadMore(ctx, sid, domain)
	}()

	switch domain {
	case "flights":
		h.Flights(c)
	case "hotels":
		h.Hotels(c)
	case "cars":
		h.Cars(c)
	case "packages":
		h.Packages(c)
	default:
		utils.JSONError(c, http.StatusNotFound, "unknown search domain", domain)
	}
}
