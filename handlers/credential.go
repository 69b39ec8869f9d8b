package handlers

import (
	"errors"
	"net/http"

	"voyago/services/credential"
	"voyago/utils"

	"github.com/gin-gonic/gin"
)

// CredentialHandler manages the per-session completion key.
type CredentialHandler struct {
	Service credential.Service
}

func NewCredentialHandler(service credential.Service) *CredentialHandler {
	return &CredentialHandler{Service: service}
}

// Store validates and saves a key. An invalid key leaves any previously
// stored one untouched.
func (h *CredentialHandler) Store(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var input struct {
		Key string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.Store(c.Request.Context(), sid, input.Key); err != nil {
		if errors.Is(err, credential.ErrInvalidFormat) {
			utils.JSONErrorCode(c, http.StatusUnprocessableEntity, "credential_invalid_format", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to store credential", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "stored"})
}

func (h *CredentialHandler) Remove(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.Service.Remove(c.Request.Context(), sid); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to remove credential", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

func (h *CredentialHandler) Status(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"present": h.Service.Present(c.Request.Context(), sid)})
}

// Probe sanity-checks a key with one minimal completion call before first
// save. A probe failure never deletes an already-stored key.
func (h *CredentialHandler) Probe(c *gin.Context) {
	var input struct {
		Key string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.Probe(c.Request.Context(), input.Key); err != nil {
		respondSearchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
