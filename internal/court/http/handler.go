package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quickcourt/quickcourt-backend/internal/auth"
	"github.com/quickcourt/quickcourt-backend/internal/court"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/request"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/response"
)

type Handler struct {
	service court.Service
}

func NewHandler(service court.Service) *Handler {
	return &Handler{service: service}
}

// Create adds a court to one of the caller's facilities.
func (h *Handler) Create(c *gin.Context) {
	var req CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request", "details": err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), auth.GetUserID(c), court.CreateRequest{
		FacilityID:        req.FacilityID,
		Name:              req.Name,
		Sport:             req.Sport,
		PricePerHour:      req.PricePerHour,
		Description:       req.Description,
		OpeningHoursStart: req.OpeningHoursStart,
		OpeningHoursEnd:   req.OpeningHoursEnd,
		Schedule:          req.Schedule,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"court": NewCourtResponse(created)})
}

// ListByFacility is the public per-venue court listing.
func (h *Handler) ListByFacility(c *gin.Context) {
	facilityID := c.Param("facilityId")
	if _, err := uuid.Parse(facilityID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid facility id"})
		return
	}

	courts, err := h.service.ListByFacility(c.Request.Context(), facilityID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]CourtResponse, len(courts))
	for i, ct := range courts {
		items[i] = NewCourtResponse(ct)
	}

	c.JSON(http.StatusOK, gin.H{"courts": items})
}

// Update applies a patch to a court owned (via its facility) by the caller.
func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid court id"})
		return
	}

	var req UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request", "details": err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), uri.ID, auth.GetUserID(c), court.UpdateRequest{
		Name:              req.Name,
		Sport:             req.Sport,
		PricePerHour:      req.PricePerHour,
		Description:       req.Description,
		OpeningHoursStart: req.OpeningHoursStart,
		OpeningHoursEnd:   req.OpeningHoursEnd,
		Schedule:          req.Schedule,
		IsActive:          req.IsActive,
		Status:            req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"court": NewCourtResponse(updated)})
}
