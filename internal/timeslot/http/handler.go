package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickcourt/quickcourt-backend/internal/auth"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/response"
	"github.com/quickcourt/quickcourt-backend/internal/timeslot"
)

type Handler struct {
	service timeslot.Service
}

func NewHandler(service timeslot.Service) *Handler {
	return &Handler{service: service}
}

// SetAvailability upserts a blocked/unblocked override for an exact window
// on a court the caller owns.
func (h *Handler) SetAvailability(c *gin.Context) {
	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request", "details": err.Error()})
		return
	}

	slot, err := h.service.SetAvailability(c.Request.Context(), auth.GetUserID(c), timeslot.SetAvailabilityRequest{
		CourtID:   req.CourtID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsBlocked: req.IsBlocked,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slot": NewSlotResponse(slot)})
}

// List is the public availability query; both filters are optional.
func (h *Handler) List(c *gin.Context) {
	var req ListSlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid query parameters"})
		return
	}

	slots, err := h.service.List(c.Request.Context(), timeslot.Filter{
		CourtID: req.CourtID,
		Date:    req.Date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]SlotResponse, len(slots))
	for i, s := range slots {
		items[i] = NewSlotResponse(s)
	}

	c.JSON(http.StatusOK, gin.H{"slots": items})
}
