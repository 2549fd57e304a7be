package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickcourt/quickcourt-backend/internal/auth"
	"github.com/quickcourt/quickcourt-backend/internal/facility"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/request"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/response"
)

type Handler struct {
	service facility.Service
}

func NewHandler(service facility.Service) *Handler {
	return &Handler{service: service}
}

// ListApproved is the public venue discovery listing. Only approved and
// active facilities appear.
func (h *Handler) ListApproved(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid query parameters"})
		return
	}

	facilities, total, err := h.service.ListApproved(c.Request.Context(), params.Page, params.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]FacilityResponse, len(facilities))
	for i, f := range facilities {
		items[i] = NewFacilityResponse(f)
	}

	c.JSON(http.StatusOK, gin.H{
		"facilities": items,
		"page":       response.NewPage(params.Page, params.PageSize, total),
	})
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid facility id"})
		return
	}

	f, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"facility": NewFacilityResponse(f)})
}

// Create registers a new facility for the authenticated owner. It starts
// pending until an admin approves it.
func (h *Handler) Create(c *gin.Context) {
	var req CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request", "details": err.Error()})
		return
	}

	f, err := h.service.Create(c.Request.Context(), auth.GetUserID(c), facility.CreateRequest{
		Name:              req.Name,
		Location:          req.Location,
		Description:       req.Description,
		Sports:            req.Sports,
		Amenities:         req.Amenities,
		PhotoFileIDs:      req.PhotoFileIDs,
		OpeningHoursStart: req.OpeningHoursStart,
		OpeningHoursEnd:   req.OpeningHoursEnd,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"facility": NewFacilityResponse(f)})
}

// Update applies an owner-scoped patch. A facility the caller does not own
// reads as not found.
func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid facility id"})
		return
	}

	var req UpdateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request", "details": err.Error()})
		return
	}

	f, err := h.service.Update(c.Request.Context(), uri.ID, auth.GetUserID(c), facility.UpdateRequest{
		Name:              req.Name,
		Location:          req.Location,
		Description:       req.Description,
		Sports:            req.Sports,
		Amenities:         req.Amenities,
		PhotoFileIDs:      req.PhotoFileIDs,
		OpeningHoursStart: req.OpeningHoursStart,
		OpeningHoursEnd:   req.OpeningHoursEnd,
		IsActive:          req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"facility": NewFacilityResponse(f)})
}

// ListMine returns all facilities owned by the authenticated caller.
func (h *Handler) ListMine(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid query parameters"})
		return
	}

	facilities, total, err := h.service.ListByOwner(c.Request.Context(), auth.GetUserID(c), params.Page, params.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]FacilityResponse, len(facilities))
	for i, f := range facilities {
		items[i] = NewFacilityResponse(f)
	}

	c.JSON(http.StatusOK, gin.H{
		"facilities": items,
		"page":       response.NewPage(params.Page, params.PageSize, total),
	})
}
