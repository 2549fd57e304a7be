package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickcourt/quickcourt-backend/internal/admin"
	facilityhttp "github.com/quickcourt/quickcourt-backend/internal/facility/http"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/request"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/response"
	"github.com/quickcourt/quickcourt-backend/internal/user"
	userhttp "github.com/quickcourt/quickcourt-backend/internal/user/http"
)

type Handler struct {
	service admin.Service
}

func NewHandler(service admin.Service) *Handler {
	return &Handler{service: service}
}

// Stats returns the dashboard summary counters.
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": NewStatsResponse(stats)})
}

// ListPendingFacilities returns facilities awaiting moderation, with owner
// contact details for review.
func (h *Handler) ListPendingFacilities(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid query parameters"})
		return
	}

	facilities, total, err := h.service.ListPendingFacilities(c.Request.Context(), params.Page, params.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]facilityhttp.PendingFacilityResponse, len(facilities))
	for i, f := range facilities {
		items[i] = facilityhttp.NewPendingFacilityResponse(f)
	}

	c.JSON(http.StatusOK, gin.H{
		"facilities": items,
		"page":       response.NewPage(params.Page, params.PageSize, total),
	})
}

func (h *Handler) ApproveFacility(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid facility id"})
		return
	}

	f, err := h.service.ApproveFacility(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"facility": facilityhttp.NewFacilityResponse(f)})
}

func (h *Handler) RejectFacility(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid facility id"})
		return
	}

	// The reason is optional; a body-less reject falls back to the
	// service's default.
	var req RejectFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	f, err := h.service.RejectFacility(c.Request.Context(), uri.ID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"facility": facilityhttp.NewFacilityResponse(f)})
}

func (h *Handler) ListUsers(c *gin.Context) {
	var req ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid query parameters"})
		return
	}

	users, total, err := h.service.ListUsers(c.Request.Context(), user.Filter{
		Role:     req.Role,
		IsBanned: req.Banned,
		Keyword:  req.Keyword,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]userhttp.UserResponse, len(users))
	for i, u := range users {
		items[i] = userhttp.NewUserResponse(u)
	}

	c.JSON(http.StatusOK, gin.H{
		"users": items,
		"page":  response.NewPage(req.Page, req.PageSize, total),
	})
}

func (h *Handler) BanUser(c *gin.Context) {
	h.setBanned(c, true)
}

func (h *Handler) UnbanUser(c *gin.Context) {
	h.setBanned(c, false)
}

func (h *Handler) setBanned(c *gin.Context, banned bool) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return
	}

	u, err := h.service.SetUserBanned(c.Request.Context(), uri.ID, banned)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userhttp.NewUserResponse(u)})
}
