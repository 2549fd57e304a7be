package http

import (
	"github.com/quickcourt/quickcourt-backend/internal/admin"
)

type StatsResponse struct {
	TotalUsers        int `json:"totalUsers"`
	FacilityOwners    int `json:"facilityOwners"`
	TotalBookings     int `json:"totalBookings"`
	PendingFacilities int `json:"pendingFacilities"`
	ActiveCourts      int `json:"activeCourts"`
}

func NewStatsResponse(s *admin.Stats) StatsResponse {
	return StatsResponse{
		TotalUsers:        s.TotalUsers,
		FacilityOwners:    s.FacilityOwners,
		TotalBookings:     s.TotalBookings,
		PendingFacilities: s.PendingFacilities,
		ActiveCourts:      s.ActiveCourts,
	}
}

type RejectFacilityRequest struct {
	Reason string `json:"reason"`
}

type ListUsersRequest struct {
	Role     string `form:"role" binding:"omitempty,oneof=user facility_owner admin"`
	Banned   *bool  `form:"banned"`
	Keyword  string `form:"keyword"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=20"`
}
