package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/quickcourt/quickcourt-backend/internal/admin"
	adminHttp "github.com/quickcourt/quickcourt-backend/internal/admin/http"
	"github.com/quickcourt/quickcourt-backend/internal/announcement"
	announcementHttp "github.com/quickcourt/quickcourt-backend/internal/announcement/http"
	"github.com/quickcourt/quickcourt-backend/internal/auth"
	"github.com/quickcourt/quickcourt-backend/internal/booking"
	bookingHttp "github.com/quickcourt/quickcourt-backend/internal/booking/http"
	"github.com/quickcourt/quickcourt-backend/internal/court"
	courtHttp "github.com/quickcourt/quickcourt-backend/internal/court/http"
	"github.com/quickcourt/quickcourt-backend/internal/facility"
	facilityHttp "github.com/quickcourt/quickcourt-backend/internal/facility/http"
	"github.com/quickcourt/quickcourt-backend/internal/file"
	fileHttp "github.com/quickcourt/quickcourt-backend/internal/file/http"
	"github.com/quickcourt/quickcourt-backend/internal/timeslot"
	timeslotHttp "github.com/quickcourt/quickcourt-backend/internal/timeslot/http"
	"github.com/quickcourt/quickcourt-backend/internal/user"
	userHttp "github.com/quickcourt/quickcourt-backend/internal/user/http"
)

// RouterConfig carries everything the router needs. Tests construct it with
// fake-backed services.
type RouterConfig struct {
	IsProduction bool
	AllowOrigins []string

	JWTManager *auth.JWTManager

	UserService         user.Service
	FacilityService     facility.Service
	CourtService        court.Service
	TimeslotService     timeslot.Service
	BookingService      booking.Service
	AnnouncementService announcement.Service
	FileService         file.Service
	AdminService        admin.Service
}

// NewRouter assembles middleware and registers every module's routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authMiddleware := auth.RequireAuth(cfg.JWTManager)
	ownerMiddleware := RequireRoles(cfg.UserService, user.RoleFacilityOwner, user.RoleAdmin)
	adminMiddleware := RequireRoles(cfg.UserService, user.RoleAdmin)
	memberMiddleware := RequireRoles(cfg.UserService, user.RoleUser, user.RoleFacilityOwner, user.RoleAdmin)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	facilityHandler := facilityHttp.NewHandler(cfg.FacilityService)
	courtHandler := courtHttp.NewHandler(cfg.CourtService)
	timeslotHandler := timeslotHttp.NewHandler(cfg.TimeslotService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	announcementHandler := announcementHttp.NewHandler(cfg.AnnouncementService)
	fileHandler := fileHttp.NewHandler(cfg.FileService)
	adminHandler := adminHttp.NewHandler(cfg.AdminService)

	apiGroup := r.Group("/api")
	{
		userHttp.RegisterRoutes(apiGroup, userHandler, authMiddleware, memberMiddleware)
		facilityHttp.RegisterRoutes(apiGroup, facilityHandler, authMiddleware, ownerMiddleware)
		courtHttp.RegisterRoutes(apiGroup, courtHandler, authMiddleware, ownerMiddleware)
		timeslotHttp.RegisterRoutes(apiGroup, timeslotHandler, authMiddleware, ownerMiddleware)
		bookingHttp.RegisterRoutes(apiGroup, bookingHandler, authMiddleware, memberMiddleware, ownerMiddleware)
		announcementHttp.RegisterRoutes(apiGroup, announcementHandler, authMiddleware, adminMiddleware)
		fileHttp.RegisterRoutes(apiGroup, fileHandler, authMiddleware, memberMiddleware)
		adminHttp.RegisterRoutes(apiGroup, adminHandler, authMiddleware, adminMiddleware)
	}

	return r
}
