package app

import (
	"context"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quickcourt/quickcourt-backend/internal/admin"
	"github.com/quickcourt/quickcourt-backend/internal/announcement"
	"github.com/quickcourt/quickcourt-backend/internal/api"
	"github.com/quickcourt/quickcourt-backend/internal/auth"
	"github.com/quickcourt/quickcourt-backend/internal/booking"
	"github.com/quickcourt/quickcourt-backend/internal/config"
	"github.com/quickcourt/quickcourt-backend/internal/court"
	"github.com/quickcourt/quickcourt-backend/internal/facility"
	"github.com/quickcourt/quickcourt-backend/internal/file"
	"github.com/quickcourt/quickcourt-backend/internal/notify"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/cache"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/storage"
	"github.com/quickcourt/quickcourt-backend/internal/timeslot"
	"github.com/quickcourt/quickcourt-backend/internal/user"
)

// Container holds the initialized components needed by main.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer wires every module against the shared pool and config.
func NewContainer(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	var listingCache cache.Cache = cache.Noop{}
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		listingCache = redisCache
	}

	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	var notifier notify.Notifier
	if cfg.SMTPHost != "" {
		notifier = notify.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)
	} else {
		log.Println("SMTP_HOST not set, notifications go to console")
		notifier = notify.NewConsole("email")
	}

	// User Module
	userRepo := user.NewPgxRepository(pool)
	userService := user.NewService(userRepo, passwordHasher)

	// Facility Module
	facilityRepo := facility.NewPgxRepository(pool)
	facilityService := facility.NewService(facilityRepo, listingCache)

	// Court Module
	courtRepo := court.NewPgxRepository(pool)
	courtService := court.NewService(courtRepo, facilityService)

	// Timeslot Module
	timeslotRepo := timeslot.NewPgxRepository(pool)
	timeslotService := timeslot.NewService(timeslotRepo, courtService)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(pool)
	bookingService := booking.NewService(bookingRepo, courtService, timeslotService, userService, notifier)

	// Announcement Module
	annRepo := announcement.NewPgxRepository(pool)
	annService := announcement.NewService(annRepo)

	// File Module
	fileRepo := file.NewPgxRepository(pool)
	fileService := file.NewService(fileRepo, store)

	// Admin Module
	adminService := admin.NewService(userService, facilityService, courtService, bookingService)

	router := api.NewRouter(api.RouterConfig{
		IsProduction: cfg.IsProduction,
		AllowOrigins: splitOrigins(cfg.ProdOrigins),

		JWTManager: jwtManager,

		UserService:         userService,
		FacilityService:     facilityService,
		CourtService:        courtService,
		TimeslotService:     timeslotService,
		BookingService:      bookingService,
		AnnouncementService: annService,
		FileService:         fileService,
		AdminService:        adminService,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}

// splitOrigins parses the comma separated PROD_ORIGINS value.
func splitOrigins(origins string) []string {
	if strings.TrimSpace(origins) == "" {
		return nil
	}
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
