package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/court"
	"github.com/quickcourt/quickcourt-backend/internal/notify"
	"github.com/quickcourt/quickcourt-backend/internal/timeslot"
	"github.com/quickcourt/quickcourt-backend/internal/user"
)

type CreateRequest struct {
	CourtID   string
	Date      string
	StartTime string
	EndTime   string
}

type Service interface {
	Create(ctx context.Context, userID string, req CreateRequest) (*Booking, error)
	Cancel(ctx context.Context, id, userID string) (*Booking, error)
	ListMine(ctx context.Context, userID string, page, pageSize int) ([]*Booking, int, error)
	ListForOwner(ctx context.Context, ownerID string, page, pageSize int) ([]*Booking, int, error)
	Count(ctx context.Context) (int, error)
}

type service struct {
	repo         Repository
	courtService court.Service
	slotService  timeslot.Service
	userService  user.Service
	notifier     notify.Notifier
}

func NewService(
	repo Repository,
	courtService court.Service,
	slotService timeslot.Service,
	userService user.Service,
	notifier notify.Notifier,
) Service {
	return &service{
		repo:         repo,
		courtService: courtService,
		slotService:  slotService,
		userService:  userService,
		notifier:     notifier,
	}
}

func (s *service) Create(ctx context.Context, userID string, req CreateRequest) (*Booking, error) {
	ct, err := s.courtService.GetByID(ctx, req.CourtID)
	if err != nil {
		return nil, ErrCourtNotFound
	}
	if !ct.Bookable() {
		return nil, ErrCourtNotAvailable
	}

	if !timeslot.ValidDate(req.Date) {
		return nil, ErrInvalidDate
	}
	if !timeslot.ValidWindow(req.StartTime, req.EndTime) {
		return nil, ErrInvalidTimeRange
	}

	overlaps, err := s.repo.HasOverlap(ctx, req.CourtID, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, ErrTimeConflict
	}

	blocked, err := s.slotService.IsBlocked(ctx, req.CourtID, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, ErrSlotBlocked
	}

	b := &Booking{
		UserID:        userID,
		FacilityID:    ct.FacilityID,
		CourtID:       ct.ID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Amount:        ct.PricePerHour,
		Status:        StatusConfirmed,
		PaymentStatus: PaymentPaid,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	b.CourtName = ct.Name
	b.CourtSport = ct.Sport
	b.FacilityName = ct.FacilityName

	s.sendConfirmation(ctx, b)

	return b, nil
}

func (s *service) Cancel(ctx context.Context, id, userID string) (*Booking, error) {
	b, err := s.repo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	if b.Date < today {
		return nil, ErrCancelPast
	}
	if b.Status != StatusConfirmed {
		return nil, ErrNotCancellable
	}

	if err := s.repo.UpdateStatus(ctx, b.ID, StatusCancelled, PaymentRefunded); err != nil {
		return nil, err
	}
	b.Status = StatusCancelled
	b.PaymentStatus = PaymentRefunded

	s.sendCancellation(ctx, b)

	return b, nil
}

func (s *service) ListMine(ctx context.Context, userID string, page, pageSize int) ([]*Booking, int, error) {
	return s.repo.ListByUser(ctx, userID, page, pageSize)
}

func (s *service) ListForOwner(ctx context.Context, ownerID string, page, pageSize int) ([]*Booking, int, error) {
	return s.repo.ListByFacilityOwner(ctx, ownerID, page, pageSize)
}

func (s *service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// Notifications are best-effort: a mail failure never rolls back a booking.
func (s *service) sendConfirmation(ctx context.Context, b *Booking) {
	u, err := s.userService.GetByID(ctx, b.UserID)
	if err != nil {
		log.Printf("booking: lookup user for confirmation failed: %v", err)
		return
	}
	subject := "Booking confirmed"
	message := fmt.Sprintf(
		"Your booking at %s (%s) on %s from %s to %s is confirmed. Amount: %.2f",
		b.FacilityName, b.CourtName, b.Date, b.StartTime, b.EndTime, b.Amount,
	)
	if err := s.notifier.Notify(ctx, u.Email, subject, message); err != nil {
		log.Printf("booking: send confirmation failed: %v", err)
	}
}

func (s *service) sendCancellation(ctx context.Context, b *Booking) {
	u, err := s.userService.GetByID(ctx, b.UserID)
	if err != nil {
		log.Printf("booking: lookup user for cancellation failed: %v", err)
		return
	}
	subject := "Booking cancelled"
	message := fmt.Sprintf(
		"Your booking at %s (%s) on %s from %s to %s has been cancelled and refunded.",
		b.FacilityName, b.CourtName, b.Date, b.StartTime, b.EndTime,
	)
	if err := s.notifier.Notify(ctx, u.Email, subject, message); err != nil {
		log.Printf("booking: send cancellation failed: %v", err)
	}
}
