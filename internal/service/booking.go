package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/domain"
	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	spaceRepo   ports.SpaceRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	spaceRepo ports.SpaceRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		spaceRepo:   spaceRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// List returns every booking for admins, and only the actor's own bookings
// for everyone else. spaceID optionally scopes either view to one space.
func (s *BookingService) List(ctx context.Context, actor domain.Actor, spaceID string) ([]*domain.BookingDetails, error) {
	userID := actor.ID
	if domain.IsAdmin(actor.Role) {
		userID = ""
	}
	return s.bookingRepo.List(ctx, userID, spaceID)
}

func (s *BookingService) Get(ctx context.Context, id string, actor domain.Actor) (*domain.BookingDetails, error) {
	booking, err := s.bookingRepo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanAct(actor.ID, actor.Role, booking.UserID) {
		return nil, fmt.Errorf("%w: view booking %s", domain.ErrForbidden, id)
	}

	return booking, nil
}

func (s *BookingService) Create(ctx context.Context, spaceID string, input domain.CreateBookingInput, actor domain.Actor) (*domain.Booking, error) {
	rooms := domain.DefaultNumOfRooms
	if input.NumOfRooms != nil {
		rooms = *input.NumOfRooms
	}
	if !domain.ValidRoomCount(rooms) {
		return nil, domain.ErrRoomLimit
	}

	space, err := s.spaceRepo.GetByID(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("check coworkingspace: %w", err)
	}

	// The booking always belongs to the authenticated actor, whatever the
	// request body claims.
	booking := &domain.Booking{
		ID:               uuid.New().String(),
		BookingDate:      input.BookingDate,
		NumOfRooms:       rooms,
		UserID:           actor.ID,
		CoworkingspaceID: space.ID,
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("space_id", space.ID),
		logger.String("user_id", actor.ID),
	)

	user, err := s.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", actor.ID),
			logger.String("error", err.Error()),
		)
		return booking, nil
	}

	go s.notifier.BookingCreated(context.WithoutCancel(ctx), user, booking, space)

	return booking, nil
}

func (s *BookingService) Update(ctx context.Context, id string, input domain.UpdateBookingInput, actor domain.Actor) (*domain.Booking, error) {
	if input.NumOfRooms != nil && !domain.ValidRoomCount(*input.NumOfRooms) {
		return nil, domain.ErrRoomLimit
	}

	details, err := s.bookingRepo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanAct(actor.ID, actor.Role, details.UserID) {
		return nil, fmt.Errorf("%w: update booking %s", domain.ErrForbidden, id)
	}

	booking := details.Booking
	if input.BookingDate != nil {
		booking.BookingDate = *input.BookingDate
	}
	if input.NumOfRooms != nil {
		booking.NumOfRooms = *input.NumOfRooms
	}

	if err = s.bookingRepo.Update(ctx, &booking); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	return &booking, nil
}

func (s *BookingService) Delete(ctx context.Context, id string, actor domain.Actor) error {
	details, err := s.bookingRepo.GetDetails(ctx, id)
	if err != nil {
		return err
	}

	if !domain.CanAct(actor.ID, actor.Role, details.UserID) {
		return fmt.Errorf("%w: delete booking %s", domain.ErrForbidden, id)
	}

	if err = s.bookingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.logger.Info("booking deleted",
		logger.String("booking_id", id),
		logger.String("actor_id", actor.ID),
	)

	return nil
}

// SweepOrphans removes bookings left behind by an interrupted cascade
// delete and reports what was removed.
func (s *BookingService) SweepOrphans(ctx context.Context) ([]*domain.Booking, error) {
	orphans, err := s.bookingRepo.DeleteOrphans(ctx)
	if err != nil {
		return nil, fmt.Errorf("sweep orphans: %w", err)
	}

	if len(orphans) > 0 {
		s.logger.Warn("orphan bookings removed",
			logger.Int("count", len(orphans)),
		)
	}

	return orphans, nil
}
