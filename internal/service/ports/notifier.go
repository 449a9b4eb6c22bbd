package ports

import (
	"context"

	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/domain"
)

// BookingNotifier delivers best-effort booking notifications. Failures stay
// inside the implementation; callers never see them.
type BookingNotifier interface {
	BookingCreated(ctx context.Context, user *domain.User, booking *domain.Booking, space *domain.Coworkingspace)
}
