package ports

import (
	"context"

	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetDetails(ctx context.Context, id string) (*domain.BookingDetails, error)
	List(ctx context.Context, userID, spaceID string) ([]*domain.BookingDetails, error)
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id string) error
	DeleteOrphans(ctx context.Context) ([]*domain.Booking, error)
}
