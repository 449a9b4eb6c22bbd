package ports

import (
	"context"

	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/domain"
)

type UserRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
