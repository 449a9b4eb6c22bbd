package ports

import (
	"context"

	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/domain"
	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/query"
)

type SpaceRepo interface {
	Create(ctx context.Context, s *domain.Coworkingspace) error
	GetByID(ctx context.Context, id string) (*domain.Coworkingspace, error)
	List(ctx context.Context, lq query.ListQuery) ([]*domain.Coworkingspace, int, error)
	Update(ctx context.Context, s *domain.Coworkingspace) error
	DeleteCascade(ctx context.Context, id string) (int64, error)
}
