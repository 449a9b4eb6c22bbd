package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/domain"
	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/query"
	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

type SpaceService struct {
	repo     ports.SpaceRepo
	strategy retry.Strategy
	logger   logger.Logger
}

func NewSpaceService(repo ports.SpaceRepo, log logger.Logger) *SpaceService {
	return &SpaceService{
		repo: repo,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		logger: log,
	}
}

func (s *SpaceService) List(ctx context.Context, lq query.ListQuery) ([]*domain.Coworkingspace, int, error) {
	return s.repo.List(ctx, lq)
}

func (s *SpaceService) Get(ctx context.Context, id string) (*domain.Coworkingspace, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SpaceService) Create(ctx context.Context, input domain.CreateSpaceInput) (*domain.Coworkingspace, error) {
	space := &domain.Coworkingspace{
		ID:             uuid.New().String(),
		Name:           input.Name,
		OperatingHours: input.OperatingHours,
		Address:        input.Address,
		Province:       input.Province,
		Postalcode:     input.Postalcode,
		Tel:            input.Tel,
		Picture:        input.Picture,
	}

	if err := validateSpace(space); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, space); err != nil {
		return nil, fmt.Errorf("create coworkingspace: %w", err)
	}

	s.logger.Info("coworkingspace created",
		logger.String("space_id", space.ID),
		logger.String("name", space.Name),
	)

	return space, nil
}

func (s *SpaceService) Update(ctx context.Context, id string, input domain.UpdateSpaceInput) (*domain.Coworkingspace, error) {
	space, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		space.Name = *input.Name
	}
	if input.OperatingHours != nil {
		space.OperatingHours = *input.OperatingHours
	}
	if input.Address != nil {
		space.Address = *input.Address
	}
	if input.Province != nil {
		space.Province = *input.Province
	}
	if input.Postalcode != nil {
		space.Postalcode = *input.Postalcode
	}
	if input.Tel != nil {
		space.Tel = *input.Tel
	}
	if input.Picture != nil {
		space.Picture = *input.Picture
	}

	if err = validateSpace(space); err != nil {
		return nil, err
	}

	if err = s.repo.Update(ctx, space); err != nil {
		return nil, fmt.Errorf("update coworkingspace: %w", err)
	}

	return space, nil
}

// Delete removes the space together with every booking referencing it. The
// cascade runs as one unit of work and is retried to completion; giving up
// is reported as an incomplete cascade, never as success.
func (s *SpaceService) Delete(ctx context.Context, id string) error {
	var (
		removed  int64
		notFound bool
	)

	err := retry.Do(func() error {
		n, err := s.repo.DeleteCascade(ctx, id)
		if errors.Is(err, domain.ErrSpaceNotFound) {
			// retrying a missing id cannot help
			notFound = true
			return nil
		}
		if err != nil {
			return err
		}
		removed = n
		return nil
	}, s.strategy)
	if err != nil {
		s.logger.Error("cascade delete failed",
			logger.String("space_id", id),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %w", domain.ErrCascadeIncomplete, err)
	}
	if notFound {
		return domain.ErrSpaceNotFound
	}

	s.logger.Info("coworkingspace deleted",
		logger.String("space_id", id),
		logger.Int64("bookings_removed", removed),
	)

	return nil
}

func validateSpace(s *domain.Coworkingspace) error {
	switch {
	case s.Name == "":
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	case len(s.Name) > domain.MaxSpaceNameLen:
		return fmt.Errorf("%w: name cannot be more than %d characters", domain.ErrValidation, domain.MaxSpaceNameLen)
	case s.OperatingHours == "":
		return fmt.Errorf("%w: operatingHours is required", domain.ErrValidation)
	case s.Address == "":
		return fmt.Errorf("%w: address is required", domain.ErrValidation)
	case s.Province == "":
		return fmt.Errorf("%w: province is required", domain.ErrValidation)
	case s.Postalcode == "":
		return fmt.Errorf("%w: postalcode is required", domain.ErrValidation)
	case len(s.Postalcode) > domain.MaxPostalcodeLen:
		return fmt.Errorf("%w: postalcode cannot be more than %d digits", domain.ErrValidation, domain.MaxPostalcodeLen)
	case s.Picture == "":
		return fmt.Errorf("%w: picture is required", domain.ErrValidation)
	}
	return nil
}
