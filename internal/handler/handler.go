package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/domain"
	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/handler/dto"
	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/middleware"
	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/query"
	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/repository"
	"github.com/wb-go/wbf/ginext"
)

type SpaceSvc interface {
	List(ctx context.Context, lq query.ListQuery) ([]*domain.Coworkingspace, int, error)
	Get(ctx context.Context, id string) (*domain.Coworkingspace, error)
	Create(ctx context.Context, input domain.CreateSpaceInput) (*domain.Coworkingspace, error)
	Update(ctx context.Context, id string, input domain.UpdateSpaceInput) (*domain.Coworkingspace, error)
	Delete(ctx context.Context, id string) error
}

type BookingSvc interface {
	List(ctx context.Context, actor domain.Actor, spaceID string) ([]*domain.BookingDetails, error)
	Get(ctx context.Context, id string, actor domain.Actor) (*domain.BookingDetails, error)
	Create(ctx context.Context, spaceID string, input domain.CreateBookingInput, actor domain.Actor) (*domain.Booking, error)
	Update(ctx context.Context, id string, input domain.UpdateBookingInput, actor domain.Actor) (*domain.Booking, error)
	Delete(ctx context.Context, id string, actor domain.Actor) error
}

type Handler struct {
	spaceService   SpaceSvc
	bookingService BookingSvc
}

func NewHandler(spaceService SpaceSvc, bookingService BookingSvc) *Handler {
	return &Handler{
		spaceService:   spaceService,
		bookingService: bookingService,
	}
}

// Coworkingspaces

func (h *Handler) ListSpaces(c *ginext.Context) {
	lq := query.Parse(c.Request.URL.Query(), repository.SpaceFields)

	spaces, total, err := h.spaceService.List(c.Request.Context(), lq)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var data any
	if len(lq.Select) > 0 {
		projected := make([]map[string]any, 0, len(spaces))
		for _, s := range spaces {
			projected = append(projected, dto.ToSpaceResponse(s).Project(lq.Select))
		}
		data = projected
	} else {
		resp := make([]dto.SpaceResponse, 0, len(spaces))
		for _, s := range spaces {
			resp = append(resp, dto.ToSpaceResponse(s))
		}
		data = resp
	}

	c.JSON(http.StatusOK, dto.ListResult(data, len(spaces), total, lq.Pagination(total)))
}

func (h *Handler) GetSpace(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("invalid coworkingspace id"))
		return
	}

	space, err := h.spaceService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToSpaceResponse(space)))
}

func (h *Handler) CreateSpace(c *ginext.Context) {
	var req dto.CreateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(err.Error()))
		return
	}

	input := domain.CreateSpaceInput{
		Name:           req.Name,
		OperatingHours: req.OperatingHours,
		Address:        req.Address,
		Province:       req.Province,
		Postalcode:     req.Postalcode,
		Tel:            req.Tel,
		Picture:        req.Picture,
	}

	space, err := h.spaceService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToSpaceResponse(space)))
}

func (h *Handler) UpdateSpace(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("invalid coworkingspace id"))
		return
	}

	var req dto.UpdateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(err.Error()))
		return
	}

	input := domain.UpdateSpaceInput{
		Name:           req.Name,
		OperatingHours: req.OperatingHours,
		Address:        req.Address,
		Province:       req.Province,
		Postalcode:     req.Postalcode,
		Tel:            req.Tel,
		Picture:        req.Picture,
	}

	space, err := h.spaceService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToSpaceResponse(space)))
}

func (h *Handler) DeleteSpace(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("invalid coworkingspace id"))
		return
	}

	if err := h.spaceService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(ginext.H{}))
}

// Bookings

func (h *Handler) ListBookings(c *ginext.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("missing identity"))
		return
	}

	// Nested route carries the space id as a path param, the flat route as
	// an optional query param.
	spaceID := c.Param("id")
	if spaceID == "" {
		spaceID = c.Query("coworkingspaceId")
	}

	bookings, err := h.bookingService.List(c.Request.Context(), actor, spaceID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingDetailsResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingDetailsResponse(b))
	}

	count := len(resp)
	c.JSON(http.StatusOK, dto.Envelope{Success: true, Count: &count, Data: resp})
}

func (h *Handler) GetBooking(c *ginext.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("missing identity"))
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("invalid booking id"))
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToBookingDetailsResponse(booking)))
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("missing identity"))
		return
	}

	spaceID := c.Param("id")
	if _, err := uuid.Parse(spaceID); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("invalid coworkingspace id"))
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(err.Error()))
		return
	}

	bookingDate, err := dto.ParseDate(req.BookingDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("invalid bookingDate, expected YYYY-MM-DD"))
		return
	}

	input := domain.CreateBookingInput{
		BookingDate: bookingDate,
		NumOfRooms:  req.NumOfRooms,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), spaceID, input, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToBookingResponse(booking)))
}

func (h *Handler) UpdateBooking(c *ginext.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("missing identity"))
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("invalid booking id"))
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(err.Error()))
		return
	}

	input := domain.UpdateBookingInput{NumOfRooms: req.NumOfRooms}
	if req.BookingDate != nil {
		bookingDate, err := dto.ParseDate(*req.BookingDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Err("invalid bookingDate, expected YYYY-MM-DD"))
			return
		}
		input.BookingDate = &bookingDate
	}

	booking, err := h.bookingService.Update(c.Request.Context(), id, input, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToBookingResponse(booking)))
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("missing identity"))
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("invalid booking id"))
		return
	}

	if err := h.bookingService.Delete(c.Request.Context(), id, actor); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(ginext.H{}))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSpaceNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.Err(err.Error()))

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusUnauthorized, dto.Err(err.Error()))

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrRoomLimit),
		errors.Is(err, domain.ErrDuplicateName):
		c.JSON(http.StatusBadRequest, dto.Err(err.Error()))

	default:
		c.JSON(http.StatusInternalServerError, dto.Err("internal server error"))
	}
}
