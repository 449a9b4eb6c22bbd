package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/domain"
	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/handler/dto"
	hmocks "github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/handler/mocks"
	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/query"
	"github.com/wb-go/wbf/ginext"
)

func withActor(actor domain.Actor) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Set("actor", actor)
		c.Next()
	}
}

func setupRouter(t *testing.T, actor *domain.Actor) (*hmocks.MockSpaceSvc, *hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	spaceSvc := hmocks.NewMockSpaceSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(spaceSvc, bookingSvc)

	r := ginext.New("test")
	api := r.Group("/api/v1")
	if actor != nil {
		api.Use(withActor(*actor))
	}
	{
		api.GET("/coworkingspaces", h.ListSpaces)
		api.GET("/coworkingspaces/:id", h.GetSpace)
		api.POST("/coworkingspaces", h.CreateSpace)
		api.PUT("/coworkingspaces/:id", h.UpdateSpace)
		api.DELETE("/coworkingspaces/:id", h.DeleteSpace)
		api.GET("/coworkingspaces/:id/bookings", h.ListBookings)
		api.POST("/coworkingspaces/:id/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.PUT("/bookings/:id", h.UpdateBooking)
		api.DELETE("/bookings/:id", h.DeleteBooking)
	}

	return spaceSvc, bookingSvc, r
}

type envelope struct {
	Success    bool              `json:"success"`
	Count      *int              `json:"count"`
	Total      *int              `json:"total"`
	Pagination *query.Pagination `json:"pagination"`
	Data       json.RawMessage   `json:"data"`
	Message    string            `json:"message"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

var (
	userActor  = domain.Actor{ID: uuid.New().String(), Role: domain.RoleUser}
	adminActor = domain.Actor{ID: uuid.New().String(), Role: domain.RoleAdmin}
)

// --- Coworkingspaces ---

func TestHandler_ListSpaces_Success(t *testing.T) {
	spaceSvc, _, r := setupRouter(t, nil)

	spaces := []*domain.Coworkingspace{
		{ID: "s1", Name: "The Hive", CreatedAt: time.Now()},
		{ID: "s2", Name: "Spaces Asoke", CreatedAt: time.Now()},
	}
	spaceSvc.EXPECT().List(mock.Anything, mock.Anything).Return(spaces, 2, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/coworkingspaces", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	require.NotNil(t, env.Count)
	require.NotNil(t, env.Total)
	assert.Equal(t, 2, *env.Count)
	assert.Equal(t, 2, *env.Total)

	var resp []dto.SpaceResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListSpaces_ForwardsParsedQuery(t *testing.T) {
	spaceSvc, _, r := setupRouter(t, nil)

	spaceSvc.EXPECT().List(mock.Anything, mock.MatchedBy(func(lq query.ListQuery) bool {
		return lq.Page == 2 && lq.Limit == 10 && len(lq.Predicates) == 1
	})).Return(nil, 25, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/coworkingspaces?province=Bangkok&page=2&limit=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Pagination)
	require.NotNil(t, env.Pagination.Next)
	require.NotNil(t, env.Pagination.Prev)
	assert.Equal(t, 3, env.Pagination.Next.Page)
	assert.Equal(t, 1, env.Pagination.Prev.Page)
}

func TestHandler_ListSpaces_SelectProjection(t *testing.T) {
	spaceSvc, _, r := setupRouter(t, nil)

	spaces := []*domain.Coworkingspace{
		{ID: "s1", Name: "The Hive", Province: "Bangkok", Tel: "02-123-4567"},
	}
	spaceSvc.EXPECT().List(mock.Anything, mock.Anything).Return(spaces, 1, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/coworkingspaces?select=name,province", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var resp []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "The Hive", resp[0]["name"])
	assert.Equal(t, "Bangkok", resp[0]["province"])
	assert.Equal(t, "s1", resp[0]["id"])
	assert.NotContains(t, resp[0], "tel")
}

func TestHandler_GetSpace_Success(t *testing.T) {
	spaceSvc, _, r := setupRouter(t, nil)

	spaceID := uuid.New().String()
	space := &domain.Coworkingspace{ID: spaceID, Name: "The Hive", CreatedAt: time.Now()}
	spaceSvc.EXPECT().Get(mock.Anything, spaceID).Return(space, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/coworkingspaces/"+spaceID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var resp dto.SpaceResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "The Hive", resp.Name)
}

func TestHandler_GetSpace_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/coworkingspaces/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSpace_NotFound(t *testing.T) {
	spaceSvc, _, r := setupRouter(t, nil)

	spaceID := uuid.New().String()
	spaceSvc.EXPECT().Get(mock.Anything, spaceID).Return(nil, domain.ErrSpaceNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/coworkingspaces/"+spaceID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
}

func TestHandler_CreateSpace_Success(t *testing.T) {
	spaceSvc, _, r := setupRouter(t, &adminActor)

	space := &domain.Coworkingspace{ID: uuid.New().String(), Name: "The Hive", CreatedAt: time.Now()}
	spaceSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(space, nil)

	body, _ := json.Marshal(dto.CreateSpaceRequest{
		Name:           "The Hive",
		OperatingHours: "09:00-21:00",
		Address:        "1 Sukhumvit Rd",
		Province:       "Bangkok",
		Postalcode:     "10110",
		Picture:        "https://example.com/hive.jpg",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/coworkingspaces", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
}

func TestHandler_CreateSpace_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t, &adminActor)

	body := []byte(`{"name":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/coworkingspaces", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateSpace_DuplicateName(t *testing.T) {
	spaceSvc, _, r := setupRouter(t, &adminActor)

	spaceSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateName)

	body, _ := json.Marshal(dto.CreateSpaceRequest{
		Name:           "The Hive",
		OperatingHours: "09:00-21:00",
		Address:        "1 Sukhumvit Rd",
		Province:       "Bangkok",
		Postalcode:     "10110",
		Picture:        "https://example.com/hive.jpg",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/coworkingspaces", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateSpace_Success(t *testing.T) {
	spaceSvc, _, r := setupRouter(t, &adminActor)

	spaceID := uuid.New().String()
	space := &domain.Coworkingspace{ID: spaceID, Name: "Renamed", CreatedAt: time.Now()}
	spaceSvc.EXPECT().Update(mock.Anything, spaceID, mock.Anything).Return(space, nil)

	body := []byte(`{"name":"Renamed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/coworkingspaces/"+spaceID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var resp dto.SpaceResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "Renamed", resp.Name)
}

func TestHandler_DeleteSpace_Success(t *testing.T) {
	spaceSvc, _, r := setupRouter(t, &adminActor)

	spaceID := uuid.New().String()
	spaceSvc.EXPECT().Delete(mock.Anything, spaceID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/coworkingspaces/"+spaceID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteSpace_CascadeIncomplete(t *testing.T) {
	spaceSvc, _, r := setupRouter(t, &adminActor)

	spaceID := uuid.New().String()
	spaceSvc.EXPECT().Delete(mock.Anything, spaceID).Return(domain.ErrCascadeIncomplete)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/coworkingspaces/"+spaceID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "internal server error", env.Message)
}

// --- Bookings ---

func TestHandler_ListBookings_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t, &userActor)

	bookings := []*domain.BookingDetails{
		{Booking: domain.Booking{ID: "b1", UserID: userActor.ID, NumOfRooms: 2}, SpaceName: "The Hive"},
	}
	bookingSvc.EXPECT().List(mock.Anything, userActor, "").Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)

	var resp []dto.BookingDetailsResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "The Hive", resp[0].Coworkingspace.Name)
}

func TestHandler_ListBookings_NestedRouteScopesToSpace(t *testing.T) {
	_, bookingSvc, r := setupRouter(t, &userActor)

	spaceID := uuid.New().String()
	bookingSvc.EXPECT().List(mock.Anything, userActor, spaceID).Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/coworkingspaces/"+spaceID+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListBookings_MissingIdentity(t *testing.T) {
	_, _, r := setupRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_GetBooking_Forbidden(t *testing.T) {
	_, bookingSvc, r := setupRouter(t, &userActor)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().Get(mock.Anything, bookingID, userActor).Return(nil, domain.ErrForbidden)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	_, bookingSvc, r := setupRouter(t, &userActor)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().Get(mock.Anything, bookingID, userActor).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t, &userActor)

	spaceID := uuid.New().String()
	booking := &domain.Booking{
		ID:               uuid.New().String(),
		BookingDate:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		NumOfRooms:       2,
		UserID:           userActor.ID,
		CoworkingspaceID: spaceID,
		CreatedAt:        time.Now(),
	}

	bookingSvc.EXPECT().Create(mock.Anything, spaceID, mock.Anything, userActor).Return(booking, nil)

	body := []byte(`{"bookingDate":"2026-09-15","numOfRooms":2}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/coworkingspaces/"+spaceID+"/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "2026-09-15", resp.BookingDate)
	assert.Equal(t, 2, resp.NumOfRooms)
	assert.Equal(t, userActor.ID, resp.User)
}

func TestHandler_CreateBooking_InvalidSpaceID(t *testing.T) {
	_, _, r := setupRouter(t, &userActor)

	body := []byte(`{"bookingDate":"2026-09-15"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/coworkingspaces/bad-id/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_InvalidDate(t *testing.T) {
	_, _, r := setupRouter(t, &userActor)

	body := []byte(`{"bookingDate":"15/09/2026"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/coworkingspaces/"+uuid.New().String()+"/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_RoomLimit(t *testing.T) {
	_, bookingSvc, r := setupRouter(t, &userActor)

	spaceID := uuid.New().String()
	bookingSvc.EXPECT().Create(mock.Anything, spaceID, mock.Anything, userActor).Return(nil, domain.ErrRoomLimit)

	body := []byte(`{"bookingDate":"2026-09-15","numOfRooms":4}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/coworkingspaces/"+spaceID+"/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	assert.Contains(t, env.Message, "1-3 rooms")
}

func TestHandler_UpdateBooking_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t, &userActor)

	bookingID := uuid.New().String()
	booking := &domain.Booking{
		ID:          bookingID,
		BookingDate: time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		NumOfRooms:  3,
		UserID:      userActor.ID,
	}
	bookingSvc.EXPECT().Update(mock.Anything, bookingID, mock.Anything, userActor).Return(booking, nil)

	body := []byte(`{"numOfRooms":3}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/bookings/"+bookingID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, 3, resp.NumOfRooms)
}

func TestHandler_DeleteBooking_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t, &userActor)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().Delete(mock.Anything, bookingID, userActor).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteBooking_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t, &userActor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/bad-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
