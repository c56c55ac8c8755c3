package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/service"
)

// stubUserStore is a minimal in-memory service.UserStore.
type stubUserStore struct {
	users  map[string]*repository.User
	nextID int64
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: make(map[string]*repository.User), nextID: 1}
}

func (s *stubUserStore) GetByEmail(_ context.Context, email string) (*repository.User, error) {
	user, ok := s.users[repository.NormalizeEmail(email)]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (s *stubUserStore) GetByID(_ context.Context, id int64) (*repository.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (s *stubUserStore) Create(_ context.Context, params repository.CreateUserParams) (*repository.User, error) {
	user := &repository.User{
		ID:           s.nextID,
		Name:         params.Name,
		Email:        repository.NormalizeEmail(params.Email),
		PasswordHash: params.PasswordHash,
	}
	s.nextID++
	s.users[user.Email] = user
	return user, nil
}

// stubPropertyStore records the filter it was searched with.
type stubPropertyStore struct {
	lastFilter repository.PropertyFilter
	lastLimit  int
	listings   []repository.PropertyListing
}

func (s *stubPropertyStore) Search(_ context.Context, filter repository.PropertyFilter, limit int) ([]repository.PropertyListing, error) {
	s.lastFilter = filter
	s.lastLimit = limit
	return s.listings, nil
}

func (s *stubPropertyStore) Create(_ context.Context, params repository.CreatePropertyParams) (*repository.Property, error) {
	return &repository.Property{ID: 1, OwnerID: params.OwnerID, Title: params.Title, CostPerNight: params.CostPerNight}, nil
}

type stubReservationStore struct{}

func (stubReservationStore) ListPastForGuest(context.Context, int64, time.Time, int) ([]repository.Reservation, error) {
	return nil, nil
}

// newTestEcho wires an Echo instance with the global error handler so
// handler errors render the real response schema.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(nil).GlobalErrorHandler
	return e
}

func TestUsersHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	h := &UsersHandler{users: service.NewUsersService(newStubUserStore(), nil)}
	e.POST("/api/users", Handle(h.Handler, h.Create, http.StatusCreated))

	body := `{"name":"Eva Stanley","email":"Eva@Example.com","password":"sevenletters"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if got["email"] != "eva@example.com" {
		t.Errorf("expected lowercased email, got %v", got["email"])
	}
	if _, leaked := got["password"]; leaked {
		t.Error("password hash must never appear in responses")
	}
}

func TestUsersHandler_Create_ValidationFailure(t *testing.T) {
	e := newTestEcho()
	h := &UsersHandler{users: service.NewUsersService(newStubUserStore(), nil)}
	e.POST("/api/users", Handle(h.Handler, h.Create, http.StatusCreated))

	body := `{"name":"Eva Stanley","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "errors") {
		t.Errorf("expected field-level errors in response: %s", rec.Body.String())
	}
}

func TestUsersHandler_GetByID_NotFound(t *testing.T) {
	e := newTestEcho()
	h := &UsersHandler{users: service.NewUsersService(newStubUserStore(), nil)}
	e.GET("/api/users/:id", Handle(h.Handler, h.GetByID, http.StatusOK))

	req := httptest.NewRequest(http.MethodGet, "/api/users/42", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPropertiesHandler_Search_BindsQueryParams(t *testing.T) {
	e := newTestEcho()
	store := &stubPropertyStore{}
	h := &PropertiesHandler{properties: service.NewPropertiesService(store, nil, nil)}
	e.GET("/api/properties", Handle(h.Handler, h.Search, http.StatusOK))

	req := httptest.NewRequest(http.MethodGet,
		"/api/properties?city=Vancouver&minimum_price_per_night=50&maximum_price_per_night=200&minimum_rating=4&limit=5", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if store.lastFilter.City != "Vancouver" {
		t.Errorf("city not bound, got %+v", store.lastFilter)
	}
	if store.lastFilter.MinPricePerNight == nil || *store.lastFilter.MinPricePerNight != 50 {
		t.Errorf("minimum price not bound, got %+v", store.lastFilter)
	}
	if store.lastFilter.MinRating == nil || *store.lastFilter.MinRating != 4 {
		t.Errorf("minimum rating not bound, got %+v", store.lastFilter)
	}
	if store.lastLimit != 5 {
		t.Errorf("expected limit 5, got %d", store.lastLimit)
	}
}

func TestPropertiesHandler_Search_RejectsOutOfRangeRating(t *testing.T) {
	e := newTestEcho()
	h := &PropertiesHandler{properties: service.NewPropertiesService(&stubPropertyStore{}, nil, nil)}
	e.GET("/api/properties", Handle(h.Handler, h.Search, http.StatusOK))

	req := httptest.NewRequest(http.MethodGet, "/api/properties?minimum_rating=9", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestReservationsHandler_ListPast_EmptyHistoryIsAList(t *testing.T) {
	e := newTestEcho()
	h := &ReservationsHandler{reservations: service.NewReservationsService(stubReservationStore{}, nil)}
	e.GET("/api/reservations/:guest_id", Handle(h.Handler, h.ListPast, http.StatusOK))

	req := httptest.NewRequest(http.MethodGet, "/api/reservations/7", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON array, got %s", body)
	}
}
