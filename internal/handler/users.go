package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/deppfellow/lightbnb/internal/validation"
)

// CreateUserRequest is the sign-up payload. The password arrives in
// plaintext over TLS and is hashed by the service before storage.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *CreateUserRequest) Validate() error {
	return validation.Struct(r)
}

// GetUserRequest identifies a user by path parameter.
type GetUserRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *GetUserRequest) Validate() error {
	return validation.Struct(r)
}

// UsersHandler serves account registration and lookup.
type UsersHandler struct {
	Handler
	users *service.UsersService
}

func NewUsersHandler(s *server.Server, users *service.UsersService) *UsersHandler {
	return &UsersHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// Create registers a new account. The response carries the persisted user;
// the password hash is excluded by its json tag.
func (h *UsersHandler) Create(c echo.Context, req *CreateUserRequest) (*repository.User, error) {
	return h.users.Register(c.Request().Context(), service.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
}

// GetByID returns the user with the given id, or 404 when absent.
func (h *UsersHandler) GetByID(c echo.Context, req *GetUserRequest) (*repository.User, error) {
	user, err := h.users.GetByID(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFoundError("User not found", false, nil)
	}
	return user, nil
}
