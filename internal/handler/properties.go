package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/deppfellow/lightbnb/internal/validation"
)

// SearchPropertiesRequest carries the optional search criteria as query
// parameters. Absent parameters mean "no constraint"; prices are in major
// units (dollars).
type SearchPropertiesRequest struct {
	City             string   `query:"city"`
	OwnerID          *int64   `query:"owner_id" validate:"omitempty,gt=0"`
	MinPricePerNight *float64 `query:"minimum_price_per_night" validate:"omitempty,gte=0"`
	MaxPricePerNight *float64 `query:"maximum_price_per_night" validate:"omitempty,gte=0"`
	MinRating        *float64 `query:"minimum_rating" validate:"omitempty,gte=1,lte=5"`
	Limit            int      `query:"limit" validate:"omitempty,gte=1,lte=100"`
}

func (r *SearchPropertiesRequest) Validate() error {
	return validation.Struct(r)
}

// CreatePropertyRequest is the full listing submission: all 14 fields are
// required. CostPerNight is in major units.
type CreatePropertyRequest struct {
	OwnerID           int64   `json:"owner_id" validate:"required,gt=0"`
	Title             string  `json:"title" validate:"required"`
	Description       string  `json:"description" validate:"required"`
	ThumbnailPhotoURL string  `json:"thumbnail_photo_url" validate:"required,url"`
	CoverPhotoURL     string  `json:"cover_photo_url" validate:"required,url"`
	CostPerNight      float64 `json:"cost_per_night" validate:"required,gt=0"`
	ParkingSpaces     int     `json:"parking_spaces" validate:"gte=0"`
	NumberOfBathrooms int     `json:"number_of_bathrooms" validate:"required,gte=1"`
	NumberOfBedrooms  int     `json:"number_of_bedrooms" validate:"required,gte=1"`
	Country           string  `json:"country" validate:"required"`
	Street            string  `json:"street" validate:"required"`
	City              string  `json:"city" validate:"required"`
	Province          string  `json:"province" validate:"required"`
	PostCode          string  `json:"post_code" validate:"required"`
}

func (r *CreatePropertyRequest) Validate() error {
	return validation.Struct(r)
}

// PropertiesHandler serves listing search and creation.
type PropertiesHandler struct {
	Handler
	properties *service.PropertiesService
}

func NewPropertiesHandler(s *server.Server, properties *service.PropertiesService) *PropertiesHandler {
	return &PropertiesHandler{
		Handler:    NewHandler(s),
		properties: properties,
	}
}

// Search returns listings matching the query criteria, each with its
// average review rating.
func (h *PropertiesHandler) Search(c echo.Context, req *SearchPropertiesRequest) ([]repository.PropertyListing, error) {
	filter := repository.PropertyFilter{
		City:             req.City,
		OwnerID:          req.OwnerID,
		MinPricePerNight: req.MinPricePerNight,
		MaxPricePerNight: req.MaxPricePerNight,
		MinRating:        req.MinRating,
	}

	return h.properties.Search(c.Request().Context(), filter, req.Limit)
}

// Create persists a new listing and returns it with its assigned id.
func (h *PropertiesHandler) Create(c echo.Context, req *CreatePropertyRequest) (*repository.Property, error) {
	return h.properties.Create(c.Request().Context(), service.CreatePropertyInput{
		OwnerID:           req.OwnerID,
		Title:             req.Title,
		Description:       req.Description,
		ThumbnailPhotoURL: req.ThumbnailPhotoURL,
		CoverPhotoURL:     req.CoverPhotoURL,
		CostPerNight:      req.CostPerNight,
		ParkingSpaces:     req.ParkingSpaces,
		NumberOfBathrooms: req.NumberOfBathrooms,
		NumberOfBedrooms:  req.NumberOfBedrooms,
		Country:           req.Country,
		Street:            req.Street,
		City:              req.City,
		Province:          req.Province,
		PostCode:          req.PostCode,
	})
}
