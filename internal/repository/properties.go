package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Property is a rental listing owned by exactly one user. CostPerNight is
// stored in integer minor units (cents).
type Property struct {
	ID                 int64  `db:"id" json:"id"`
	OwnerID            int64  `db:"owner_id" json:"owner_id"`
	Title              string `db:"title" json:"title"`
	Description        string `db:"description" json:"description"`
	ThumbnailPhotoURL  string `db:"thumbnail_photo_url" json:"thumbnail_photo_url"`
	CoverPhotoURL      string `db:"cover_photo_url" json:"cover_photo_url"`
	CostPerNight       int64  `db:"cost_per_night" json:"cost_per_night"`
	ParkingSpaces      int    `db:"parking_spaces" json:"parking_spaces"`
	NumberOfBathrooms  int    `db:"number_of_bathrooms" json:"number_of_bathrooms"`
	NumberOfBedrooms   int    `db:"number_of_bedrooms" json:"number_of_bedrooms"`
	Country            string `db:"country" json:"country"`
	Street             string `db:"street" json:"street"`
	City               string `db:"city" json:"city"`
	Province           string `db:"province" json:"province"`
	PostCode           string `db:"post_code" json:"post_code"`
}

// PropertyListing is a search result row: the property joined with its
// average review rating.
type PropertyListing struct {
	Property
	AverageRating float64 `db:"average_rating" json:"average_rating"`
}

// CreatePropertyParams carries the 14 caller-supplied fields of a new
// listing. CostPerNight is already in minor units. The named fields exist
// so callers can never get the column order wrong; ordering happens once,
// at the bind site in Create.
type CreatePropertyParams struct {
	OwnerID           int64
	Title             string
	Description       string
	ThumbnailPhotoURL string
	CoverPhotoURL     string
	CostPerNight      int64
	ParkingSpaces     int
	NumberOfBathrooms int
	NumberOfBedrooms  int
	Country           string
	Street            string
	City              string
	Province          string
	PostCode          string
}

// PropertiesRepository performs listing searches and inserts against the
// properties table.
type PropertiesRepository struct {
	pool *pgxpool.Pool
}

func NewPropertiesRepository(pool *pgxpool.Pool) *PropertiesRepository {
	return &PropertiesRepository{pool: pool}
}

// Search returns properties matching every present filter criterion,
// joined with their average review rating, ordered by ascending nightly
// cost and capped at limit rows (default 10).
func (r *PropertiesRepository) Search(ctx context.Context, filter PropertyFilter, limit int) ([]PropertyListing, error) {
	query, args := buildPropertySearch(filter, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching properties: %w", err)
	}

	listings, err := pgx.CollectRows(rows, pgx.RowToStructByName[PropertyListing])
	if err != nil {
		return nil, fmt.Errorf("collecting property listings: %w", err)
	}

	return listings, nil
}

// Create inserts a full property record and returns the persisted row
// including its assigned id. The 14 values bind positionally in schema
// column order.
func (r *PropertiesRepository) Create(ctx context.Context, params CreatePropertyParams) (*Property, error) {
	rows, err := r.pool.Query(ctx, `INSERT INTO properties (
	owner_id, title, description, thumbnail_photo_url, cover_photo_url,
	cost_per_night, parking_spaces, number_of_bathrooms, number_of_bedrooms,
	country, street, city, province, post_code
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING *`,
		params.OwnerID,
		params.Title,
		params.Description,
		params.ThumbnailPhotoURL,
		params.CoverPhotoURL,
		params.CostPerNight,
		params.ParkingSpaces,
		params.NumberOfBathrooms,
		params.NumberOfBedrooms,
		params.Country,
		params.Street,
		params.City,
		params.Province,
		params.PostCode,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting property: %w", err)
	}

	property, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Property])
	if err != nil {
		return nil, fmt.Errorf("collecting inserted property: %w", err)
	}

	return &property, nil
}
