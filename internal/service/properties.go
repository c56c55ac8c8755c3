package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/deppfellow/lightbnb/internal/repository"
)

// searchCacheTTL keeps cached search pages short-lived: new listings and
// reviews should show up within seconds, not minutes.
const searchCacheTTL = 30 * time.Second

// PropertyStore is the subset of the properties repository the service needs.
type PropertyStore interface {
	Search(ctx context.Context, filter repository.PropertyFilter, limit int) ([]repository.PropertyListing, error)
	Create(ctx context.Context, params repository.CreatePropertyParams) (*repository.Property, error)
}

// PropertiesService handles listing search and creation. Search results are
// cached in Redis when a client is available; the cache is a best-effort
// optimization and every failure path falls through to the database.
type PropertiesService struct {
	store PropertyStore
	cache *redis.Client
	log   *zerolog.Logger
}

func NewPropertiesService(store PropertyStore, cache *redis.Client, log *zerolog.Logger) *PropertiesService {
	return &PropertiesService{store: store, cache: cache, log: log}
}

// searchCacheKey derives a stable key from the full search input. The limit
// is part of the key so differently-sized pages never alias.
func searchCacheKey(filter repository.PropertyFilter, limit int) (string, error) {
	payload, err := json.Marshal(struct {
		Filter repository.PropertyFilter
		Limit  int
	}{filter, limit})
	if err != nil {
		return "", errors.Wrap(err, "encoding search cache key")
	}

	sum := sha256.Sum256(payload)
	return "lightbnb:properties:search:" + hex.EncodeToString(sum[:]), nil
}

// Search returns listings matching the filter, consulting the Redis cache
// first. A miss, a stale decode, or an unavailable cache all fall through
// to the store.
func (s *PropertiesService) Search(ctx context.Context, filter repository.PropertyFilter, limit int) ([]repository.PropertyListing, error) {
	if limit <= 0 {
		limit = repository.DefaultSearchLimit
	}

	key, keyErr := searchCacheKey(filter, limit)

	if s.cache != nil && keyErr == nil {
		data, err := s.cache.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var cached []repository.PropertyListing
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
			// Stale or corrupt entry; treat as a miss.
		case !errors.Is(err, redis.Nil):
			if s.log != nil {
				s.log.Debug().Err(err).Msg("property search cache read failed")
			}
		}
	}

	listings, err := s.store.Search(ctx, filter, limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && keyErr == nil {
		if data, err := json.Marshal(listings); err == nil {
			if err := s.cache.Set(ctx, key, data, searchCacheTTL).Err(); err != nil && s.log != nil {
				s.log.Debug().Err(err).Msg("property search cache write failed")
			}
		}
	}

	return listings, nil
}

// CreatePropertyInput carries a new listing as submitted by the owner.
// CostPerNight is in major units (dollars); the service converts it to the
// minor units the store persists.
type CreatePropertyInput struct {
	OwnerID           int64
	Title             string
	Description       string
	ThumbnailPhotoURL string
	CoverPhotoURL     string
	CostPerNight      float64
	ParkingSpaces     int
	NumberOfBathrooms int
	NumberOfBedrooms  int
	Country           string
	Street            string
	City              string
	Province          string
	PostCode          string
}

// Create inserts a new listing, converting the nightly cost to minor units
// on the way in.
func (s *PropertiesService) Create(ctx context.Context, input CreatePropertyInput) (*repository.Property, error) {
	property, err := s.store.Create(ctx, repository.CreatePropertyParams{
		OwnerID:           input.OwnerID,
		Title:             input.Title,
		Description:       input.Description,
		ThumbnailPhotoURL: input.ThumbnailPhotoURL,
		CoverPhotoURL:     input.CoverPhotoURL,
		CostPerNight:      repository.ToMinorUnits(input.CostPerNight),
		ParkingSpaces:     input.ParkingSpaces,
		NumberOfBathrooms: input.NumberOfBathrooms,
		NumberOfBedrooms:  input.NumberOfBedrooms,
		Country:           input.Country,
		Street:            input.Street,
		City:              input.City,
		Province:          input.Province,
		PostCode:          input.PostCode,
	})
	if err != nil {
		return nil, err
	}

	if s.log != nil {
		s.log.Info().
			Int64("property_id", property.ID).
			Int64("owner_id", property.OwnerID).
			Msg("property created")
	}

	return property, nil
}
