package service

import (
	"context"
	"testing"

	"github.com/deppfellow/lightbnb/internal/repository"
)

// mockPropertyStore records search calls and serves canned listings.
type mockPropertyStore struct {
	searchCalls  int
	lastFilter   repository.PropertyFilter
	lastLimit    int
	listings     []repository.PropertyListing
	createdParam repository.CreatePropertyParams
	nextID       int64
}

func (m *mockPropertyStore) Search(_ context.Context, filter repository.PropertyFilter, limit int) ([]repository.PropertyListing, error) {
	m.searchCalls++
	m.lastFilter = filter
	m.lastLimit = limit
	return m.listings, nil
}

func (m *mockPropertyStore) Create(_ context.Context, params repository.CreatePropertyParams) (*repository.Property, error) {
	m.createdParam = params
	m.nextID++
	property := repository.Property{
		ID:                m.nextID,
		OwnerID:           params.OwnerID,
		Title:             params.Title,
		Description:       params.Description,
		ThumbnailPhotoURL: params.ThumbnailPhotoURL,
		CoverPhotoURL:     params.CoverPhotoURL,
		CostPerNight:      params.CostPerNight,
		ParkingSpaces:     params.ParkingSpaces,
		NumberOfBathrooms: params.NumberOfBathrooms,
		NumberOfBedrooms:  params.NumberOfBedrooms,
		Country:           params.Country,
		Street:            params.Street,
		City:              params.City,
		Province:          params.Province,
		PostCode:          params.PostCode,
	}
	return &property, nil
}

func TestPropertiesService_Search_PassesFilterThrough(t *testing.T) {
	owner := int64(9)
	store := &mockPropertyStore{listings: []repository.PropertyListing{
		{Property: repository.Property{ID: 1, City: "Vancouver"}, AverageRating: 4.2},
	}}
	svc := NewPropertiesService(store, nil, nil)

	filter := repository.PropertyFilter{City: "Vancouver", OwnerID: &owner}
	listings, err := svc.Search(context.Background(), filter, 5)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(listings) != 1 || listings[0].City != "Vancouver" {
		t.Errorf("unexpected listings: %+v", listings)
	}
	if store.lastFilter.City != "Vancouver" || store.lastFilter.OwnerID == nil || *store.lastFilter.OwnerID != 9 {
		t.Errorf("filter not passed through, got %+v", store.lastFilter)
	}
	if store.lastLimit != 5 {
		t.Errorf("expected limit 5, got %d", store.lastLimit)
	}
}

func TestPropertiesService_Search_DefaultLimit(t *testing.T) {
	store := &mockPropertyStore{}
	svc := NewPropertiesService(store, nil, nil)

	if _, err := svc.Search(context.Background(), repository.PropertyFilter{}, 0); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if store.lastLimit != repository.DefaultSearchLimit {
		t.Errorf("expected default limit %d, got %d", repository.DefaultSearchLimit, store.lastLimit)
	}
}

func TestPropertiesService_Search_NoCacheHitsStoreEachTime(t *testing.T) {
	store := &mockPropertyStore{}
	svc := NewPropertiesService(store, nil, nil)

	for i := 0; i < 3; i++ {
		if _, err := svc.Search(context.Background(), repository.PropertyFilter{}, 10); err != nil {
			t.Fatalf("Search returned error: %v", err)
		}
	}
	if store.searchCalls != 3 {
		t.Errorf("without a cache every search must reach the store, got %d calls", store.searchCalls)
	}
}

func TestPropertiesService_Create_ConvertsCostToMinorUnits(t *testing.T) {
	store := &mockPropertyStore{}
	svc := NewPropertiesService(store, nil, nil)

	property, err := svc.Create(context.Background(), CreatePropertyInput{
		OwnerID:           3,
		Title:             "Seaside cottage",
		Description:       "Two bedrooms on the bluff.",
		CostPerNight:      120.5,
		ParkingSpaces:     1,
		NumberOfBathrooms: 1,
		NumberOfBedrooms:  2,
		Country:           "Canada",
		Street:            "1 Shore Lane",
		City:              "Tofino",
		Province:          "BC",
		PostCode:          "V0R 2Z0",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if property.CostPerNight != 12050 {
		t.Errorf("nightly cost 120.5 should persist as 12050 minor units, got %d", property.CostPerNight)
	}
	if store.createdParam.Title != "Seaside cottage" || store.createdParam.OwnerID != 3 {
		t.Errorf("listing fields not passed through: %+v", store.createdParam)
	}
}

func TestSearchCacheKey_VariesWithLimit(t *testing.T) {
	filter := repository.PropertyFilter{City: "Calgary"}

	k1, err := searchCacheKey(filter, 10)
	if err != nil {
		t.Fatalf("searchCacheKey: %v", err)
	}
	k2, err := searchCacheKey(filter, 20)
	if err != nil {
		t.Fatalf("searchCacheKey: %v", err)
	}
	if k1 == k2 {
		t.Error("cache keys for different limits must not collide")
	}

	k3, err := searchCacheKey(filter, 10)
	if err != nil {
		t.Fatalf("searchCacheKey: %v", err)
	}
	if k1 != k3 {
		t.Error("cache key must be stable for identical input")
	}
}
