package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kcoproperties/leasing-api/internal/domain"
)

type fakePropertyStore struct {
	available          []domain.Property
	listAvailableCalls int
}

func (f *fakePropertyStore) Create(_ context.Context, req *domain.PropertyReq) (*domain.Property, error) {
	return &domain.Property{ID: 1, Name: req.Name, Address: req.Address}, nil
}

func (f *fakePropertyStore) GetByID(_ context.Context, _ int64) (*domain.Property, error) {
	return nil, nil
}

func (f *fakePropertyStore) List(_ context.Context, _, _ int) ([]domain.Property, error) {
	return nil, nil
}

func (f *fakePropertyStore) ListAvailable(_ context.Context) ([]domain.Property, error) {
	f.listAvailableCalls++
	return f.available, nil
}

func (f *fakePropertyStore) Update(_ context.Context, id int64, _ *domain.PropertyPatch) (*domain.Property, error) {
	return &domain.Property{ID: id}, nil
}

func (f *fakePropertyStore) Delete(_ context.Context, _ int64) (bool, error) {
	return true, nil
}

type fakePropertyCache struct {
	cached      []domain.Property
	getErr      error
	sets        int
	invalidates int
}

func (f *fakePropertyCache) GetAvailableProperties(_ context.Context) ([]domain.Property, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.cached, nil
}

func (f *fakePropertyCache) SetAvailableProperties(_ context.Context, props []domain.Property) error {
	f.cached = props
	f.sets++
	return nil
}

func (f *fakePropertyCache) InvalidateProperties(_ context.Context) error {
	f.cached = nil
	f.invalidates++
	return nil
}

func TestListAvailablePropertiesCacheHit(t *testing.T) {
	store := &fakePropertyStore{}
	cache := &fakePropertyCache{cached: []domain.Property{{ID: 5, Name: "Maple Court"}}}
	svc := NewPropertyService(store, cache)

	props, err := svc.ListAvailableProperties(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 1 || props[0].ID != 5 {
		t.Fatalf("props = %+v", props)
	}
	if store.listAvailableCalls != 0 {
		t.Error("cache hit must not reach the database")
	}
}

func TestListAvailablePropertiesCacheMiss(t *testing.T) {
	store := &fakePropertyStore{available: []domain.Property{{ID: 7}}}
	cache := &fakePropertyCache{}
	svc := NewPropertyService(store, cache)

	props, err := svc.ListAvailableProperties(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 1 || props[0].ID != 7 {
		t.Fatalf("props = %+v", props)
	}
	if store.listAvailableCalls != 1 {
		t.Errorf("listAvailableCalls = %d, want 1", store.listAvailableCalls)
	}
	if cache.sets != 1 {
		t.Errorf("cache sets = %d, want 1", cache.sets)
	}
}

func TestListAvailablePropertiesCacheFailureFallsThrough(t *testing.T) {
	store := &fakePropertyStore{available: []domain.Property{{ID: 3}}}
	cache := &fakePropertyCache{getErr: errors.New("redis down")}
	svc := NewPropertyService(store, cache)

	props, err := svc.ListAvailableProperties(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 1 {
		t.Fatalf("props = %+v", props)
	}
	if store.listAvailableCalls != 1 {
		t.Error("cache failure must fall through to the database")
	}
}

func TestListAvailablePropertiesWithoutCache(t *testing.T) {
	store := &fakePropertyStore{available: []domain.Property{{ID: 2}}}
	svc := NewPropertyService(store, nil)

	props, err := svc.ListAvailableProperties(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 1 {
		t.Fatalf("props = %+v", props)
	}
}

func TestPropertyMutationsInvalidateCache(t *testing.T) {
	store := &fakePropertyStore{}
	cache := &fakePropertyCache{}
	svc := NewPropertyService(store, cache)
	ctx := context.Background()

	if _, err := svc.CreateProperty(ctx, &domain.PropertyReq{Name: "Maple Court", Address: "456 Maple Ct"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.UpdateProperty(ctx, 1, &domain.PropertyPatch{}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.DeleteProperty(ctx, 1); err != nil {
		t.Fatal(err)
	}

	if cache.invalidates != 3 {
		t.Errorf("invalidates = %d, want 3", cache.invalidates)
	}
}

func TestCreatePropertyValidation(t *testing.T) {
	svc := NewPropertyService(&fakePropertyStore{}, nil)

	cases := []struct {
		name string
		req  domain.PropertyReq
	}{
		{"missing name", domain.PropertyReq{Address: "456 Maple Ct"}},
		{"missing address", domain.PropertyReq{Name: "Maple Court"}},
		{"negative rent", domain.PropertyReq{Name: "Maple Court", Address: "456 Maple Ct", RentAmount: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateProperty(context.Background(), &tc.req); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
