package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wash-admin/internal/model"
)

func TestCatalogSeededOfferings(t *testing.T) {
	svc := NewCatalogService()

	offerings := svc.ListOfferings()
	require.Len(t, offerings, 4)
	assert.Equal(t, 3, svc.ActiveOfferingCount())
}

func TestCatalogCreateOffering(t *testing.T) {
	svc := NewCatalogService()

	offering, err := svc.CreateOffering(model.UpsertServiceRequest{
		Name:        "Headlight Restoration",
		Category:    "detailing",
		Price:       59.00,
		DurationMin: 60,
	})
	require.NoError(t, err)
	assert.True(t, offering.Active, "offerings default to active")

	got, err := svc.Get(offering.ID)
	require.NoError(t, err)
	assert.Equal(t, "Headlight Restoration", got.Name)
}

func TestCatalogCreateDuplicateName(t *testing.T) {
	svc := NewCatalogService()

	_, err := svc.CreateOffering(model.UpsertServiceRequest{
		Name:        "exterior wash",
		Category:    "basic",
		Price:       10,
		DurationMin: 20,
	})
	assert.Error(t, err, "name match is case insensitive")
}

func TestCatalogValidation(t *testing.T) {
	svc := NewCatalogService()

	tests := []struct {
		name string
		req  model.UpsertServiceRequest
	}{
		{"empty name", model.UpsertServiceRequest{Category: "basic", Price: 10, DurationMin: 20}},
		{"bad category", model.UpsertServiceRequest{Name: "x", Category: "luxury", Price: 10, DurationMin: 20}},
		{"zero price", model.UpsertServiceRequest{Name: "x", Category: "basic", DurationMin: 20}},
		{"zero duration", model.UpsertServiceRequest{Name: "x", Category: "basic", Price: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateOffering(tt.req)
			assert.Error(t, err)
		})
	}
}

func TestCatalogUpdateOffering(t *testing.T) {
	svc := NewCatalogService()

	offering, err := svc.FindByName("Exterior Wash")
	require.NoError(t, err)

	inactive := false
	updated, err := svc.UpdateOffering(offering.ID, model.UpsertServiceRequest{
		Name:        "Exterior Wash",
		Category:    "basic",
		Price:       29.99,
		DurationMin: 35,
		Active:      &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, 29.99, updated.Price)
	assert.False(t, updated.Active)
	assert.Equal(t, 2, svc.ActiveOfferingCount())
}

func TestCatalogDeleteOffering(t *testing.T) {
	svc := NewCatalogService()

	offering, err := svc.FindByName("Engine Bay Clean")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOffering(offering.ID))
	_, err = svc.Get(offering.ID)
	assert.Error(t, err)

	assert.Error(t, svc.DeleteOffering(offering.ID))
}

func TestCatalogMedia(t *testing.T) {
	svc := NewCatalogService()

	items := svc.ListMedia()
	require.Len(t, items, 3)
	assert.True(t, items[0].UploadedAt.After(items[1].UploadedAt), "newest first")

	require.NoError(t, svc.DeleteMedia(items[0].ID))
	assert.Len(t, svc.ListMedia(), 2)

	assert.Error(t, svc.DeleteMedia("missing"))
}
