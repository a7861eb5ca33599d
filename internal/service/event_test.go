package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atln0/GigBooker/internal/domain"
	"github.com/atln0/GigBooker/internal/repository"
)

func newEventService(t *testing.T) (*EventService, *repository.EventRepository) {
	t.Helper()
	repo := repository.NewEventRepo()
	return NewEventService(repo), repo
}

func TestEventService_CreateEvent(t *testing.T) {
	svc, _ := newEventService(t)

	event, err := svc.CreateEvent(context.Background(), CreateEventInput{
		Name:        "Halloween Rave",
		Date:        "2026-10-31",
		Location:    "Auckland Warehouse",
		TotalBudget: 10000,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Halloween Rave", event.Name)
	assert.InDelta(t, 10000.0, event.TotalBudget, 0.001)
	assert.Empty(t, event.Assets)
	assert.Zero(t, event.TotalSpend())
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	svc, _ := newEventService(t)

	_, err := svc.CreateEvent(context.Background(), CreateEventInput{Name: "", TotalBudget: 100})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateEvent(context.Background(), CreateEventInput{Name: "X", TotalBudget: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_BudgetLedger(t *testing.T) {
	svc, repo := newEventService(t)

	event, err := svc.CreateEvent(context.Background(), CreateEventInput{
		Name:        "Club Night",
		TotalBudget: 10000,
	})
	require.NoError(t, err)

	_, err = svc.AddCatalogAsset(context.Background(), event.ID, domain.AssetTemplate{
		Name:     "Venue Hire (Small Club)",
		Type:     domain.AssetVenue,
		Cost:     2000,
		Quantity: 1,
	})
	require.NoError(t, err)

	// an artist line lands through booking submission; simulate the snapshot
	updated, err := repo.Update(context.Background(), event.ID, func(e *domain.Event) error {
		e.Assets = append(e.Assets, domain.Asset{
			ID:        "a-artist",
			Name:      "DJ Booking: DJ Nexus",
			Type:      domain.AssetArtist,
			Cost:      650,
			Quantity:  1,
			BookingID: "b1",
		})
		return nil
	})
	require.NoError(t, err)

	assert.InDelta(t, 2650.0, updated.TotalSpend(), 0.001)
	assert.InDelta(t, 7350.0, updated.RemainingBudget(), 0.001)
	assert.InDelta(t, 26.5, updated.ProgressPercent(), 0.001)
}

func TestEventService_AddCatalogAsset_QuantityMultiplies(t *testing.T) {
	svc, _ := newEventService(t)

	event, err := svc.CreateEvent(context.Background(), CreateEventInput{Name: "Festival", TotalBudget: 5000})
	require.NoError(t, err)

	updated, err := svc.AddCatalogAsset(context.Background(), event.ID, domain.AssetTemplate{
		Name:     "Security Guard (per head)",
		Type:     domain.AssetStaff,
		Cost:     200,
		Quantity: 4,
	})

	require.NoError(t, err)
	assert.InDelta(t, 800.0, updated.TotalSpend(), 0.001)
}

func TestEventService_AddCatalogAsset_RejectsArtistType(t *testing.T) {
	svc, _ := newEventService(t)

	event, err := svc.CreateEvent(context.Background(), CreateEventInput{Name: "X", TotalBudget: 100})
	require.NoError(t, err)

	_, err = svc.AddCatalogAsset(context.Background(), event.ID, domain.AssetTemplate{
		Name:     "Sneaky Artist",
		Type:     domain.AssetArtist,
		Cost:     100,
		Quantity: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_AddCatalogAsset_UnknownEvent(t *testing.T) {
	svc, _ := newEventService(t)

	_, err := svc.AddCatalogAsset(context.Background(), "missing", domain.AssetTemplate{
		Name:     "Smoke Machine",
		Type:     domain.AssetEquipment,
		Cost:     50,
		Quantity: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_RemoveAsset(t *testing.T) {
	svc, _ := newEventService(t)

	event, err := svc.CreateEvent(context.Background(), CreateEventInput{Name: "X", TotalBudget: 3000})
	require.NoError(t, err)

	withAsset, err := svc.AddCatalogAsset(context.Background(), event.ID, domain.AssetTemplate{
		Name:     "Lighting Rig (Basic)",
		Type:     domain.AssetEquipment,
		Cost:     600,
		Quantity: 1,
	})
	require.NoError(t, err)
	require.Len(t, withAsset.Assets, 1)

	updated, err := svc.RemoveAsset(context.Background(), event.ID, withAsset.Assets[0].ID)

	require.NoError(t, err)
	assert.Empty(t, updated.Assets)
	assert.InDelta(t, 3000.0, updated.RemainingBudget(), 0.001)
}

func TestEventService_RemoveAsset_MissingIDIsNoop(t *testing.T) {
	svc, _ := newEventService(t)

	event, err := svc.CreateEvent(context.Background(), CreateEventInput{Name: "X", TotalBudget: 100})
	require.NoError(t, err)

	updated, err := svc.RemoveAsset(context.Background(), event.ID, "does-not-exist")

	require.NoError(t, err)
	assert.Empty(t, updated.Assets)
}

func TestEventService_OverrunIsAllowed(t *testing.T) {
	svc, _ := newEventService(t)

	event, err := svc.CreateEvent(context.Background(), CreateEventInput{Name: "Tiny", TotalBudget: 1000})
	require.NoError(t, err)

	updated, err := svc.AddCatalogAsset(context.Background(), event.ID, domain.AssetTemplate{
		Name:     "Venue Hire (Warehouse)",
		Type:     domain.AssetVenue,
		Cost:     5000,
		Quantity: 1,
	})

	require.NoError(t, err)
	assert.InDelta(t, -4000.0, updated.RemainingBudget(), 0.001)
	assert.InDelta(t, 100.0, updated.ProgressPercent(), 0.001)
}

func TestEventService_ZeroBudgetProgress(t *testing.T) {
	svc, _ := newEventService(t)

	event, err := svc.CreateEvent(context.Background(), CreateEventInput{Name: "Free Party", TotalBudget: 0})
	require.NoError(t, err)

	updated, err := svc.AddCatalogAsset(context.Background(), event.ID, domain.AssetTemplate{
		Name:     "Smoke Machine",
		Type:     domain.AssetEquipment,
		Cost:     50,
		Quantity: 1,
	})

	require.NoError(t, err)
	// zero budget divides against 1, then caps at 100
	assert.InDelta(t, 100.0, updated.ProgressPercent(), 0.001)
}

func TestEventService_Catalog(t *testing.T) {
	svc, _ := newEventService(t)

	catalog := svc.Catalog()

	require.NotEmpty(t, catalog)
	for _, tmpl := range catalog {
		assert.NotEqual(t, domain.AssetArtist, tmpl.Type)
		assert.Positive(t, tmpl.Quantity)
	}
}
