package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neelsoon/inventario-laboral/internal/application/analytics"
	"github.com/neelsoon/inventario-laboral/internal/domain/entity"
)

// Fakes mínimos de los puertos de lectura.

type stubProductRepo struct {
	products []*entity.Product
	err      error
}

func (r *stubProductRepo) Upsert(*entity.Product) error                   { return nil }
func (r *stubProductRepo) GetByID(string) (*entity.Product, error)        { return nil, nil }
func (r *stubProductRepo) GetForUpdate(string) (*entity.Product, error)   { return nil, nil }
func (r *stubProductRepo) ApplyStockDelta(string, int) error              { return nil }
func (r *stubProductRepo) List() ([]*entity.Product, error)               { return r.products, r.err }
func (r *stubProductRepo) Delete(string) error                            { return nil }

type stubMovementRepo struct {
	movements []*entity.Movement
	err       error
}

func (r *stubMovementRepo) Create(*entity.Movement) error          { return nil }
func (r *stubMovementRepo) List() ([]*entity.Movement, error)      { return r.movements, r.err }

func TestGetStats_Contadores(t *testing.T) {
	now := time.Now()
	productRepo := &stubProductRepo{products: []*entity.Product{
		{ID: "p1", StockActual: 50, StockMinimo: 5}, // sano
		{ID: "p2", StockActual: 3, StockMinimo: 5},  // bajo mínimo
		{ID: "p3", StockActual: 5, StockMinimo: 5},  // en el mínimo exacto: cuenta como bajo
		{ID: "p4", StockActual: 0, StockMinimo: 2},  // sin existencias (y también bajo)
	}}
	movementRepo := &stubMovementRepo{movements: []*entity.Movement{
		{ID: "m1", Fecha: now},
		{ID: "m2", Fecha: now.Add(-time.Minute)},
		{ID: "m3", Fecha: now.AddDate(0, 0, -1)}, // ayer: no cuenta para hoy
	}}
	uc := analytics.NewDashboardUseCase(productRepo, movementRepo)

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalProducts)
	assert.Equal(t, 3, stats.LowStock, "stockActual <= stockMinimo, límite inclusive")
	assert.Equal(t, 1, stats.OutOfStock)
	assert.Equal(t, 2, stats.MovementsToday)
	assert.Len(t, stats.RecentMovements, 3)
	assert.Equal(t, "m1", stats.RecentMovements[0].ID)
}

func TestGetStats_RecentMovementsCortaEnCinco(t *testing.T) {
	movements := make([]*entity.Movement, 8)
	for i := range movements {
		movements[i] = &entity.Movement{
			ID:    string(rune('a' + i)),
			Fecha: time.Now().Add(-time.Duration(i) * time.Hour),
		}
	}
	uc := analytics.NewDashboardUseCase(
		&stubProductRepo{},
		&stubMovementRepo{movements: movements},
	)

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats.RecentMovements, 5)
	assert.Equal(t, "a", stats.RecentMovements[0].ID, "conserva el orden más reciente primero")
}

func TestGetStats_SinDatos(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&stubProductRepo{}, &stubMovementRepo{})

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalProducts)
	assert.Zero(t, stats.LowStock)
	assert.Zero(t, stats.OutOfStock)
	assert.Zero(t, stats.MovementsToday)
	assert.NotNil(t, stats.RecentMovements, "debe serializar como [] y no como null")
}

func TestGetStats_PropagaErrores(t *testing.T) {
	uc := analytics.NewDashboardUseCase(
		&stubProductRepo{err: errors.New("conexión caída")},
		&stubMovementRepo{},
	)
	_, err := uc.GetStats(context.Background())
	assert.Error(t, err)

	uc = analytics.NewDashboardUseCase(
		&stubProductRepo{},
		&stubMovementRepo{err: errors.New("conexión caída")},
	)
	_, err = uc.GetStats(context.Background())
	assert.Error(t, err)
}
