// Package analytics contiene el caso de uso del tablero de control del depósito.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/neelsoon/inventario-laboral/internal/application/dto"
	"github.com/neelsoon/inventario-laboral/internal/domain/entity"
	"github.com/neelsoon/inventario-laboral/internal/domain/repository"
)

const dashboardRecentMovements = 5 // movimientos del widget de actividad reciente

// DashboardUseCase calcula los contadores del tablero releyendo las
// colecciones completas de productos y movimientos y filtrando en memoria.
// No mantiene contadores incrementales ni materializados: cada llamada parte
// del estado actual de la base.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, movementRepo repository.MovementRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// GetStats construye el DashboardStatsDTO.
//
// Las dos lecturas van en paralelo; el cómputo es:
//   - totalProducts: |P|
//   - lowStock:      productos con stockActual <= stockMinimo
//   - outOfStock:    productos con stockActual <= 0
//   - movementsToday: movimientos con fecha en el día calendario local
//   - recentMovements: los 5 primeros de la lista (ya ordenada por fecha desc)
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	type productsResult struct {
		products []*entity.Product
		err      error
	}
	type movementsResult struct {
		movements []*entity.Movement
		err       error
	}

	productsCh := make(chan productsResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		p, err := uc.productRepo.List()
		productsCh <- productsResult{p, err}
	}()
	go func() {
		m, err := uc.movementRepo.List()
		movementsCh <- movementsResult{m, err}
	}()

	pr := <-productsCh
	mr := <-movementsCh

	if pr.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", pr.err)
	}
	if mr.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos: %w", mr.err)
	}

	stats := &dto.DashboardStatsDTO{
		TotalProducts:   len(pr.products),
		RecentMovements: make([]dto.MovementResponse, 0, dashboardRecentMovements),
	}
	for _, p := range pr.products {
		if p.BajoMinimo() {
			stats.LowStock++
		}
		if p.SinExistencias() {
			stats.OutOfStock++
		}
	}

	now := time.Now()
	for i, m := range mr.movements {
		if sameLocalDay(m.Fecha, now) {
			stats.MovementsToday++
		}
		if i < dashboardRecentMovements {
			stats.RecentMovements = append(stats.RecentMovements, dto.MovementResponse{
				ID:             m.ID,
				Fecha:          m.Fecha,
				ProductoID:     m.ProductoID,
				ProductoNombre: m.ProductoNombre,
				Tipo:           m.Tipo,
				Cantidad:       m.Cantidad,
				Motivo:         m.Motivo,
				Usuario:        m.Usuario,
			})
		}
	}
	return stats, nil
}

// sameLocalDay compara fechas por día calendario en la zona local del servidor.
func sameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
