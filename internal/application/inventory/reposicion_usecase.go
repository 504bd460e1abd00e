package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/neelsoon/inventario-laboral/internal/application/dto"
	"github.com/neelsoon/inventario-laboral/internal/domain/repository"
)

// ReposicionUseCase genera la lista de reposición: productos en o por debajo
// del stock mínimo, con la cantidad sugerida de pedido y un ranking de
// urgencia por déficit relativo.
type ReposicionUseCase struct {
	productRepo repository.ProductRepository
}

// NewReposicionUseCase construye el caso de uso de reposición.
func NewReposicionUseCase(productRepo repository.ProductRepository) *ReposicionUseCase {
	return &ReposicionUseCase{productRepo: productRepo}
}

// GenerateList recorre el catálogo completo y devuelve las sugerencias.
// Stock ideal = stock mínimo * 1.5 (redondeado hacia arriba); la cantidad
// sugerida cubre la brecha hasta el ideal, nunca negativa.
func (uc *ReposicionUseCase) GenerateList(ctx context.Context) ([]dto.ReposicionSuggestionDTO, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}

	suggestions := make([]dto.ReposicionSuggestionDTO, 0)
	for _, p := range products {
		if !p.BajoMinimo() {
			continue
		}
		ideal := (p.StockMinimo*3 + 1) / 2 // ceil(min * 1.5) en enteros
		qty := ideal - p.StockActual
		if qty < 0 {
			qty = 0
		}
		suggestions = append(suggestions, dto.ReposicionSuggestionDTO{
			ProductoID:       p.ID,
			Codigo:           p.Codigo,
			Nombre:           p.Nombre,
			StockActual:      p.StockActual,
			StockMinimo:      p.StockMinimo,
			StockIdeal:       ideal,
			CantidadSugerida: qty,
			CostoEstimado:    p.Precio.Mul(decimal.NewFromInt(int64(qty))).Round(2),
		})
	}

	// Mayor déficit absoluto primero; a igual déficit, sin existencias primero.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		defA := a.StockMinimo - a.StockActual
		defB := b.StockMinimo - b.StockActual
		if defA != defB {
			return defA > defB
		}
		return a.StockActual < b.StockActual
	})
	for i := range suggestions {
		suggestions[i].Prioridad = i + 1
	}
	return suggestions, nil
}
