package usecase

import (
	"github.com/neelsoon/inventario-laboral/internal/application/dto"
	"github.com/neelsoon/inventario-laboral/internal/domain/entity"
	"github.com/neelsoon/inventario-laboral/internal/domain/repository"
)

// ProductUseCase aplica reglas de negocio para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso con el puerto de persistencia.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Save inserta o actualiza un producto por ID. En la actualización el
// StockActual enviado se ignora: el repositorio preserva el stock vigente
// porque el stock solo cambia vía movimientos.
func (uc *ProductUseCase) Save(in dto.SaveProductRequest) error {
	p := &entity.Product{
		ID:          in.ID,
		Codigo:      in.Codigo,
		Nombre:      in.Nombre,
		StockActual: in.StockActual,
		StockMinimo: in.StockMinimo,
		Precio:      in.Precio,
	}
	return uc.repo.Upsert(p)
}

// List devuelve el catálogo completo ordenado por nombre.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductResponse{
			ID:          p.ID,
			Codigo:      p.Codigo,
			Nombre:      p.Nombre,
			StockActual: p.StockActual,
			StockMinimo: p.StockMinimo,
			Precio:      p.Precio,
		})
	}
	return out, nil
}

// Delete elimina el producto; sus movimientos caen por cascada en la base.
// Borrar un ID inexistente es un no-op silencioso.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
