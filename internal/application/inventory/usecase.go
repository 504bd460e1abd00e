package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/neelsoon/inventario-laboral/internal/application/dto"
	"github.com/neelsoon/inventario-laboral/internal/domain"
	"github.com/neelsoon/inventario-laboral/internal/domain/entity"
	"github.com/neelsoon/inventario-laboral/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock de forma transaccional:
// bloquea la fila del producto (SELECT FOR UPDATE), inserta el registro
// inmutable del libro y aplica el delta de stock con Commit/Rollback conjunto.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// RegisterMovement valida la entrada y ejecuta el alta dentro de una transacción:
//
//  1. Bloqueo de la fila del producto; ErrNotFound si no existe.
//  2. Insert del movimiento con fecha del servidor y snapshot del nombre.
//  3. UPDATE relativo del stock: +cantidad en Entrada, -cantidad en Salida.
//
// Una Salida puede dejar el stock en negativo: el depósito registra faltantes
// pendientes así y el libro sigue siendo la fuente de verdad.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in dto.RegisterMovementRequest) (*entity.Movement, error) {
	if in.ProductoID == "" || in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo != entity.MovementTipoEntrada && in.Tipo != entity.MovementTipoSalida {
		return nil, domain.ErrInvalidInput
	}

	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}

	var mov *entity.Movement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductoID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		mov = &entity.Movement{
			ID:             id,
			Fecha:          time.Now(),
			ProductoID:     product.ID,
			ProductoNombre: product.Nombre,
			Tipo:           in.Tipo,
			Cantidad:       in.Cantidad,
			Motivo:         in.Motivo,
			Usuario:        in.Usuario,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		return productRepo.ApplyStockDelta(product.ID, mov.Delta())
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// MovementQueryUseCase lee el libro de movimientos, con filtro opcional de
// texto libre sobre producto, responsable y motivo (insensible a acentos,
// mismo comportamiento que la búsqueda de la vista de historial).
type MovementQueryUseCase struct {
	movRepo repository.MovementRepository
}

// NewMovementQueryUseCase construye el caso de uso de consulta.
func NewMovementQueryUseCase(movRepo repository.MovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movRepo: movRepo}
}

// List devuelve los movimientos ordenados por fecha descendente. Si q no es
// vacío, filtra en memoria por nombre de producto, usuario o motivo.
func (uc *MovementQueryUseCase) List(ctx context.Context, q string) ([]dto.MovementResponse, error) {
	movements, err := uc.movRepo.List()
	if err != nil {
		return nil, err
	}

	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		if q != "" && !MatchesMovement(m, q) {
			continue
		}
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

// Entities devuelve los movimientos filtrados como entidades (para exportes).
func (uc *MovementQueryUseCase) Entities(ctx context.Context, q string) ([]*entity.Movement, error) {
	movements, err := uc.movRepo.List()
	if err != nil {
		return nil, err
	}
	if q == "" {
		return movements, nil
	}
	out := make([]*entity.Movement, 0, len(movements))
	for _, m := range movements {
		if MatchesMovement(m, q) {
			out = append(out, m)
		}
	}
	return out, nil
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		Fecha:          m.Fecha,
		ProductoID:     m.ProductoID,
		ProductoNombre: m.ProductoNombre,
		Tipo:           m.Tipo,
		Cantidad:       m.Cantidad,
		Motivo:         m.Motivo,
		Usuario:        m.Usuario,
	}
}
