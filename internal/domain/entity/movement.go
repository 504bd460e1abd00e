package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTipoEntrada = "Entrada" // ingreso de mercadería
	MovementTipoSalida  = "Salida"  // egreso de mercadería
)

// Movement es un registro inmutable del libro de movimientos: una vez creado
// nunca se actualiza ni se elimina desde la aplicación. El borrado de un
// producto elimina sus movimientos por cascada en la base.
type Movement struct {
	ID             string
	Fecha          time.Time // asignada por el servidor al registrar
	ProductoID     string
	ProductoNombre string // snapshot del nombre del producto al momento del movimiento
	Tipo           string // Entrada | Salida
	Cantidad       int    // siempre positiva; el signo lo da el tipo
	Motivo         string
	Usuario        string
}

// Delta devuelve el efecto del movimiento sobre el stock del producto:
// +Cantidad para Entrada, -Cantidad para Salida.
func (m *Movement) Delta() int {
	if m.Tipo == MovementTipoSalida {
		return -m.Cantidad
	}
	return m.Cantidad
}
