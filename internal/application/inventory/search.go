package inventory

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/neelsoon/inventario-laboral/internal/domain/entity"
)

// normalizer descompone a NFD, descarta marcas diacríticas y recompone,
// de modo que "depósito" y "deposito" comparen igual.
var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize devuelve s en minúsculas y sin acentos para comparación.
func Normalize(s string) string {
	out, _, err := transform.String(normalizer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// MatchesMovement replica el filtro de la vista de historial: match por
// nombre de producto, responsable o motivo, insensible a mayúsculas y acentos.
func MatchesMovement(m *entity.Movement, q string) bool {
	nq := Normalize(q)
	return strings.Contains(Normalize(m.ProductoNombre), nq) ||
		strings.Contains(Normalize(m.Usuario), nq) ||
		strings.Contains(Normalize(m.Motivo), nq)
}
