package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neelsoon/inventario-laboral/internal/application/inventory"
)

func TestNormalize_QuitaAcentosYMayusculas(t *testing.T) {
	cases := map[string]string{
		"Depósito":     "deposito",
		"GARCÍA":       "garcia",
		"Tóner Láser":  "toner laser",
		"sin cambios":  "sin cambios",
		"ñandú":        "nandu", // la ñ también pierde la virgulilla
		"":             "",
	}
	for in, want := range cases {
		assert.Equal(t, want, inventory.Normalize(in), "entrada: %q", in)
	}
}
