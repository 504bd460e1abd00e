package http

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/neelsoon/inventario-laboral/internal/application/dto"
)

// validate instancia compartida; los validadores son seguros para uso
// concurrente y cachean la metadata de los structs.
var validate = validator.New(validator.WithRequiredStructEnabled())

// parseBody decodifica el JSON del request en dst y aplica las reglas de las
// etiquetas validate. Si algo falla escribe la respuesta 400 y devuelve false.
func parseBody(c *fiber.Ctx, dst any) bool {
	if err := c.BodyParser(dst); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return false
	}
	if err := validate.Struct(dst); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
		return false
	}
	return true
}

// validationMessage condensa los errores de campo en un mensaje legible.
func validationMessage(err error) string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok || len(ve) == 0 {
		return err.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		parts = append(parts, fmt.Sprintf("%s: regla '%s' no cumplida", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
