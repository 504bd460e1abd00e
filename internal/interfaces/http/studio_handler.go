package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/neelsoon/inventario-laboral/internal/application/dto"
	"github.com/neelsoon/inventario-laboral/internal/application/studio"
)

// StudioHandler paneles de Estudio IA (protegido).
type StudioHandler struct {
	uc *studio.StudioUseCase
}

// NewStudioHandler construye el handler.
func NewStudioHandler(uc *studio.StudioUseCase) *StudioHandler {
	return &StudioHandler{uc: uc}
}

// Search godoc
// @Summary      Búsqueda con grounding web
// @Description  Respuesta del modelo con enlaces a las fuentes. La geolocalización es opcional.
// @Tags         studio
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StudioSearchRequest  true  "query y location opcional"
// @Success      200   {object}  dto.StudioSearchDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/studio/search [post]
func (h *StudioHandler) Search(c *fiber.Ctx) error {
	var in dto.StudioSearchRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Search(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_ERROR", Message: err.Error()})
	}
	return c.JSON(out)
}

// GenerateImage godoc
// @Summary      Generar imagen
// @Description  Relación de aspecto 1:1, 16:9 o 9:16; highQuality selecciona el modelo ultra.
// @Tags         studio
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StudioImageRequest  true  "prompt, aspectRatio, highQuality"
// @Success      200   {object}  dto.StudioImageDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/studio/image [post]
func (h *StudioHandler) GenerateImage(c *fiber.Ctx) error {
	var in dto.StudioImageRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.GenerateImage(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_ERROR", Message: err.Error()})
	}
	return c.JSON(out)
}
