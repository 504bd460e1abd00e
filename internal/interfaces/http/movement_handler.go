package http

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/neelsoon/inventario-laboral/internal/application/dto"
	"github.com/neelsoon/inventario-laboral/internal/application/inventory"
	"github.com/neelsoon/inventario-laboral/internal/domain"
	"github.com/neelsoon/inventario-laboral/internal/infrastructure/pdf"
)

// MovementHandler maneja el libro de movimientos (protegido).
type MovementHandler struct {
	register *inventory.RegisterMovementUseCase
	query    *inventory.MovementQueryUseCase
	reporter *pdf.MarotoReportGenerator
}

// NewMovementHandler construye el handler.
func NewMovementHandler(
	register *inventory.RegisterMovementUseCase,
	query *inventory.MovementQueryUseCase,
	reporter *pdf.MarotoReportGenerator,
) *MovementHandler {
	return &MovementHandler{register: register, query: query, reporter: reporter}
}

// List godoc
// @Summary      Historial de movimientos
// @Description  Más recientes primero. ?q= filtra por producto, responsable o motivo sin distinguir acentos.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  false  "Texto a buscar"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	out, err := h.query.List(c.Context(), c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Registrar movimiento
// @Description  Entrada suma, Salida resta. El ajuste de stock y el asiento se confirman en una sola transacción.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if !parseBody(c, &in) {
		return nil
	}
	mov, err := h.register.RegisterMovement(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "el producto no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		ID:             mov.ID,
		Fecha:          mov.Fecha,
		ProductoID:     mov.ProductoID,
		ProductoNombre: mov.ProductoNombre,
		Tipo:           mov.Tipo,
		Cantidad:       mov.Cantidad,
		Motivo:         mov.Motivo,
		Usuario:        mov.Usuario,
	})
}

// ExportCSV godoc
// @Summary      Exportar auditoría CSV
// @Description  UTF-8 con BOM para que Excel respete los acentos. Solo el motivo va entre comillas.
// @Tags         movements
// @Security     Bearer
// @Produce      text/csv
// @Param        q    query  string  false  "Texto a buscar"
// @Success      200  {string}  string
// @Router       /api/movements/export [get]
func (h *MovementHandler) ExportCSV(c *fiber.Ctx) error {
	movements, err := h.query.Entities(c.Context(), c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	var sb strings.Builder
	sb.WriteString("\uFEFF")
	sb.WriteString("ID,Fecha,Producto,Tipo,Cantidad,Responsable,Motivo")
	for _, mv := range movements {
		sb.WriteString("\n")
		sb.WriteString(strings.Join([]string{
			mv.ID,
			mv.Fecha.Format(time.RFC3339),
			mv.ProductoNombre,
			mv.Tipo,
			strconv.Itoa(mv.Cantidad),
			mv.Usuario,
			`"` + strings.ReplaceAll(mv.Motivo, `"`, `""`) + `"`,
		}, ","))
	}

	fileName := fmt.Sprintf("auditoria_movimientos_%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return c.SendString(sb.String())
}

// Reporte godoc
// @Summary      Reporte PDF de auditoría
// @Tags         movements
// @Security     Bearer
// @Produce      application/pdf
// @Param        q    query  string  false  "Texto a buscar"
// @Success      200  {string}  binary
// @Router       /api/movements/reporte [get]
func (h *MovementHandler) Reporte(c *fiber.Ctx) error {
	movements, err := h.query.Entities(c.Context(), c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	doc, err := h.reporter.GenerateMovementsReport(c.Context(), GetUserID(c), movements)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}

	fileName := fmt.Sprintf("auditoria_movimientos_%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return c.Send(doc)
}
