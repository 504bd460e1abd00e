package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neelsoon/inventario-laboral/internal/application/dto"
	"github.com/neelsoon/inventario-laboral/internal/application/inventory"
	"github.com/neelsoon/inventario-laboral/internal/domain"
	"github.com/neelsoon/inventario-laboral/internal/domain/entity"
	"github.com/neelsoon/inventario-laboral/internal/domain/repository"
	"github.com/neelsoon/inventario-laboral/internal/infrastructure/pdf"
	apphttp "github.com/neelsoon/inventario-laboral/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
}

func (r *memProductRepo) Upsert(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *memProductRepo) ApplyStockDelta(id string, delta int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockActual += delta
	return nil
}
func (r *memProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *memProductRepo) Delete(id string) error { delete(r.products, id); return nil }

type memMovementRepo struct {
	movements []*entity.Movement
}

func (r *memMovementRepo) Create(m *entity.Movement) error {
	r.movements = append([]*entity.Movement{m}, r.movements...)
	return nil
}
func (r *memMovementRepo) List() ([]*entity.Movement, error) { return r.movements, nil }

type memTxRunner struct {
	movRepo     *memMovementRepo
	productRepo *memProductRepo
}

func (tr *memTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(tr.movRepo, tr.productRepo)
}

// buildMovementsApp monta las rutas de movimientos sin auth (se prueba aparte).
func buildMovementsApp(movRepo *memMovementRepo, productRepo *memProductRepo) *fiber.App {
	register := inventory.NewRegisterMovementUseCase(&memTxRunner{movRepo: movRepo, productRepo: productRepo})
	query := inventory.NewMovementQueryUseCase(movRepo)
	handler := apphttp.NewMovementHandler(register, query, pdf.NewMarotoReportGenerator())

	app := fiber.New()
	app.Get("/api/movements", handler.List)
	app.Post("/api/movements", handler.Register)
	app.Get("/api/movements/export", handler.ExportCSV)
	app.Get("/api/movements/reporte", handler.Reporte)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests POST /api/movements
// ──────────────────────────────────────────────────────────────────────────────

func TestMovements_RegistrarEntrada(t *testing.T) {
	productRepo := &memProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Nombre: "Resmas A4", StockActual: 10, StockMinimo: 5},
	}}
	app := buildMovementsApp(&memMovementRepo{}, productRepo)

	resp := postJSON(t, app, "/api/movements", dto.RegisterMovementRequest{
		ProductoID: "p1", Tipo: "Entrada", Cantidad: 4, Usuario: "M. Gómez", Motivo: "Compra",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.MovementResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Resmas A4", out.ProductoNombre)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 14, productRepo.products["p1"].StockActual)
}

func TestMovements_RegistrarProductoInexistente(t *testing.T) {
	app := buildMovementsApp(&memMovementRepo{}, &memProductRepo{products: map[string]*entity.Product{}})

	resp := postJSON(t, app, "/api/movements", dto.RegisterMovementRequest{
		ProductoID: "fantasma", Tipo: "Salida", Cantidad: 1,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "PRODUCT_NOT_FOUND")
}

func TestMovements_RegistrarBodyInvalido(t *testing.T) {
	app := buildMovementsApp(&memMovementRepo{}, &memProductRepo{products: map[string]*entity.Product{}})

	// Tipo fuera del enum: lo rechazan las etiquetas validate antes del caso de uso.
	resp := postJSON(t, app, "/api/movements", map[string]any{
		"productoId": "p1", "tipo": "Ajuste", "cantidad": 1,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Cantidad cero.
	resp = postJSON(t, app, "/api/movements", map[string]any{
		"productoId": "p1", "tipo": "Entrada", "cantidad": 0,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GET /api/movements y export
// ──────────────────────────────────────────────────────────────────────────────

func seededMovements() *memMovementRepo {
	return &memMovementRepo{movements: []*entity.Movement{
		{
			ID: "m2", Fecha: time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC),
			ProductoID: "p2", ProductoNombre: "Tóner Láser", Tipo: "Salida",
			Cantidad: 1, Usuario: "García", Motivo: `Cartucho "urgente", oficina 4`,
		},
		{
			ID: "m1", Fecha: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
			ProductoID: "p1", ProductoNombre: "Resmas A4", Tipo: "Entrada",
			Cantidad: 50, Usuario: "Pérez", Motivo: "Compra trimestral",
		},
	}}
}

func TestMovements_ListarConFiltro(t *testing.T) {
	app := buildMovementsApp(seededMovements(), &memProductRepo{products: map[string]*entity.Product{}})

	req := httptest.NewRequest(http.MethodGet, "/api/movements?q=toner", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out []dto.MovementResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, "m2", out[0].ID)
}

func TestMovements_ExportCSVContrato(t *testing.T) {
	app := buildMovementsApp(seededMovements(), &memProductRepo{products: map[string]*entity.Product{}})

	req := httptest.NewRequest(http.MethodGet, "/api/movements/export", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "auditoria_movimientos_")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	content := string(raw)

	// BOM UTF-8 al inicio para que Excel respete los acentos.
	require.True(t, strings.HasPrefix(content, "\uFEFF"), "el CSV debe comenzar con BOM")

	lines := strings.Split(strings.TrimPrefix(content, "\uFEFF"), "\n")
	require.Len(t, lines, 3, "cabecera + dos movimientos")
	assert.Equal(t, "ID,Fecha,Producto,Tipo,Cantidad,Responsable,Motivo", lines[0])

	// Solo el motivo va entre comillas; las comillas internas se duplican.
	assert.Equal(t,
		`m2,2026-03-02T14:30:00Z,Tóner Láser,Salida,1,García,"Cartucho ""urgente"", oficina 4"`,
		lines[1])
	assert.Equal(t,
		`m1,2026-03-01T09:00:00Z,Resmas A4,Entrada,50,Pérez,"Compra trimestral"`,
		lines[2])
}

func TestMovements_ExportCSVVacio(t *testing.T) {
	app := buildMovementsApp(&memMovementRepo{}, &memProductRepo{products: map[string]*entity.Product{}})

	req := httptest.NewRequest(http.MethodGet, "/api/movements/export", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "\uFEFF"+"ID,Fecha,Producto,Tipo,Cantidad,Responsable,Motivo", string(raw),
		"sin movimientos el archivo lleva solo la cabecera")
}

func TestMovements_ReportePDF(t *testing.T) {
	app := buildMovementsApp(seededMovements(), &memProductRepo{products: map[string]*entity.Product{}})

	req := httptest.NewRequest(http.MethodGet, "/api/movements/reporte", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "el cuerpo debe ser un PDF")
}
