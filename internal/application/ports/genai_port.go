package ports

import (
	"context"

	"github.com/neelsoon/inventario-laboral/internal/application/dto"
)

// GenAIService define el puerto de salida hacia el proveedor de IA generativa.
// Cualquier adaptador (Google GenAI, mock) debe implementar esta interfaz; la
// aplicación solo conoce este contrato. No hay reintentos ni caché: cada
// llamada es un request/response opaco y el error del proveedor se propaga.
type GenAIService interface {
	// SearchWithGrounding responde una consulta libre apoyada en búsqueda web,
	// devolviendo el texto y los enlaces de las fuentes. location puede ser nil.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	SearchWithGrounding(ctx context.Context, query string, location *dto.GeoPoint) (*dto.StudioSearchDTO, error)

	// GenerateImage sintetiza una imagen a partir de un prompt, con relación de
	// aspecto (1:1, 16:9, 9:16) y nivel de calidad.
	GenerateImage(ctx context.Context, prompt, aspectRatio string, highQuality bool) (*dto.StudioImageDTO, error)
}
