// Package studio contiene los casos de uso de los paneles de Estudio IA:
// búsqueda con grounding web y generación de imágenes. Ambos son llamadas
// pasantes al proveedor, sin reintentos ni caché.
package studio

import (
	"context"
	"fmt"
	"time"

	"github.com/neelsoon/inventario-laboral/internal/application/dto"
	"github.com/neelsoon/inventario-laboral/internal/application/ports"
)

// Timeouts por operación: las llamadas al proveedor pueden demorar varios
// segundos y no deben bloquear los goroutines del servidor.
const (
	searchTimeout = 15 * time.Second
	imageTimeout  = 45 * time.Second
)

// StudioUseCase orquesta los dos paneles sobre el puerto GenAIService.
type StudioUseCase struct {
	genai ports.GenAIService
}

// NewStudioUseCase construye el caso de uso inyectando el puerto.
func NewStudioUseCase(genai ports.GenAIService) *StudioUseCase {
	return &StudioUseCase{genai: genai}
}

// Search valida la entrada y delega la búsqueda con grounding al proveedor.
func (uc *StudioUseCase) Search(ctx context.Context, req dto.StudioSearchRequest) (*dto.StudioSearchDTO, error) {
	if req.Query == "" {
		return nil, fmt.Errorf("query es obligatorio")
	}

	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	result, err := uc.genai.SearchWithGrounding(ctx, req.Query, req.Location)
	if err != nil {
		return nil, fmt.Errorf("búsqueda IA: %w", err)
	}
	return result, nil
}

// GenerateImage valida la entrada y delega la síntesis de imagen al proveedor.
func (uc *StudioUseCase) GenerateImage(ctx context.Context, req dto.StudioImageRequest) (*dto.StudioImageDTO, error) {
	if req.Prompt == "" {
		return nil, fmt.Errorf("prompt es obligatorio")
	}
	switch req.AspectRatio {
	case "1:1", "16:9", "9:16":
	default:
		return nil, fmt.Errorf("aspectRatio inválido: %s", req.AspectRatio)
	}

	ctx, cancel := context.WithTimeout(ctx, imageTimeout)
	defer cancel()

	result, err := uc.genai.GenerateImage(ctx, req.Prompt, req.AspectRatio, req.HighQuality)
	if err != nil {
		return nil, fmt.Errorf("generación de imagen: %w", err)
	}
	return result, nil
}
