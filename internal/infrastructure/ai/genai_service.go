// Package ai implementa el puerto GenAIService sobre el SDK oficial de
// Google GenAI (google.golang.org/genai).
package ai

import (
	"context"
	"encoding/base64"
	"fmt"

	"google.golang.org/genai"

	"github.com/neelsoon/inventario-laboral/internal/application/dto"
	"github.com/neelsoon/inventario-laboral/internal/application/ports"
)

// Verificar en tiempo de compilación que GenAIStudioService implementa el puerto.
var _ ports.GenAIService = (*GenAIStudioService)(nil)

// Config modelos y credenciales del adaptador.
type Config struct {
	APIKey       string
	SearchModel  string // ej. "gemini-2.5-flash"
	ImageModel   string // ej. "imagen-4.0-generate-001"
	ImageModelHQ string // ej. "imagen-4.0-ultra-generate-001"
}

// GenAIStudioService adaptador de los paneles de Estudio IA.
// Si no hay API key el cliente queda en nil y cada llamada devuelve un error
// descriptivo en lugar de fallar en el arranque.
type GenAIStudioService struct {
	client *genai.Client
	cfg    Config
}

// NewGenAIStudioService construye el adaptador. Con APIKey vacía no crea el
// cliente; los endpoints reportarán el servicio como no configurado.
func NewGenAIStudioService(ctx context.Context, cfg Config) (*GenAIStudioService, error) {
	s := &GenAIStudioService{cfg: cfg}
	if cfg.APIKey == "" {
		return s, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("crear cliente GenAI: %w", err)
	}
	s.client = client
	return s, nil
}

// SearchWithGrounding responde la consulta con la herramienta de búsqueda de
// Google habilitada y extrae los enlaces de las fuentes del grounding.
func (s *GenAIStudioService) SearchWithGrounding(ctx context.Context, query string, location *dto.GeoPoint) (*dto.StudioSearchDTO, error) {
	if s.client == nil {
		return nil, fmt.Errorf("IA: GEMINI_API_KEY no configurado")
	}

	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}
	if location != nil {
		config.ToolConfig = &genai.ToolConfig{
			RetrievalConfig: &genai.RetrievalConfig{
				LatLng: &genai.LatLng{
					Latitude:  &location.Lat,
					Longitude: &location.Lng,
				},
			},
		}
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.cfg.SearchModel, genai.Text(query), config)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("IA: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("IA: búsqueda con grounding: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("IA: el modelo devolvió una respuesta vacía")
	}

	out := &dto.StudioSearchDTO{
		Text:    text,
		Sources: []dto.StudioSource{},
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		seen := make(map[string]bool)
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" || seen[chunk.Web.URI] {
				continue
			}
			seen[chunk.Web.URI] = true
			out.Sources = append(out.Sources, dto.StudioSource{
				Title: chunk.Web.Title,
				URI:   chunk.Web.URI,
			})
		}
	}
	return out, nil
}

// GenerateImage sintetiza una imagen. El nivel de calidad selecciona el
// modelo: estándar o la variante ultra.
func (s *GenAIStudioService) GenerateImage(ctx context.Context, prompt, aspectRatio string, highQuality bool) (*dto.StudioImageDTO, error) {
	if s.client == nil {
		return nil, fmt.Errorf("IA: GEMINI_API_KEY no configurado")
	}

	model := s.cfg.ImageModel
	if highQuality {
		model = s.cfg.ImageModelHQ
	}

	resp, err := s.client.Models.GenerateImages(ctx, model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    aspectRatio,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("IA: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("IA: generación de imagen: %w", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, fmt.Errorf("IA: el modelo no devolvió imágenes")
	}

	img := resp.GeneratedImages[0].Image
	mime := img.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return &dto.StudioImageDTO{
		ImageBase64: base64.StdEncoding.EncodeToString(img.ImageBytes),
		MimeType:    mime,
	}, nil
}
