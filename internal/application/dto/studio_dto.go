package dto

// GeoPoint geolocalización opcional para la búsqueda con grounding.
type GeoPoint struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// StudioSearchRequest body para POST /api/studio/search.
type StudioSearchRequest struct {
	Query    string    `json:"query" validate:"required,min=1,max=2000"`
	Location *GeoPoint `json:"location" validate:"omitempty"`
}

// StudioSource enlace de fuente devuelto por el grounding.
type StudioSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// StudioSearchDTO respuesta de la búsqueda con grounding.
type StudioSearchDTO struct {
	Text    string         `json:"text"`
	Sources []StudioSource `json:"sources"`
}

// StudioImageRequest body para POST /api/studio/image.
type StudioImageRequest struct {
	Prompt      string `json:"prompt" validate:"required,min=1,max=2000"`
	AspectRatio string `json:"aspectRatio" validate:"required,oneof=1:1 16:9 9:16"`
	HighQuality bool   `json:"highQuality"`
}

// StudioImageDTO respuesta de la generación de imagen.
type StudioImageDTO struct {
	ImageBase64 string `json:"imageBase64"`
	MimeType    string `json:"mimeType"`
}
