package dto

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// CreateGarmentRequest body para POST /api/catalogo/prendas.
type CreateGarmentRequest struct {
	Code string `json:"codigo"`
	Name string `json:"nombre"`
}

// CreateBrandRequest body para POST /api/catalogo/marcas.
type CreateBrandRequest struct {
	Name string `json:"nombre"`
}

// GarmentResponse entrada del catálogo de prendas.
type GarmentResponse struct {
	ID   int64  `json:"id"`
	Code string `json:"codigo"`
	Name string `json:"nombre"`
}

// BrandResponse entrada del catálogo de marcas.
type BrandResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

// ToGarmentResponse convierte la entidad al DTO de salida.
func ToGarmentResponse(g *entity.Garment) GarmentResponse {
	return GarmentResponse{ID: g.ID, Code: g.Code, Name: g.Name}
}

// ToBrandResponse convierte la entidad al DTO de salida.
func ToBrandResponse(b *entity.Brand) BrandResponse {
	return BrandResponse{ID: b.ID, Name: b.Name}
}
