package entity

// StockUnit es una unidad de stock (SKU): prenda + color + marca con su cantidad.
// La identidad para fusionar entradas es la tripleta (GarmentCode, Color, BrandID);
// nunca debe existir más de una fila viva por tripleta (índice único en BD).
type StockUnit struct {
	ID          int64
	GarmentCode string // FK → catalogo_prendas.codigo
	Color       string
	BrandID     int64 // FK → catalogo_marcas.id
	Quantity    int
}

// ProductDetail es la vista de un StockUnit unida con los nombres de catálogo.
// La usan las proyecciones de lectura y el codec de snapshots.
type ProductDetail struct {
	ID          int64  `json:"id"`
	GarmentCode string `json:"catalogo_codigo"`
	GarmentName string `json:"producto_nombre"`
	Color       string `json:"color"`
	BrandID     int64  `json:"catalogo_marca"`
	BrandName   string `json:"marca_nombre"`
	Quantity    int    `json:"cantidad"`
}

// GroupedProduct agrupa las variantes de una misma prenda (código de catálogo)
// para el filtrado facetado por color/marca en el cliente.
type GroupedProduct struct {
	Code     string           `json:"catalogo_codigo"`
	Name     string           `json:"producto_nombre"`
	Total    int              `json:"cantidad_total"`
	Variants []ProductVariant `json:"variantes"`
}

// ProductVariant es una combinación color/marca con stock dentro de un grupo.
type ProductVariant struct {
	ID        int64  `json:"id"`
	Color     string `json:"color"`
	BrandID   int64  `json:"catalogo_marca"`
	BrandName string `json:"marca_nombre"`
	Quantity  int    `json:"cantidad"`
}
