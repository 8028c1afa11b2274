package entity

// Garment es una entrada del catálogo de prendas: código único + nombre para mostrar.
type Garment struct {
	ID   int64
	Code string // código natural (ej. "CAM01"), único
	Name string
}

// Brand es una entrada del catálogo de marcas, con nombre único e id surrogate.
type Brand struct {
	ID   int64
	Name string
}
