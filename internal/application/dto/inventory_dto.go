package dto

// Acciones posibles al registrar una entrada de stock.
const (
	StockActionCreated = "created"
	StockActionUpdated = "updated"
	StockActionDeleted = "deleted"
)

// AddStockRequest body para POST /api/productos: entrada de stock que se fusiona
// con el SKU existente de la misma tripleta (código, color, marca) si lo hay.
type AddStockRequest struct {
	GarmentCode string `json:"catalogo_codigo"`
	Color       string `json:"color"`
	BrandID     int64  `json:"catalogo_marca"`
	Quantity    int    `json:"cantidad"`
}

// AddStockResult resultado de una entrada de stock.
type AddStockResult struct {
	ID       int64  `json:"id"`
	Action   string `json:"action"`
	Quantity int    `json:"cantidad"`
}

// EditUnitRequest body para PUT /api/productos/:id: reemplazo de campos del SKU.
type EditUnitRequest struct {
	GarmentCode string `json:"catalogo_codigo"`
	Color       string `json:"color"`
	BrandID     int64  `json:"catalogo_marca"`
	Quantity    int    `json:"cantidad"`
}

// EditUnitResult filas modificadas (0 o 1); 0 debe tratarse como no-op fallido.
type EditUnitResult struct {
	Changes int64 `json:"changes"`
}

// RemoveStockRequest body para POST /api/salidas.
type RemoveStockRequest struct {
	UnitID       int64  `json:"producto_id"`
	Quantity     int    `json:"cantidad"`
	Observations string `json:"observaciones"`
}

// RemoveStockResult cantidad resultante tras la salida.
type RemoveStockResult struct {
	Quantity int `json:"cantidad"`
}
