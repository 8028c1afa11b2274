package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// Tipos de movimiento de inventario.
const (
	MovementEntrada     = "entrada"
	MovementSalida      = "salida"
	MovementEdicion     = "edicion"
	MovementEliminacion = "eliminacion"
)

// ValidMovementKind indica si el tipo es uno de los aceptados.
func ValidMovementKind(kind string) bool {
	switch kind {
	case MovementEntrada, MovementSalida, MovementEdicion, MovementEliminacion:
		return true
	}
	return false
}

// ProductSnapshot es una copia denormalizada e inmutable del producto en el momento
// de una mutación, con los nombres de catálogo ya resueltos. Vive solo dentro de un
// Movement; renombrar el catálogo o borrar el SKU después no la altera.
type ProductSnapshot struct {
	UnitID      int64  `json:"id"`
	GarmentCode string `json:"catalogo_codigo"`
	GarmentName string `json:"producto_nombre"`
	Color       string `json:"color"`
	BrandID     int64  `json:"catalogo_marca"`
	BrandName   string `json:"marca_nombre"`
	Quantity    int    `json:"cantidad"`
}

// MovementPayload es la unión etiquetada que guarda producto_data: un snapshot
// suelto para entrada/salida/eliminación, o un par {old, new} para ediciones.
// Se serializa a JSON únicamente en la frontera de almacenamiento.
type MovementPayload struct {
	Single *ProductSnapshot
	Old    *ProductSnapshot
	New    *ProductSnapshot
}

// SinglePayload construye el payload de un movimiento no-edición.
func SinglePayload(s ProductSnapshot) MovementPayload {
	return MovementPayload{Single: &s}
}

// EditPayload construye el payload {old, new} de una edición.
func EditPayload(oldSnap, newSnap ProductSnapshot) MovementPayload {
	return MovementPayload{Old: &oldSnap, New: &newSnap}
}

// IsEdit indica si el payload es un par de edición.
func (p MovementPayload) IsEdit() bool {
	return p.Old != nil && p.New != nil
}

// editPayloadJSON es la forma en disco del payload de edición. El discriminador
// "tipo" es lo que el histórico usa para distinguir ediciones del resto.
type editPayloadJSON struct {
	Tipo string           `json:"tipo"`
	Old  *ProductSnapshot `json:"old"`
	New  *ProductSnapshot `json:"new"`
}

const editPayloadTag = "edicion"

// MarshalJSON serializa el snapshot plano, o {tipo:"edicion", old, new} para ediciones.
func (p MovementPayload) MarshalJSON() ([]byte, error) {
	if p.IsEdit() {
		return json.Marshal(editPayloadJSON{Tipo: editPayloadTag, Old: p.Old, New: p.New})
	}
	if p.Single == nil {
		return nil, fmt.Errorf("movement payload vacío")
	}
	return json.Marshal(p.Single)
}

// UnmarshalJSON reconoce las dos formas del payload por el discriminador "tipo".
func (p *MovementPayload) UnmarshalJSON(data []byte) error {
	var probe struct {
		Tipo string `json:"tipo"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Tipo == editPayloadTag {
		var ep editPayloadJSON
		if err := json.Unmarshal(data, &ep); err != nil {
			return err
		}
		if ep.Old == nil || ep.New == nil {
			return fmt.Errorf("payload de edición sin old/new")
		}
		*p = MovementPayload{Old: ep.Old, New: ep.New}
		return nil
	}
	var s ProductSnapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = MovementPayload{Single: &s}
	return nil
}

// Movement es una entrada del registro de movimientos. Append-only: la aplicación
// nunca lo edita ni lo borra (pista de auditoría).
type Movement struct {
	ID           int64
	Kind         string // entrada | salida | edicion | eliminacion
	UnitID       *int64 // referencia blanda al SKU; puede sobrevivirlo
	Payload      MovementPayload
	Quantity     int // delta de cantidad del movimiento
	UserID       *int64
	Observations string
	CreatedAt    time.Time
}

// MovementRecord es la vista de lectura de un movimiento, con el nombre del
// usuario resuelto (LEFT JOIN: vacío si el usuario fue eliminado).
type MovementRecord struct {
	ID           int64           `json:"id"`
	Kind         string          `json:"tipo"`
	UnitID       *int64          `json:"producto_id,omitempty"`
	Payload      MovementPayload `json:"producto_data"`
	Quantity     int             `json:"cantidad"`
	UserName     string          `json:"usuario"`
	Observations string          `json:"observaciones,omitempty"`
	CreatedAt    time.Time       `json:"fecha"`
}
