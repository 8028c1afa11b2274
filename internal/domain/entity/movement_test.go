package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func sampleSnapshot() entity.ProductSnapshot {
	return entity.ProductSnapshot{
		UnitID:      9,
		GarmentCode: "CAM-01",
		GarmentName: "Camisa manga larga",
		Color:       "azul",
		BrandID:     2,
		BrandName:   "Nórdika",
		Quantity:    10,
	}
}

// El payload no-edición se serializa como el snapshot plano, sin envoltorio,
// con las claves que espera la vista de históricos.
func TestMovementPayload_SnapshotPlanoEnJSON(t *testing.T) {
	payload := entity.SinglePayload(sampleSnapshot())

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	assert.NotContains(t, m, "tipo", "los snapshots planos no llevan discriminador")
	assert.Equal(t, "CAM-01", m["catalogo_codigo"])
	assert.Equal(t, "Camisa manga larga", m["producto_nombre"])
	assert.Equal(t, "Nórdika", m["marca_nombre"])
	assert.Equal(t, float64(10), m["cantidad"])
}

// Las ediciones se serializan como {tipo: "edicion", old, new}.
func TestMovementPayload_EdicionEnJSON(t *testing.T) {
	oldSnap := sampleSnapshot()
	newSnap := sampleSnapshot()
	newSnap.Color = "verde"
	newSnap.Quantity = 4

	data, err := json.Marshal(entity.EditPayload(oldSnap, newSnap))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	assert.Equal(t, "edicion", m["tipo"])
	oldMap, ok := m["old"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "azul", oldMap["color"])
	newMap, ok := m["new"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "verde", newMap["color"])
}

func TestMovementPayload_RoundTripPorDiscriminador(t *testing.T) {
	cases := []struct {
		name    string
		payload entity.MovementPayload
	}{
		{"snapshot plano", entity.SinglePayload(sampleSnapshot())},
		{"edición", entity.EditPayload(sampleSnapshot(), sampleSnapshot())},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.payload)
			require.NoError(t, err)

			var decoded entity.MovementPayload
			require.NoError(t, json.Unmarshal(data, &decoded))

			assert.Equal(t, tc.payload.IsEdit(), decoded.IsEdit())
			if tc.payload.IsEdit() {
				assert.Equal(t, *tc.payload.Old, *decoded.Old)
				assert.Equal(t, *tc.payload.New, *decoded.New)
			} else {
				assert.Equal(t, *tc.payload.Single, *decoded.Single)
			}
		})
	}
}

func TestMovementPayload_VacioNoSerializa(t *testing.T) {
	_, err := json.Marshal(entity.MovementPayload{})
	assert.Error(t, err)
}

func TestValidMovementKind(t *testing.T) {
	for _, kind := range []string{"entrada", "salida", "edicion", "eliminacion"} {
		assert.True(t, entity.ValidMovementKind(kind), kind)
	}
	assert.False(t, entity.ValidMovementKind("devolucion"))
	assert.False(t, entity.ValidMovementKind(""))
}
