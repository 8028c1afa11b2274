package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del registro de movimientos sobre PostgreSQL
// (usable con pool o tx). El payload se serializa a JSONB solo aquí, en la
// frontera de almacenamiento.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento y rellena ID y CreatedAt.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	payload, err := json.Marshal(movement.Payload)
	if err != nil {
		return fmt.Errorf("marshal movement payload: %w", err)
	}
	err = r.q.QueryRow(context.Background(),
		`INSERT INTO movimientos (tipo, producto_id, producto_data, cantidad, usuario_id, observaciones)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, fecha`,
		movement.Kind, movement.UnitID, payload, movement.Quantity,
		movement.UserID, movement.Observations,
	).Scan(&movement.ID, &movement.CreatedAt)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// Page devuelve una página de movimientos (más recientes primero) y el total de
// filas que cumplen el filtro. El nombre de usuario sale de un LEFT JOIN: un
// usuario eliminado deja el campo vacío sin romper el histórico.
func (r *MovementRepo) Page(kind string, limit, offset int) ([]entity.MovementRecord, int64, error) {
	query := `
		SELECT m.id, m.tipo, m.producto_id, m.producto_data, m.cantidad,
		       COALESCE(u.nombre, ''), m.observaciones, m.fecha
		FROM movimientos m
		LEFT JOIN usuarios u ON m.usuario_id = u.id`
	countQuery := `SELECT COUNT(*) FROM movimientos m`

	args := []any{}
	pos := 1
	if kind != "" {
		query += fmt.Sprintf(" WHERE m.tipo = $%d", pos)
		countQuery += fmt.Sprintf(" WHERE m.tipo = $%d", pos)
		args = append(args, kind)
		pos++
	}

	var total int64
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	query += fmt.Sprintf(" ORDER BY m.fecha DESC, m.id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("page movements: %w", err)
	}
	defer rows.Close()

	var list []entity.MovementRecord
	for rows.Next() {
		var rec entity.MovementRecord
		var payload []byte
		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.UnitID, &payload, &rec.Quantity,
			&rec.UserName, &rec.Observations, &rec.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan movement: %w", err)
		}
		if err := json.Unmarshal(payload, &rec.Payload); err != nil {
			return nil, 0, fmt.Errorf("unmarshal movement payload: %w", err)
		}
		list = append(list, rec)
	}
	return list, total, rows.Err()
}
