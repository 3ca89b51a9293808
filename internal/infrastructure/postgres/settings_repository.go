package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo tabla clave/valor de configuración de la instalación (usable con pool o tx).
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de configuración. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// All devuelve todas las claves de configuración.
func (r *SettingsRepo) All() ([]entity.Setting, error) {
	query := `SELECT id, key, value FROM settings ORDER BY key`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var out []entity.Setting
	for rows.Next() {
		var s entity.Setting
		if err := rows.Scan(&s.ID, &s.Key, &s.Value); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update inserta o actualiza el valor de una clave.
func (r *SettingsRepo) Update(key, value string) error {
	query := `
		INSERT INTO settings (id, key, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	_, err := r.q.Exec(context.Background(), query, uuid.New().String(), key, value)
	if err != nil {
		return fmt.Errorf("upsert setting: %w", err)
	}
	return nil
}
