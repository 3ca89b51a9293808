package postgres

import (
	"context"
	"fmt"

	"github.com/logisur/almacen-api/internal/domain"
	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

var _ repository.CityRepository = (*CityRepo)(nil)

// CityRepo ciudades de reparto sobre PostgreSQL (usable con pool o tx).
type CityRepo struct {
	q Querier
}

// NewCityRepository construye el adaptador de ciudades. Pasar pool o tx (Querier).
func NewCityRepository(q Querier) *CityRepo {
	return &CityRepo{q: q}
}

// Create persiste una ciudad. Devuelve domain.ErrDuplicate si el nombre ya existe.
func (r *CityRepo) Create(c *entity.City) error {
	query := `
		INSERT INTO cities (id, name, delivery_price, has_deliveries)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Name, c.DeliveryPrice, c.HasDeliveries)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert city: %w", err)
	}
	return nil
}

// GetByID obtiene una ciudad por ID.
func (r *CityRepo) GetByID(id string) (*entity.City, error) {
	query := `SELECT id, name, delivery_price, has_deliveries FROM cities WHERE id = $1`
	var c entity.City
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.DeliveryPrice, &c.HasDeliveries,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get city: %w", err)
	}
	return &c, nil
}

// List devuelve todas las ciudades.
func (r *CityRepo) List() ([]entity.City, error) {
	query := `SELECT id, name, delivery_price, has_deliveries FROM cities ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()

	var out []entity.City
	for rows.Next() {
		var c entity.City
		if err := rows.Scan(&c.ID, &c.Name, &c.DeliveryPrice, &c.HasDeliveries); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update actualiza una ciudad existente.
func (r *CityRepo) Update(c *entity.City) error {
	query := `UPDATE cities SET name = $2, delivery_price = $3, has_deliveries = $4 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, c.ID, c.Name, c.DeliveryPrice, c.HasDeliveries)
	if err != nil {
		return fmt.Errorf("update city: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
