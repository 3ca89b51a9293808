// Package settings carga la configuración de la instalación (tabla clave/valor)
// como un snapshot inmutable por petición, inyectado en los casos de uso que lo
// necesitan en lugar de un singleton de proceso.
package settings

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

// Snapshot vista inmutable de la configuración al momento de la carga.
// PalletDay ya viene parseado; el resto de claves se consultan con Get.
type Snapshot struct {
	PalletDay decimal.Decimal
	values    map[string]string
}

// Get devuelve el valor de la clave, o "" si no existe.
func (s *Snapshot) Get(key string) string {
	return s.values[key]
}

// All devuelve una copia de todas las claves cargadas.
func (s *Snapshot) All() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Loader construye snapshots desde el repositorio de configuración.
type Loader struct {
	repo repository.SettingsRepository
}

// NewLoader construye el loader.
func NewLoader(repo repository.SettingsRepository) *Loader {
	return &Loader{repo: repo}
}

// Load lee todas las claves y parsea palletDay. Una tarifa ausente o no numérica
// es un error de instalación, no un cero silencioso.
func (l *Loader) Load(_ context.Context) (*Snapshot, error) {
	rows, err := l.repo.All()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}

	values := make(map[string]string, len(rows))
	for _, s := range rows {
		values[s.Key] = s.Value
	}

	raw, ok := values[entity.SettingPalletDay]
	if !ok {
		return nil, fmt.Errorf("configuración incompleta: falta la clave %q", entity.SettingPalletDay)
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("parsear %s=%q: %w", entity.SettingPalletDay, raw, err)
	}

	return &Snapshot{PalletDay: rate, values: values}, nil
}
