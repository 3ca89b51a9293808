package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/logisur/almacen-api/internal/domain"
	"github.com/logisur/almacen-api/internal/domain/entity"
	"github.com/logisur/almacen-api/internal/domain/repository"
)

// SettingsUseCase lectura y edición de la configuración de la instalación.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso de configuración.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// All devuelve todas las claves de configuración.
func (uc *SettingsUseCase) All() (map[string]string, error) {
	rows, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, s := range rows {
		out[s.Key] = s.Value
	}
	return out, nil
}

// Update cambia el valor de una clave. palletDay debe ser un decimal no
// negativo; el resto de claves se guardan tal cual.
func (uc *SettingsUseCase) Update(key, value string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}
	if key == entity.SettingPalletDay {
		rate, err := decimal.NewFromString(value)
		if err != nil || rate.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	return uc.repo.Update(key, value)
}
