package repository

import "github.com/logisur/almacen-api/internal/domain/entity"

// SettingsRepository puerto de la tabla clave/valor de configuración de la instalación.
type SettingsRepository interface {
	All() ([]entity.Setting, error)
	Update(key, value string) error
}
