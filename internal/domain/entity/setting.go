package entity

// Claves de configuración de la instalación usadas por el núcleo.
const (
	SettingPalletDay = "palletDay" // tarifa diaria de almacenamiento por paleta
	SettingName      = "name"
	SettingEmail     = "email"
	SettingPhone     = "phone"
	SettingAddress   = "address"
)

// Setting par clave/valor de configuración global de la instalación.
// palletDay se guarda como string y se parsea a decimal al cargar el snapshot.
type Setting struct {
	ID    string
	Key   string
	Value string
}
