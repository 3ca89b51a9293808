package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// ErrInsufficientLots: la demanda de un despacho excede el qtyLeft disponible
	// en los lotes abiertos del producto. Es una inconsistencia de datos (el stock
	// por empresa dice que alcanza pero los lotes no) y se reporta como error duro.
	ErrInsufficientLots = errors.New("lotes insuficientes para cubrir la demanda del despacho")

	// ErrInvalidLotDates: dateOut anterior a dateIn en un lote.
	ErrInvalidLotDates = errors.New("la fecha de salida del lote es anterior a la de entrada")
)
