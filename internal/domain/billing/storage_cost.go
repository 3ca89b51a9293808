package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/logisur/almacen-api/internal/domain/entity"
)

// dateOnly normaliza a fecha calendario (medianoche UTC); los costos se calculan
// en días enteros, la hora no participa.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}

// StorageDays días de ocupación de un lote para el costo acumulado total:
// (dateOut ?? today) − dateIn, sin incluir ambos extremos. Nunca negativo.
func StorageDays(dateIn time.Time, dateOut *time.Time, today time.Time) int {
	end := today
	if dateOut != nil {
		end = *dateOut
	}
	d := daysBetween(dateIn, end)
	if d < 0 {
		return 0
	}
	return d
}

// LotLifetimeCost costo acumulado de un lote: días de ocupación × tarifa palletDay.
func LotLifetimeCost(lot entity.ReceptionLot, rate decimal.Decimal, today time.Time) decimal.Decimal {
	return rate.Mul(decimal.NewFromInt(int64(StorageDays(lot.DateIn, lot.DateOut, today))))
}

// MonthWindow ventana de un mes calendario para la deuda mensual.
type MonthWindow struct {
	Start   time.Time
	End     time.Time // último día del mes
	Current bool      // la ventana corresponde al mes en curso
}

// NewMonthWindow construye la ventana del mes solicitado. today decide si la
// ventana es el mes en curso (los lotes abiertos se cortan en today en vez del
// fin de mes).
func NewMonthWindow(year int, month time.Month, today time.Time) MonthWindow {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return MonthWindow{
		Start:   start,
		End:     start.AddDate(0, 1, -1),
		Current: today.Year() == year && today.Month() == month,
	}
}

// Contains indica si la fecha cae dentro de la ventana.
func (w MonthWindow) Contains(d time.Time) bool {
	day := dateOnly(d)
	return !day.Before(w.Start) && !day.After(w.End)
}

// LotMonthCost costo de un lote dentro de la ventana mensual; ok=false si el lote
// no intersecta la ventana. El tramo efectivo es
// [max(dateIn, inicio), min(dateOut ?? (today si es el mes en curso, si no fin de
// mes), fin)] y se cobra con días inclusivos en ambos extremos (+1).
//
// El +1 aplica solo al corte mensual; el costo acumulado total (StorageDays) no
// lo lleva. No unificar las dos fórmulas: cambiaría montos facturados en silencio.
func LotMonthCost(lot entity.ReceptionLot, w MonthWindow, today time.Time, rate decimal.Decimal) (decimal.Decimal, bool) {
	in := dateOnly(lot.DateIn)
	if in.After(w.End) {
		return decimal.Zero, false
	}

	var out time.Time
	switch {
	case lot.DateOut != nil:
		out = dateOnly(*lot.DateOut)
		if out.Before(w.Start) {
			return decimal.Zero, false
		}
	case w.Current:
		out = dateOnly(today)
	default:
		out = w.End
	}

	effStart := in
	if effStart.Before(w.Start) {
		effStart = w.Start
	}
	effEnd := out
	if effEnd.After(w.End) {
		effEnd = w.End
	}
	if effEnd.Before(effStart) {
		return decimal.Zero, false
	}

	days := daysBetween(effStart, effEnd) + 1
	return rate.Mul(decimal.NewFromInt(int64(days))), true
}
