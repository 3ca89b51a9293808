package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logisur/almacen-api/internal/domain/billing"
	"github.com/logisur/almacen-api/internal/domain/entity"
)

var rate2 = decimal.NewFromInt(2)

func openLot(dateIn time.Time) entity.ReceptionLot {
	return entity.ReceptionLot{ID: "l", DateIn: dateIn, QtyLeft: 10}
}

func closedLot(dateIn, dateOut time.Time) entity.ReceptionLot {
	return entity.ReceptionLot{ID: "l", DateIn: dateIn, DateOut: &dateOut, QtyLeft: 0}
}

// El costo acumulado total cuenta (fin − inicio) días, SIN incluir ambos extremos.
func TestStorageDays_SinMasUno(t *testing.T) {
	in := day(2024, time.January, 10)
	out := day(2024, time.January, 15)

	assert.Equal(t, 5, billing.StorageDays(in, &out, day(2024, time.June, 1)))
}

func TestStorageDays_LoteAbiertoUsaHoy(t *testing.T) {
	in := day(2024, time.January, 10)
	today := day(2024, time.January, 31)

	assert.Equal(t, 21, billing.StorageDays(in, nil, today))
}

func TestStorageDays_NuncaNegativo(t *testing.T) {
	in := day(2024, time.March, 10)
	out := day(2024, time.March, 10)
	assert.Equal(t, 0, billing.StorageDays(in, &out, day(2024, time.March, 10)))

	// Recepción registrada con fecha futura: se trata como 0 días.
	assert.Equal(t, 0, billing.StorageDays(day(2024, time.April, 1), nil, day(2024, time.March, 10)))
}

func TestLotLifetimeCost(t *testing.T) {
	out := day(2024, time.January, 15)
	l := closedLot(day(2024, time.January, 10), out)

	cost := billing.LotLifetimeCost(l, rate2, day(2024, time.June, 1))
	assert.True(t, cost.Equal(decimal.NewFromInt(10)), "5 días × 2 = 10, obtuvo %s", cost)
}

// Escenario de referencia del corte mensual, palletDay=2, mes 01/2024,
// hoy = 2024-01-31:
//
//	Lote A: dateIn=2024-01-10, abierto  → (31−10+1)×2 = 44
//	Lote B: dateIn=2023-12-20, dateOut=2024-01-05 → (05−01+1)×2 = 10
func TestLotMonthCost_EscenarioReferencia(t *testing.T) {
	today := day(2024, time.January, 31)
	w := billing.NewMonthWindow(2024, time.January, today)
	require.True(t, w.Current)

	costA, ok := billing.LotMonthCost(openLot(day(2024, time.January, 10)), w, today, rate2)
	require.True(t, ok)
	assert.True(t, costA.Equal(decimal.NewFromInt(44)), "lote A: esperado 44, obtuvo %s", costA)

	costB, ok := billing.LotMonthCost(closedLot(day(2023, time.December, 20), day(2024, time.January, 5)), w, today, rate2)
	require.True(t, ok)
	assert.True(t, costB.Equal(decimal.NewFromInt(10)), "lote B: esperado 10, obtuvo %s", costB)

	assert.True(t, costA.Add(costB).Equal(decimal.NewFromInt(54)))
}

// Un lote abierto en un mes ya cerrado se cobra hasta fin de mes, no hasta hoy.
func TestLotMonthCost_MesPasadoCortaEnFinDeMes(t *testing.T) {
	today := day(2024, time.March, 15)
	w := billing.NewMonthWindow(2024, time.January, today)
	require.False(t, w.Current)

	cost, ok := billing.LotMonthCost(openLot(day(2024, time.January, 10)), w, today, rate2)
	require.True(t, ok)
	// (31−10+1) × 2
	assert.True(t, cost.Equal(decimal.NewFromInt(44)), "esperado 44, obtuvo %s", cost)
}

func TestLotMonthCost_LoteFueraDeVentana(t *testing.T) {
	today := day(2024, time.March, 15)
	w := billing.NewMonthWindow(2024, time.February, today)

	// Cerrado antes de la ventana
	_, ok := billing.LotMonthCost(closedLot(day(2024, time.January, 1), day(2024, time.January, 20)), w, today, rate2)
	assert.False(t, ok)

	// Ingresó después de la ventana
	_, ok = billing.LotMonthCost(openLot(day(2024, time.March, 1)), w, today, rate2)
	assert.False(t, ok)
}

// Lote que cruza toda la ventana: se cobra el mes completo.
func TestLotMonthCost_CruzaVentanaCompleta(t *testing.T) {
	today := day(2024, time.June, 10)
	w := billing.NewMonthWindow(2024, time.February, today) // 2024 bisiesto: 29 días

	cost, ok := billing.LotMonthCost(closedLot(day(2024, time.January, 1), day(2024, time.March, 20)), w, today, rate2)
	require.True(t, ok)
	assert.True(t, cost.Equal(decimal.NewFromInt(58)), "29 días × 2 = 58, obtuvo %s", cost)
}

func TestMonthWindow_Contains(t *testing.T) {
	w := billing.NewMonthWindow(2024, time.January, day(2024, time.June, 1))

	assert.True(t, w.Contains(day(2024, time.January, 1)))
	assert.True(t, w.Contains(day(2024, time.January, 31)))
	assert.False(t, w.Contains(day(2023, time.December, 31)))
	assert.False(t, w.Contains(day(2024, time.February, 1)))
}
