package inventory

import "github.com/shopspring/decimal"

// Estados de nivel de stock para el tablero de operaciones.
const (
	StockStatusCritical = "critical"
	StockStatusLow      = "low"
	StockStatusGood     = "good"
	StockStatusNormal   = "normal"
)

var (
	half         = decimal.NewFromFloat(0.5)
	oneAndHalf   = decimal.NewFromFloat(1.5)
	two          = decimal.NewFromInt(2)
	defaultMax   = decimal.NewFromInt(100)
	daysInWindow = decimal.NewFromInt(30)
)

// ClassifyStock clasifica el nivel de stock contra el mínimo configurado.
// El orden de los cortes importa: critical si stock <= 50% del mínimo,
// low si stock <= mínimo, good si stock > 150% del mínimo, normal en el resto.
func ClassifyStock(current, minLevel decimal.Decimal) string {
	switch {
	case current.LessThanOrEqual(minLevel.Mul(half)):
		return StockStatusCritical
	case current.LessThanOrEqual(minLevel):
		return StockStatusLow
	case current.GreaterThan(minLevel.Mul(oneAndHalf)):
		return StockStatusGood
	default:
		return StockStatusNormal
	}
}

// EffectiveMaxLevel devuelve el nivel máximo a usar en porcentajes de ocupación.
// Si no hay máximo configurado usa el doble del mínimo, y 100 si tampoco hay
// mínimo, para evitar divisiones por cero en los despliegues.
func EffectiveMaxLevel(maxLevel, minLevel decimal.Decimal) decimal.Decimal {
	if maxLevel.GreaterThan(decimal.Zero) {
		return maxLevel
	}
	if minLevel.GreaterThan(decimal.Zero) {
		return minLevel.Mul(two)
	}
	return defaultMax
}

// AverageDailyUsage promedio de consumo diario: suma de salidas (OUT) de los
// últimos 30 días dividida entre 30.
func AverageDailyUsage(outTotal30d decimal.Decimal) decimal.Decimal {
	return outTotal30d.Div(daysInWindow)
}
