package catalog

import "github.com/shopspring/decimal"

// Statutory constants for Ley 32069 and its regulation, 2026 values.
// Monetary figures are in soles.
var (
	// UIT is the unit of reference used across procurement thresholds.
	UIT = decimal.NewFromInt(5500)

	// MinorProcurementLimit is 8 UIT; below or at this amount no selection
	// procedure applies (contratación menor).
	MinorProcurementLimit = UIT.Mul(decimal.NewFromInt(8)) // 44,000

	// Thresholds for bienes/servicios/consultoría.
	PublicTenderThreshold  = decimal.NewFromInt(485_000)
	PriceComparisonCeiling = decimal.NewFromInt(100_000)

	// Thresholds for obras.
	WorksInternationalThreshold = decimal.NewFromInt(79_000_000)
	WorksPublicTenderThreshold  = decimal.NewFromInt(5_000_000)

	// Penalty rules.
	PenaltyCapRate = decimal.NewFromFloat(0.10)

	// Appeal rules.
	AppealEntityThreshold = decimal.NewFromInt(485_000) // below: Entity resolves
	AppealFeeRate         = decimal.NewFromFloat(0.03)
	AppealFeeMinEntity    = decimal.NewFromInt(150)
	AppealFeeMinTribunal  = decimal.NewFromInt(1100)
	AppealFilingDays      = 8  // business days
	AppealEntityDays      = 12 // business days to resolve
	AppealTribunalDays    = 20 // business days to resolve

	// JPRD (junta de prevención y resolución de disputas) is mandatory for
	// works contracts at or above this amount; 3 permanent members.
	JPRDMandatoryThreshold = decimal.NewFromInt(79_000_000)
)

// Contract object types accepted by the calculators.
const (
	TypeBienes      = "bienes"
	TypeServicios   = "servicios"
	TypeConsultoria = "consultoria"
	TypeObras       = "obras"
)

// ObjectTypes lists the valid object-type keys in catalog order.
var ObjectTypes = []string{TypeBienes, TypeServicios, TypeConsultoria, TypeObras}

// IsValidObjectType reports whether t is a known contract object type.
func IsValidObjectType(t string) bool {
	switch t {
	case TypeBienes, TypeServicios, TypeConsultoria, TypeObras:
		return true
	}
	return false
}
