// Package penalties applies the daily-penalty formula of the Reglamento
// (Art. 162): penalidad diaria = (0.10 × monto) / (F × plazo en días), with
// the accumulated penalty capped at 10% of the contract amount.
package penalties

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"asesor-legal-be/pkg/legal/catalog"
	"asesor-legal-be/pkg/legal/probe"
	"asesor-legal-be/pkg/utils"
)

// Result carries the computed penalty figures, rounded to 2 decimals.
type Result struct {
	Factor              decimal.Decimal `json:"factor"`
	DailyPenalty        decimal.Decimal `json:"daily_penalty"`
	Accumulated         decimal.Decimal `json:"accumulated"`
	Cap                 decimal.Decimal `json:"cap"`
	CapReached          bool            `json:"cap_reached"`
	WarrantsTermination bool            `json:"warrants_termination"`
}

// Factor selects F per contract type and term length: obras (y consultoría de
// obras, que se ingresa como "obras") siempre 0.40; los demás tipos usan 0.25
// para plazos de hasta 60 días y 0.40 en adelante.
func Factor(contractType string, termDays int) decimal.Decimal {
	if contractType == catalog.TypeObras {
		return decimal.NewFromFloat(0.40)
	}
	if termDays <= 60 {
		return decimal.NewFromFloat(0.25)
	}
	return decimal.NewFromFloat(0.40)
}

// Calculate runs the formula. amount and termDays must be positive and
// delayDays non-negative; contractType must be a catalog key.
func Calculate(amount decimal.Decimal, termDays, delayDays int, contractType string) (*Result, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("el monto del contrato debe ser mayor a cero")
	}
	if termDays <= 0 {
		return nil, fmt.Errorf("el plazo en días debe ser mayor a cero")
	}
	if delayDays < 0 {
		return nil, fmt.Errorf("los días de atraso no pueden ser negativos")
	}
	if !catalog.IsValidObjectType(contractType) {
		return nil, fmt.Errorf("tipo de contrato inválido %q; use: %s",
			contractType, strings.Join(catalog.ObjectTypes, ", "))
	}

	f := Factor(contractType, termDays)
	cap := amount.Mul(catalog.PenaltyCapRate).Round(2)

	// The accumulation multiplies the unrounded daily quotient; only the
	// reported figures are rounded to the cent.
	daily := catalog.PenaltyCapRate.Mul(amount).
		Div(f.Mul(decimal.NewFromInt(int64(termDays))))

	accumulated := daily.Mul(decimal.NewFromInt(int64(delayDays))).Round(2)
	daily = daily.Round(2)
	capReached := accumulated.GreaterThanOrEqual(cap)
	if capReached {
		accumulated = cap
	}

	return &Result{
		Factor:              f,
		DailyPenalty:        daily,
		Accumulated:         accumulated,
		Cap:                 cap,
		CapReached:          capReached,
		WarrantsTermination: capReached,
	}, nil
}

// FormatMarkdown renders the penalty computation for the conversational channel.
func FormatMarkdown(amount decimal.Decimal, termDays, delayDays int, contractType string, r *Result) string {
	var b strings.Builder
	b.WriteString("🧮 **Cálculo de penalidad por mora**\n\n")
	fmt.Fprintf(&b, "- **Monto del contrato:** %s\n", utils.FormatSoles(amount))
	fmt.Fprintf(&b, "- **Plazo:** %d días | **Atraso:** %d días | **Tipo:** %s\n", termDays, delayDays, contractType)
	fmt.Fprintf(&b, "- **Factor F:** %s\n\n", r.Factor.String())
	fmt.Fprintf(&b, "Penalidad diaria = (0.10 × %s) / (%s × %d) = **%s**\n\n",
		utils.FormatSoles(amount), r.Factor.String(), termDays, utils.FormatSoles(r.DailyPenalty))
	fmt.Fprintf(&b, "Penalidad acumulada (%d días): **%s**\n", delayDays, utils.FormatSoles(r.Accumulated))
	fmt.Fprintf(&b, "Tope máximo (10%%): %s\n", utils.FormatSoles(r.Cap))
	if r.WarrantsTermination {
		b.WriteString("\n🚨 **Se alcanzó el tope del 10%**: la Entidad puede resolver el contrato " +
			"por acumulación del monto máximo de penalidad (Art. 164 del Reglamento).\n")
	} else {
		b.WriteString("\n✅ La penalidad acumulada está por debajo del tope del 10%.\n")
	}
	return b.String()
}

var (
	triggerTokens = []string{
		"penalidad", "penalidades", "mora", "dias de atraso", "dias de retraso",
		"se atraso", "atraso de",
	}
	bypassTokens = []string{
		"que es", "definicion", "explica", "articulo", "como se aplica",
		"en que casos", "tipos de penalidad",
	}

	delayRe = regexp.MustCompile(`(?i)(\d{1,4})\s*d[ií]as?\s+de\s+(?:atraso|retraso|mora)|(?:atraso|retraso|mora)\s+de\s+(\d{1,4})\s*d[ií]as?`)
	termRe  = regexp.MustCompile(`(?i)(?:plazo\s+(?:de\s+)?|\ba\s+)(\d{1,4})\s*d[ií]as`)
)

// NewProbe builds the router probe for the penalty calculator. It needs an
// amount, a term and the delay; with fewer numbers it declines so the query
// falls through to the retrieval layer.
func NewProbe() probe.Probe {
	return probe.Func{ProbeName: "penalties", DetectFn: detect}
}

func detect(message string) (string, bool) {
	normalized := probe.Normalize(message)

	if probe.Bypassed(normalized, bypassTokens) {
		return "", false
	}
	if !probe.ContainsAny(normalized, triggerTokens...) {
		return "", false
	}

	amounts := probe.ExtractAmounts(message)
	if len(amounts) < 3 {
		return "", false
	}

	// The contract amount is the largest number; term and delay are anchored
	// on their surrounding words, falling back to order of appearance.
	amount, rest := splitLargest(amounts)
	if len(rest) < 2 {
		return "", false
	}
	termDays := int(rest[0])
	delayDays := int(rest[1])

	if m := delayRe.FindStringSubmatch(message); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		if v, err := strconv.Atoi(raw); err == nil {
			delayDays = v
		}
	}
	if m := termRe.FindStringSubmatch(message); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			termDays = v
		}
	}

	contractType := catalog.TypeServicios
	switch {
	case strings.Contains(normalized, "obra"):
		contractType = catalog.TypeObras
	case strings.Contains(normalized, "consultoria"):
		contractType = catalog.TypeConsultoria
	case strings.Contains(normalized, "bien"):
		contractType = catalog.TypeBienes
	}

	result, err := Calculate(decimal.NewFromFloat(amount), termDays, delayDays, contractType)
	if err != nil {
		return "⚠️ " + err.Error(), true
	}
	return FormatMarkdown(decimal.NewFromFloat(amount), termDays, delayDays, contractType, result), true
}

func splitLargest(amounts []float64) (float64, []float64) {
	maxIdx := 0
	for i, v := range amounts {
		if v > amounts[maxIdx] {
			maxIdx = i
		}
	}
	rest := make([]float64, 0, len(amounts)-1)
	for i, v := range amounts {
		if i != maxIdx {
			rest = append(rest, v)
		}
	}
	return amounts[maxIdx], rest
}
