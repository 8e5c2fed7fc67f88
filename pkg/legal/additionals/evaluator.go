// Package additionals classifies prestaciones adicionales y deductivos
// against the statutory percentage limits.
package additionals

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"asesor-legal-be/pkg/legal/probe"
	"asesor-legal-be/pkg/utils"
)

// Kinds of increment evaluated.
const (
	KindObras                = "obras"
	KindBienesServicios      = "bienes_servicios"
	KindDeductivoVinculado   = "deductivo_vinculado"
	KindDeductivoNoVinculado = "deductivo_no_vinculado"
)

// Result is the classification of one increment.
type Result struct {
	Percent    decimal.Decimal `json:"percent"`
	Allowed    bool            `json:"allowed"`
	Decision   string          `json:"decision"`
	ApprovedBy string          `json:"approved_by,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	Citation   string          `json:"citation"`
}

// Evaluate classifies additionalAmount as a percentage of originalAmount for
// the given kind.
func Evaluate(originalAmount, additionalAmount decimal.Decimal, kind string) (*Result, error) {
	if !originalAmount.IsPositive() {
		return nil, fmt.Errorf("el monto original debe ser mayor a cero")
	}
	if additionalAmount.IsNegative() {
		return nil, fmt.Errorf("el monto adicional no puede ser negativo")
	}

	percent := additionalAmount.Div(originalAmount).Mul(decimal.NewFromInt(100)).Round(2)

	switch kind {
	case KindObras:
		return evaluateWorks(percent), nil
	case KindBienesServicios:
		return evaluateGoods(percent), nil
	case KindDeductivoVinculado:
		return evaluateDeductive(percent, true), nil
	case KindDeductivoNoVinculado:
		return evaluateDeductive(percent, false), nil
	default:
		return nil, fmt.Errorf("tipo %q no reconocido; use: %s", kind,
			strings.Join([]string{KindObras, KindBienesServicios, KindDeductivoVinculado, KindDeductivoNoVinculado}, ", "))
	}
}

func evaluateWorks(percent decimal.Decimal) *Result {
	fifteen := decimal.NewFromInt(15)
	fifty := decimal.NewFromInt(50)
	switch {
	case percent.LessThanOrEqual(fifteen):
		return &Result{
			Percent: percent, Allowed: true,
			Decision:   "Adicional de obra procedente",
			ApprovedBy: "Titular de la Entidad",
			Citation:   "Art. 50 de la Ley 32069",
		}
	case percent.LessThanOrEqual(fifty):
		return &Result{
			Percent: percent, Allowed: true,
			Decision:   "Adicional de obra procedente con autorización previa",
			ApprovedBy: "Contraloría General de la República (autorización previa)",
			Notes:      "Entre 15% y 50% se requiere autorización previa del ente de control antes de su ejecución.",
			Citation:   "Art. 50 de la Ley 32069",
		}
	default:
		return &Result{
			Percent: percent, Allowed: false,
			Decision: "No procede: supera el 50% del monto contratado",
			Notes:    "Corresponde resolver el contrato y convocar un nuevo procedimiento por el saldo.",
			Citation: "Art. 50 de la Ley 32069",
		}
	}
}

func evaluateGoods(percent decimal.Decimal) *Result {
	if percent.LessThanOrEqual(decimal.NewFromInt(25)) {
		return &Result{
			Percent: percent, Allowed: true,
			Decision:   "Adicional de bienes/servicios procedente",
			ApprovedBy: "Titular de la Entidad",
			Citation:   "Art. 50 de la Ley 32069",
		}
	}
	return &Result{
		Percent: percent, Allowed: false,
		Decision: "No procede: supera el 25% del monto contratado",
		Notes:    "El exceso requiere una nueva contratación.",
		Citation: "Art. 50 de la Ley 32069",
	}
}

func evaluateDeductive(percent decimal.Decimal, linked bool) *Result {
	limit := decimal.NewFromInt(25)
	label := "deductivo no vinculado"
	if linked {
		limit = decimal.NewFromInt(50)
		label = "deductivo vinculado a adicional"
	}
	if percent.LessThanOrEqual(limit) {
		return &Result{
			Percent: percent, Allowed: true,
			Decision:   "Procede el " + label,
			ApprovedBy: "Titular de la Entidad",
			Citation:   "Art. 50 de la Ley 32069",
		}
	}
	return &Result{
		Percent: percent, Allowed: false,
		Decision: fmt.Sprintf("No procede: el %s supera el %s%% permitido", label, limit.String()),
		Notes:    "Se requiere un nuevo procedimiento de contratación.",
		Citation: "Art. 50 de la Ley 32069",
	}
}

// FormatMarkdown renders the evaluation.
func FormatMarkdown(original, additional decimal.Decimal, r *Result) string {
	var b strings.Builder
	b.WriteString("🏗️ **Evaluación de prestación adicional**\n\n")
	fmt.Fprintf(&b, "- **Monto original:** %s\n", utils.FormatSoles(original))
	fmt.Fprintf(&b, "- **Monto adicional:** %s (**%s%%**)\n", utils.FormatSoles(additional), r.Percent.String())
	fmt.Fprintf(&b, "- **Resultado:** %s\n", r.Decision)
	if r.ApprovedBy != "" {
		fmt.Fprintf(&b, "- **Aprueba:** %s\n", r.ApprovedBy)
	}
	fmt.Fprintf(&b, "- **Base legal:** %s\n", r.Citation)
	if r.Notes != "" {
		b.WriteString("\n📌 " + r.Notes + "\n")
	}
	return b.String()
}

var (
	triggerTokens = []string{
		"adicional de obra", "adicional de", "prestacion adicional", "deductivo",
		"puedo aprobar un adicional", "mayores metrados",
	}
	bypassTokens = []string{
		"que es", "definicion", "explica", "articulo", "en que casos procede",
	}
)

// NewProbe builds the router probe for additional-works evaluation. It accepts
// either two amounts or a single percentage.
func NewProbe() probe.Probe {
	return probe.Func{ProbeName: "additionals", DetectFn: detect}
}

func detect(message string) (string, bool) {
	normalized := probe.Normalize(message)

	if probe.Bypassed(normalized, bypassTokens) {
		return "", false
	}
	if !probe.ContainsAny(normalized, triggerTokens...) {
		return "", false
	}

	kind := KindBienesServicios
	switch {
	case strings.Contains(normalized, "deductivo") && strings.Contains(normalized, "vinculado") &&
		strings.Contains(normalized, "no vinculado"):
		kind = KindDeductivoNoVinculado
	case strings.Contains(normalized, "deductivo no vinculado"):
		kind = KindDeductivoNoVinculado
	case strings.Contains(normalized, "deductivo"):
		kind = KindDeductivoVinculado
	case strings.Contains(normalized, "obra"):
		kind = KindObras
	}

	amounts := probe.ExtractAmounts(message)
	switch {
	case len(amounts) >= 2:
		original := decimal.NewFromFloat(amounts[0])
		additional := decimal.NewFromFloat(amounts[1])
		if additional.GreaterThan(original) {
			original, additional = additional, original
		}
		r, err := Evaluate(original, additional, kind)
		if err != nil {
			return "⚠️ " + err.Error(), true
		}
		return FormatMarkdown(original, additional, r), true

	case len(amounts) == 1 && strings.Contains(normalized, "%"):
		// A bare percentage: evaluate against a nominal base of 100.
		base := decimal.NewFromInt(100)
		additional := decimal.NewFromFloat(amounts[0])
		r, err := Evaluate(base, additional, kind)
		if err != nil {
			return "⚠️ " + err.Error(), true
		}
		return FormatMarkdown(base, additional, r), true
	}
	return "", false
}
