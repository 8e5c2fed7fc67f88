// Package procedures maps (amount, object type) to the selection procedure
// required by the Ley 32069 threshold table.
package procedures

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"asesor-legal-be/pkg/legal/catalog"
	"asesor-legal-be/pkg/legal/probe"
	"asesor-legal-be/pkg/utils"
)

// Decision is the selector output for one (amount, type) pair.
type Decision struct {
	Procedure    string   `json:"procedure"`
	Description  string   `json:"description"`
	Citation     string   `json:"citation"`
	Range        string   `json:"range"`
	Notes        string   `json:"notes,omitempty"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// Select applies the statutory threshold table. Boundary rule: amount at or
// above a threshold falls in the upper bracket; the low side is strict.
func Select(amount decimal.Decimal, objectType string) (*Decision, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("el monto no puede ser negativo")
	}
	if !catalog.IsValidObjectType(objectType) {
		return nil, fmt.Errorf("tipo de objeto inválido %q; use: %s",
			objectType, strings.Join(catalog.ObjectTypes, ", "))
	}

	if amount.LessThanOrEqual(catalog.MinorProcurementLimit) {
		return &Decision{
			Procedure: "Contratación menor a 8 UIT",
			Description: "No requiere procedimiento de selección; se contrata directamente " +
				"observando los principios de la Ley.",
			Citation: "Art. 55 de la Ley 32069",
			Range:    "Hasta " + utils.FormatSoles(catalog.MinorProcurementLimit) + " (8 UIT)",
			Notes:    "La Entidad debe registrar la contratación en la plataforma del OECE.",
		}, nil
	}

	if objectType == catalog.TypeObras {
		return selectWorks(amount), nil
	}
	return selectGoodsServices(amount, objectType), nil
}

func selectGoodsServices(amount decimal.Decimal, objectType string) *Decision {
	upper := "Licitación Pública"
	abbreviated := "Licitación Pública Abreviada"
	if objectType == catalog.TypeServicios || objectType == catalog.TypeConsultoria {
		upper = "Concurso Público"
		abbreviated = "Concurso Público Abreviado"
	}

	if amount.GreaterThanOrEqual(catalog.PublicTenderThreshold) {
		return &Decision{
			Procedure:   upper,
			Description: "Procedimiento competitivo mayor, con etapas completas de consultas, observaciones e integración de bases.",
			Citation:    "Art. 53 de la Ley 32069",
			Range:       "Desde " + utils.FormatSoles(catalog.PublicTenderThreshold),
			Notes:       "Plazos completos: 10 días hábiles para consultas y observaciones.",
		}
	}

	dec := &Decision{
		Procedure:   abbreviated,
		Description: "Procedimiento competitivo con plazos reducidos para montos intermedios.",
		Citation:    "Art. 54",
		Range: "> " + utils.FormatSoles(catalog.MinorProcurementLimit) +
			" y < " + utils.FormatSoles(catalog.PublicTenderThreshold),
	}

	if amount.LessThanOrEqual(catalog.PriceComparisonCeiling) {
		dec.Alternatives = append(dec.Alternatives,
			"Comparación de Precios (hasta "+utils.FormatSoles(catalog.PriceComparisonCeiling)+
				", bienes y servicios de disponibilidad inmediata)")
	}
	dec.Alternatives = append(dec.Alternatives,
		"Subasta Inversa Electrónica (cuando el bien o servicio cuenta con ficha técnica)")

	return dec
}

func selectWorks(amount decimal.Decimal) *Decision {
	switch {
	case amount.GreaterThanOrEqual(catalog.WorksInternationalThreshold):
		return &Decision{
			Procedure:   "Licitación Pública Internacional",
			Description: "Obras de gran envergadura con convocatoria internacional.",
			Citation:    "Art. 53 de la Ley 32069",
			Range:       "Desde " + utils.FormatSoles(catalog.WorksInternationalThreshold),
			Notes:       "JPRD obligatoria con 3 miembros permanentes desde este umbral.",
		}
	case amount.GreaterThanOrEqual(catalog.WorksPublicTenderThreshold):
		return &Decision{
			Procedure:   "Licitación Pública (Obras)",
			Description: "Procedimiento competitivo mayor para ejecución de obras.",
			Citation:    "Art. 53 de la Ley 32069",
			Range: "Desde " + utils.FormatSoles(catalog.WorksPublicTenderThreshold) +
				" y hasta " + utils.FormatSoles(catalog.WorksInternationalThreshold),
		}
	default:
		return &Decision{
			Procedure:   "Licitación Pública Abreviada (Obras)",
			Description: "Procedimiento con plazos reducidos para obras de menor cuantía.",
			Citation:    "Art. 54",
			Range: "> " + utils.FormatSoles(catalog.MinorProcurementLimit) +
				" y < " + utils.FormatSoles(catalog.WorksPublicTenderThreshold),
		}
	}
}

// FormatMarkdown renders the decision the way the conversational channel
// presents every deterministic answer.
func FormatMarkdown(amount decimal.Decimal, objectType string, d *Decision) string {
	var b strings.Builder
	b.WriteString("⚖️ **Selección de procedimiento**\n\n")
	fmt.Fprintf(&b, "- **Monto:** %s\n", utils.FormatSoles(amount))
	fmt.Fprintf(&b, "- **Objeto:** %s\n", objectType)
	fmt.Fprintf(&b, "- **Procedimiento:** %s\n", d.Procedure)
	fmt.Fprintf(&b, "- **Rango aplicable:** %s\n", d.Range)
	fmt.Fprintf(&b, "- **Base legal:** %s\n\n", d.Citation)
	b.WriteString(d.Description + "\n")
	if d.Notes != "" {
		b.WriteString("\n📌 " + d.Notes + "\n")
	}
	if len(d.Alternatives) > 0 {
		b.WriteString("\n**Alternativas aplicables:**\n")
		for _, alt := range d.Alternatives {
			b.WriteString("- " + alt + "\n")
		}
	}
	return b.String()
}

var (
	triggerTokens = []string{
		"que procedimiento", "procedimiento corresponde", "procedimiento aplica",
		"tipo de procedimiento", "tipo de proceso", "que proceso", "como contrato",
		"licitacion o concurso",
	}
	bypassTokens = []string{
		"que es", "definicion", "define", "explica", "diferencia entre",
		"articulo", "cuales son las etapas", "en que consiste",
	}
	// Checked in order so "consultoría de obra" resolves to obras-related
	// consultancy before the generic servicio hint can match.
	objectTypeHints = []struct {
		hint string
		t    string
	}{
		{"consultoria", catalog.TypeConsultoria},
		{"supervision", catalog.TypeConsultoria},
		{"obra", catalog.TypeObras},
		{"construccion", catalog.TypeObras},
		{"servicio", catalog.TypeServicios},
		{"mantenimiento", catalog.TypeServicios},
		{"bien", catalog.TypeBienes},
		{"compra", catalog.TypeBienes},
		{"adquisicion", catalog.TypeBienes},
		{"equipo", catalog.TypeBienes},
	}
)

// NewProbe builds the router probe for procedure selection.
func NewProbe() probe.Probe {
	return probe.Func{ProbeName: "procedures", DetectFn: detect}
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
	if len(amounts) == 0 {
		return "", false
	}

	objectType := catalog.TypeBienes
	for _, h := range objectTypeHints {
		if strings.Contains(normalized, h.hint) {
			objectType = h.t
			break
		}
	}

	amount := decimal.NewFromFloat(amounts[0])
	decision, err := Select(amount, objectType)
	if err != nil {
		return "⚠️ " + err.Error(), true
	}
	return FormatMarkdown(amount, objectType, decision), true
}
