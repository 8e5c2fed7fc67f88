package vices

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"asesor-legal-be/pkg/legal/catalog"
	"asesor-legal-be/pkg/legal/probe"
	"asesor-legal-be/pkg/utils"
)

// Proposal is the DICE / DEBE DECIR pair of a formal observation.
type Proposal struct {
	Dice      string `json:"dice"`
	DebeDecir string `json:"debe_decir"`
}

// Observation is one formal filing draft derived from a detected vice.
type Observation struct {
	Number        int      `json:"number"`
	Aspect        string   `json:"aspect"`
	Foundation    string   `json:"foundation"`
	LegalBasis    string   `json:"legal_basis"`
	Jurisprudence []string `json:"jurisprudence"`
	Severity      string   `json:"severity"`
	Probability   float64  `json:"probability"`
	Proposal      Proposal `json:"proposal"`
}

// Summary aggregates the analysis by probability tier.
type Summary struct {
	Total           int  `json:"total"`
	HighViability   int  `json:"high_viability"`   // probability ≥ 0.7
	MediumViability int  `json:"medium_viability"` // 0.6 ≤ probability < 0.7
	LowViability    int  `json:"low_viability"`    // probability < 0.6
	RecommendFiling bool `json:"recommend_filing"`
}

// Report is the full hybrid-detector output.
type Report struct {
	Vices        []DetectedVice `json:"vices"`
	Observations []Observation  `json:"observations"`
	Summary      Summary        `json:"summary"`
}

const observationThreshold = 0.6

// SynthesizeObservations drafts a formal observation for every vice whose
// probability reaches the filing threshold.
func SynthesizeObservations(detected []DetectedVice, referenceValue decimal.Decimal) []Observation {
	var out []Observation
	for _, v := range detected {
		if v.Probability < observationThreshold {
			continue
		}

		foundation := v.Narrative
		if foundation == "" {
			foundation = v.Description
		}

		out = append(out, Observation{
			Number:        len(out) + 1,
			Aspect:        aspectLabel(v),
			Foundation:    foundation,
			LegalBasis:    v.LimitCitation,
			Jurisprudence: v.Jurisprudence,
			Severity:      v.Severity,
			Probability:   v.Probability,
			Proposal:      buildProposal(v, referenceValue),
		})
	}
	return out
}

func aspectLabel(v DetectedVice) string {
	if entry, ok := catalog.ViceByType(v.Type); ok {
		return entry.Description
	}
	return v.Description
}

func buildProposal(v DetectedVice, referenceValue decimal.Decimal) Proposal {
	p := Proposal{Dice: v.Description}
	switch v.Type {
	case catalog.ViceMarcaSinEquivalente:
		p.DebeDecir = "Agregar la fórmula \"o equivalente\" a toda mención de marca, modelo o fabricante"
	case catalog.ViceExperienciaExcesiva:
		if referenceValue.IsPositive() {
			suggested := referenceValue.Mul(decimal.NewFromFloat(0.8)).Round(2)
			p.DebeDecir = fmt.Sprintf("Reducir la experiencia mínima exigida a %s (80%% del valor de referencia)",
				utils.FormatSoles(suggested))
		} else {
			p.DebeDecir = "Reducir la experiencia mínima a un monto no mayor al valor de referencia"
		}
	case catalog.VicePlazoInsuficiente:
		p.DebeDecir = "Ampliar el plazo de ejecución a uno compatible con el alcance de la prestación"
	case catalog.VicePenalidadExcesiva:
		p.DebeDecir = "Ajustar la penalidad diaria a la fórmula reglamentaria con tope del 10% del monto contractual"
	default:
		p.DebeDecir = "Suprimir o reformular el requisito para garantizar la libre concurrencia"
	}
	return p
}

// Summarize counts vices per viability tier.
func Summarize(detected []DetectedVice) Summary {
	s := Summary{Total: len(detected)}
	for _, v := range detected {
		switch {
		case v.Probability >= 0.7:
			s.HighViability++
		case v.Probability >= observationThreshold:
			s.MediumViability++
		default:
			s.LowViability++
		}
	}
	s.RecommendFiling = s.HighViability > 0
	return s
}

// Analyze runs detection, observation synthesis and summary in one pass.
func Analyze(basesText string, analysis map[string]any, referenceValue decimal.Decimal) *Report {
	detected := Detect(basesText, analysis, referenceValue)
	return &Report{
		Vices:        detected,
		Observations: SynthesizeObservations(detected, referenceValue),
		Summary:      Summarize(detected),
	}
}

// FormatMarkdown renders the full report.
func FormatMarkdown(r *Report) string {
	var b strings.Builder
	b.WriteString("🔍 **Análisis de vicios en las bases**\n\n")

	if r.Summary.Total == 0 {
		b.WriteString("No se detectaron vicios en el texto analizado.\n")
		return b.String()
	}

	for _, v := range r.Vices {
		fmt.Fprintf(&b, "**[%s] %s** (probabilidad de acogida: %.0f%%)\n\n", v.Severity, v.Description, v.Probability*100)
		if v.Narrative != "" {
			b.WriteString(v.Narrative + "\n\n")
		}
		if v.LimitCitation != "" {
			fmt.Fprintf(&b, "- Base legal: %s\n", v.LimitCitation)
		}
		if ratio, ok := v.Extra["ratio"]; ok {
			fmt.Fprintf(&b, "- Ratio experiencia / valor de referencia: %s\n", ratio)
		}
		b.WriteString("\n")
	}

	if len(r.Observations) > 0 {
		b.WriteString("---\n\n📝 **Observaciones sugeridas**\n\n")
		for _, o := range r.Observations {
			fmt.Fprintf(&b, "**Observación N° %d: %s**\n\n", o.Number, o.Aspect)
			fmt.Fprintf(&b, "- **Fundamento:** %s\n", o.Foundation)
			if o.LegalBasis != "" {
				fmt.Fprintf(&b, "- **Base legal:** %s\n", o.LegalBasis)
			}
			for _, j := range o.Jurisprudence {
				fmt.Fprintf(&b, "- **Jurisprudencia:** %s\n", j)
			}
			fmt.Fprintf(&b, "- **DICE:** %s\n", o.Proposal.Dice)
			fmt.Fprintf(&b, "- **DEBE DECIR:** %s\n\n", o.Proposal.DebeDecir)
		}
	}

	fmt.Fprintf(&b, "📊 **Resumen:** %d vicio(s): %d de alta viabilidad, %d de viabilidad media, %d de baja.\n",
		r.Summary.Total, r.Summary.HighViability, r.Summary.MediumViability, r.Summary.LowViability)
	if r.Summary.RecommendFiling {
		b.WriteString("\n✅ Se recomienda **presentar observaciones** dentro del plazo de la etapa de consultas y observaciones.\n")
	}
	return b.String()
}

var (
	triggerTokens = []string{
		"vicio", "vicios", "observacion a las bases", "observaciones a las bases",
		"revisa estas bases", "analiza estas bases", "direccionamiento",
	}
	bypassTokens = []string{
		"que es un vicio", "definicion", "explica", "cuando se presentan observaciones",
	}
)

// NewProbe builds the router probe for inline bases review. It runs the rules
// layer only; the document-analysis endpoint adds the generative layer.
func NewProbe() probe.Probe {
	return probe.Func{ProbeName: "observations", DetectFn: detect}
}

func detect(message string) (string, bool) {
	normalized := probe.Normalize(message)

	if probe.Bypassed(normalized, bypassTokens) {
		return "", false
	}
	if !probe.ContainsAny(normalized, triggerTokens...) {
		return "", false
	}

	report := Analyze(message, nil, ExtractReferenceValue(message))
	if report.Summary.Total == 0 {
		return "", false
	}
	return FormatMarkdown(report), true
}
