// Package vices implements the hybrid detector for objectionable clauses in
// procurement bases: a rule-based regex scan fused with candidates reported by
// the generative model, validated against the vice catalog and scored.
package vices

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"asesor-legal-be/pkg/legal/catalog"
	"asesor-legal-be/pkg/utils"
)

// Severity levels and candidate sources.
const (
	SeverityAlta  = "ALTA"
	SeverityMedia = "MEDIA"
	SeverityBaja  = "BAJA"

	SourceRules = "RULES"
	SourceAI    = "AI"
)

// DetectedVice is one candidate after fusion, validation and scoring.
type DetectedVice struct {
	Type             string            `json:"type"`
	Description      string            `json:"description"`
	Severity         string            `json:"severity"`
	Source           string            `json:"source"`
	ValidatedByRules bool              `json:"validated_by_rules"`
	LimitCitation    string            `json:"limit_citation,omitempty"`
	Narrative        string            `json:"narrative,omitempty"`
	Indicators       []string          `json:"indicators,omitempty"`
	Jurisprudence    []string          `json:"jurisprudence,omitempty"`
	LimitExceeded    bool              `json:"limit_exceeded"`
	Probability      float64           `json:"acceptance_probability"`
	Extra            map[string]string `json:"extra,omitempty"`
}

var (
	brandRe      = regexp.MustCompile(`(?i)\b(?:marca|modelo|fabricante)\s+([A-ZÁÉÍÓÚÑ][\wÁÉÍÓÚÑáéíóúñ-]+)`)
	experienceRe = regexp.MustCompile(`(?i)experiencia\s+(?:m[ií]nima\s+)?(?:de\s+|por\s+|no\s+menor\s+a\s+)?(?:s/\.?\s*)?(\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d{5,}(?:\.\d+)?)`)
	termRe       = regexp.MustCompile(`(?i)plazo\s+(?:de\s+ejecuci[oó]n\s+)?(?:de\s+|es\s+de\s+|m[aá]ximo\s+de\s+)?(\d{1,4})\s+d[ií]as`)
	penaltyRe    = regexp.MustCompile(`(?i)penalidad\s+(?:diaria\s+)?(?:de[l]?\s+)?(\d+(?:\.\d+)?)\s*%`)
	refValueRe   = regexp.MustCompile(`(?i)valor\s+(?:de\s+)?referencia\s*(?:de|es|asciende\s+a|:)?\s*(?:s/\.?\s*)?(\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d{4,}(?:\.\d+)?)`)
)

// ExtractReferenceValue pulls the stated valor de referencia out of free text.
// Returns zero when absent.
func ExtractReferenceValue(text string) decimal.Decimal {
	m := refValueRe.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return v
}

// DetectByRules runs the regex scan over the bases text and returns raw
// candidates. referenceValue may be zero when unknown.
func DetectByRules(basesText string, referenceValue decimal.Decimal) []DetectedVice {
	var out []DetectedVice

	normalized := utils.NormalizeQuery(basesText)

	for _, m := range brandRe.FindAllStringSubmatch(basesText, -1) {
		if strings.Contains(normalized, "o equivalente") {
			break
		}
		out = append(out, DetectedVice{
			Type:        catalog.ViceMarcaSinEquivalente,
			Description: fmt.Sprintf("Las bases exigen la marca/modelo %q sin admitir equivalentes", m[1]),
			Severity:    SeverityAlta,
			Source:      SourceRules,
			Extra:       map[string]string{"marca": m[1]},
		})
		break
	}

	if m := experienceRe.FindStringSubmatch(basesText); m != nil {
		amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err == nil {
			severity := SeverityMedia
			if referenceValue.IsPositive() &&
				decimal.NewFromFloat(amount).GreaterThan(referenceValue) {
				severity = SeverityAlta
			}
			out = append(out, DetectedVice{
				Type:        catalog.ViceExperienciaExcesiva,
				Description: fmt.Sprintf("Las bases exigen experiencia mínima de %s", utils.FormatAmount(amount)),
				Severity:    severity,
				Source:      SourceRules,
				Extra:       map[string]string{"monto_experiencia": strconv.FormatFloat(amount, 'f', 2, 64)},
			})
		}
	}

	if m := termRe.FindStringSubmatch(basesText); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil && days > 0 && days <= 30 {
			severity := SeverityMedia
			if days <= 15 {
				severity = SeverityAlta
			}
			out = append(out, DetectedVice{
				Type:        catalog.VicePlazoInsuficiente,
				Description: fmt.Sprintf("El plazo de ejecución de %d días resulta insuficiente para la prestación", days),
				Severity:    severity,
				Source:      SourceRules,
				Extra:       map[string]string{"plazo_dias": m[1]},
			})
		}
	}

	if m := penaltyRe.FindStringSubmatch(basesText); m != nil {
		if pct, err := strconv.ParseFloat(m[1], 64); err == nil && pct > 0.5 {
			severity := SeverityMedia
			if pct > 1.0 {
				severity = SeverityAlta
			}
			out = append(out, DetectedVice{
				Type:          catalog.VicePenalidadExcesiva,
				Description:   fmt.Sprintf("Las bases fijan una penalidad diaria de %s%%, superior al esquema reglamentario", m[1]),
				Severity:      severity,
				Source:        SourceRules,
				LimitExceeded: pct > 1.0,
				Extra:         map[string]string{"penalidad_diaria_pct": m[1]},
			})
		}
	}

	return out
}

// ParseAICandidates extracts candidates from the generative model's analysis
// dictionary. It tolerates both `posibles_vicios` and `vicios` keys and skips
// malformed entries.
func ParseAICandidates(analysis map[string]any) []DetectedVice {
	raw, ok := analysis["posibles_vicios"]
	if !ok {
		raw, ok = analysis["vicios"]
	}
	if !ok {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil
	}

	var out []DetectedVice
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}

		label := stringField(entry, "tipo")
		if label == "" {
			label = stringField(entry, "type")
		}
		key, _ := catalog.ResolveViceAlias(utils.NormalizeQuery(label))

		severity := strings.ToUpper(stringField(entry, "severidad"))
		if severity != SeverityAlta && severity != SeverityMedia && severity != SeverityBaja {
			severity = SeverityMedia
		}

		description := stringField(entry, "descripcion")
		if description == "" {
			description = stringField(entry, "description")
		}
		if key == "" && description == "" {
			continue
		}

		out = append(out, DetectedVice{
			Type:        key,
			Description: description,
			Severity:    severity,
			Source:      SourceAI,
		})
	}
	return out
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// Fuse unifies both candidate lists. On a type overlap the rules-sourced
// candidate wins; AI candidates without a recognized type are kept as-is.
func Fuse(rules, ai []DetectedVice) []DetectedVice {
	seen := make(map[string]bool, len(rules))
	out := make([]DetectedVice, 0, len(rules)+len(ai))

	for _, v := range rules {
		seen[v.Type] = true
		out = append(out, v)
	}
	for _, v := range ai {
		if v.Type != "" && seen[v.Type] {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Validate enriches each candidate from the vice catalog, applies the numeric
// experience anchor when a reference value is known, attaches jurisprudence
// and scores the acceptance probability.
func Validate(candidates []DetectedVice, referenceValue decimal.Decimal) []DetectedVice {
	out := make([]DetectedVice, 0, len(candidates))
	for _, v := range candidates {
		if entry, ok := catalog.ViceByType(v.Type); ok {
			v.ValidatedByRules = true
			v.LimitCitation = entry.LimitCitation
			v.Narrative = entry.Narrative
			v.Indicators = entry.Indicators
		}

		if v.Type == catalog.ViceExperienciaExcesiva && referenceValue.IsPositive() {
			if raw, ok := v.Extra["monto_experiencia"]; ok {
				if amount, err := decimal.NewFromString(raw); err == nil {
					ratio := amount.Div(referenceValue).Round(2)
					if v.Extra == nil {
						v.Extra = map[string]string{}
					}
					v.Extra["ratio"] = ratio.String()
					if ratio.GreaterThan(decimal.NewFromInt(1)) {
						v.Severity = SeverityAlta
						v.LimitExceeded = true
					}
				}
			}
		}

		v.Jurisprudence = catalog.JurisprudenceForVice(v.Type, utils.NormalizeQuery(v.Description))
		v.Probability = score(v)
		out = append(out, v)
	}
	return out
}

// score is bounded to 0.95 and monotonic in validation and jurisprudence.
func score(v DetectedVice) float64 {
	p := 0.30
	if v.ValidatedByRules {
		p += 0.30
	}
	if hasRealJurisprudence(v.Jurisprudence) {
		p += 0.20
	}
	switch v.Severity {
	case SeverityAlta:
		p += 0.15
	case SeverityMedia:
		p += 0.05
	}
	if v.LimitExceeded {
		p += 0.10
	}
	if v.Source == SourceRules {
		p += 0.05
	}
	if p > 0.95 {
		p = 0.95
	}
	return p
}

func hasRealJurisprudence(list []string) bool {
	for _, j := range list {
		if j != catalog.JurisprudenceDefaultMiss {
			return true
		}
	}
	return false
}

// Detect runs the full pipeline: rules scan, AI fusion, validation, scoring.
// analysis may be nil when only the rules layer is wanted.
func Detect(basesText string, analysis map[string]any, referenceValue decimal.Decimal) []DetectedVice {
	rules := DetectByRules(basesText, referenceValue)
	ai := ParseAICandidates(analysis)
	return Validate(Fuse(rules, ai), referenceValue)
}
