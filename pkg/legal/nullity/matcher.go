// Package nullity matches case descriptions against the nullity causals of the
// procurement law and computes the prescription window.
package nullity

import (
	"fmt"
	"strings"
	"time"

	"asesor-legal-be/pkg/legal/catalog"
	"asesor-legal-be/pkg/legal/deadlines"
	"asesor-legal-be/pkg/legal/probe"
)

// Match pairs a causal with the keywords that triggered it.
type Match struct {
	Causal          catalog.NullityCausal `json:"causal"`
	MatchedKeywords []string              `json:"matched_keywords"`
}

// Prescription is the computed window to declare nullity of office.
type Prescription struct {
	ConsentDate time.Time `json:"consent_date"`
	Deadline    time.Time `json:"deadline"`
	Expired     bool      `json:"expired"`
}

// MatchCausals returns every causal whose keywords appear in the description,
// in catalog order.
func MatchCausals(description string) []Match {
	normalized := probe.Normalize(description)

	var matches []Match
	for _, causal := range catalog.NullityCausals() {
		var hit []string
		for _, kw := range causal.Keywords {
			if strings.Contains(normalized, kw) {
				hit = append(hit, kw)
			}
		}
		if len(hit) > 0 {
			matches = append(matches, Match{Causal: causal, MatchedKeywords: hit})
		}
	}
	return matches
}

// ComputePrescription applies the 3-year window from the consent of the buena
// pro against `now`.
func ComputePrescription(consentDate, now time.Time) *Prescription {
	deadline := consentDate.AddDate(catalog.NullityPrescriptionYears, 0, 0)
	return &Prescription{
		ConsentDate: consentDate,
		Deadline:    deadline,
		Expired:     now.After(deadline),
	}
}

// FormatMarkdown renders the causal matches and, when a consent date is known,
// the prescription window.
func FormatMarkdown(matches []Match, prescription *Prescription) string {
	var b strings.Builder
	b.WriteString("⚖️ **Análisis de nulidad (Art. 45 de la Ley 32069)**\n\n")

	if len(matches) == 0 {
		b.WriteString("No se identificó ninguna causal de nulidad en el caso descrito. ")
		b.WriteString("Las causales previstas son:\n\n")
		for _, c := range catalog.NullityCausals() {
			fmt.Fprintf(&b, "%d. %s\n", c.Ordinal, c.Summary)
		}
		return b.String()
	}

	for _, m := range matches {
		fmt.Fprintf(&b, "**Causal %d: %s**\n\n", m.Causal.Ordinal, m.Causal.Summary)
		b.WriteString(m.Causal.Description + "\n\n")
		fmt.Fprintf(&b, "- **Consecuencia:** %s\n", m.Causal.Consequence)
		fmt.Fprintf(&b, "- **Prescripción:** %s\n\n", m.Causal.PrescriptionText)
	}

	if prescription != nil {
		fmt.Fprintf(&b, "📅 Consentimiento de la buena pro: %s. La nulidad de oficio puede declararse hasta el **%s**",
			prescription.ConsentDate.Format("02/01/2006"), prescription.Deadline.Format("02/01/2006"))
		if prescription.Expired {
			b.WriteString(": **el plazo ya venció**.\n")
		} else {
			b.WriteString(".\n")
		}
	}
	return b.String()
}

var (
	triggerTokens = []string{
		"nulidad", "nulo", "anular", "declarar nula", "vicio de nulidad",
	}
	bypassTokens = []string{
		"que es la nulidad", "definicion", "explica", "cuantas causales",
	}
)

// NewProbe builds the router probe for nullity matching.
func NewProbe() probe.Probe {
	return probe.Func{ProbeName: "nullity", DetectFn: detect}
}

func detect(message string) (string, bool) {
	normalized := probe.Normalize(message)

	if probe.Bypassed(normalized, bypassTokens) {
		return "", false
	}
	if !probe.ContainsAny(normalized, triggerTokens...) {
		return "", false
	}

	matches := MatchCausals(message)
	if len(matches) == 0 {
		return "", false
	}

	var prescription *Prescription
	if dates := probe.ExtractDates(message); len(dates) > 0 {
		if consent, err := deadlines.ParseDate(dates[0]); err == nil {
			prescription = ComputePrescription(consent, time.Now())
		}
	}
	return FormatMarkdown(matches, prescription), true
}
