// Package deadlines computes statutory deadlines in business or calendar days
// over the national holiday calendar.
package deadlines

import (
	"fmt"
	"strings"
	"time"

	"asesor-legal-be/pkg/legal/catalog"
	"asesor-legal-be/pkg/legal/probe"
)

// Result echoes the input and carries the computed final date.
type Result struct {
	Start        time.Time            `json:"start"`
	Days         int                  `json:"days"`
	Kind         catalog.DeadlineKind `json:"kind"`
	End          time.Time            `json:"end"`
	WeekdayLabel string               `json:"weekday"`
}

const dateErrFormats = "formatos aceptados: DD/MM/YYYY o YYYY-MM-DD"

// ParseDate accepts DD/MM/YYYY or YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"02/01/2006", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida %q; %s", s, dateErrFormats)
}

// AddBusinessDays advances one calendar day at a time, counting only días
// hábiles (Monday–Friday outside the holiday set) until n are consumed.
func AddBusinessDays(start time.Time, n int) time.Time {
	t := start
	for remaining := n; remaining > 0; {
		t = t.AddDate(0, 0, 1)
		if catalog.IsBusinessDay(t) {
			remaining--
		}
	}
	return t
}

// Compute resolves a deadline of n days of the given kind from start.
func Compute(start time.Time, days int, kind catalog.DeadlineKind) (*Result, error) {
	if days < 0 {
		return nil, fmt.Errorf("la cantidad de días no puede ser negativa")
	}

	var end time.Time
	switch kind {
	case catalog.DeadlineBusiness:
		end = AddBusinessDays(start, days)
	case catalog.DeadlineCalendar:
		end = start.AddDate(0, 0, days)
	default:
		return nil, fmt.Errorf("tipo de plazo inválido %q; use: habiles o calendario", kind)
	}

	return &Result{
		Start:        start,
		Days:         days,
		Kind:         kind,
		End:          end,
		WeekdayLabel: catalog.WeekdaySpanish(end),
	}, nil
}

// ComputeNamed resolves a symbolic deadline key from the statutory table.
func ComputeNamed(key string, start time.Time) (*Result, catalog.NamedDeadline, error) {
	entry, ok := catalog.NamedDeadlineByKey(key)
	if !ok {
		return nil, catalog.NamedDeadline{}, fmt.Errorf(
			"plazo %q no reconocido; claves válidas: %s",
			key, strings.Join(catalog.NamedDeadlineKeys(), ", "))
	}
	result, err := Compute(start, entry.Days, entry.Kind)
	if err != nil {
		return nil, catalog.NamedDeadline{}, err
	}
	return result, entry, nil
}

func kindLabel(kind catalog.DeadlineKind) string {
	if kind == catalog.DeadlineBusiness {
		return "días hábiles"
	}
	return "días calendario"
}

// FormatMarkdown renders a deadline computation.
func FormatMarkdown(r *Result) string {
	var b strings.Builder
	b.WriteString("📅 **Cómputo de plazo**\n\n")
	fmt.Fprintf(&b, "- **Fecha de inicio:** %s\n", r.Start.Format("02/01/2006"))
	fmt.Fprintf(&b, "- **Plazo:** %d %s\n", r.Days, kindLabel(r.Kind))
	fmt.Fprintf(&b, "- **Vence:** **%s** (%s)\n", r.End.Format("02/01/2006"), r.WeekdayLabel)
	if r.Kind == catalog.DeadlineBusiness {
		b.WriteString("\nEl cómputo excluye sábados, domingos y feriados nacionales.\n")
	}
	return b.String()
}

// FormatNamedMarkdown renders a named-deadline computation with its citation.
func FormatNamedMarkdown(r *Result, entry catalog.NamedDeadline) string {
	var b strings.Builder
	b.WriteString("📅 **" + entry.Description + "**\n\n")
	fmt.Fprintf(&b, "- **Plazo legal:** %d %s (%s)\n", entry.Days, kindLabel(entry.Kind), entry.Citation)
	fmt.Fprintf(&b, "- **Desde:** %s\n", r.Start.Format("02/01/2006"))
	fmt.Fprintf(&b, "- **Vence:** **%s** (%s)\n", r.End.Format("02/01/2006"), r.WeekdayLabel)
	return b.String()
}

var (
	triggerTokens = []string{
		"dias habiles", "dias calendario", "hasta cuando", "hasta que fecha",
		"vence", "computo de plazo", "contar desde", "fecha limite",
	}
	bypassTokens = []string{
		"que es", "definicion", "explica", "articulo", "diferencia entre",
		"que plazos existen",
	}
	namedHints = []struct {
		hint string
		key  string
	}{
		{"apelar", "apelacion"},
		{"apelacion", "apelacion"},
		{"suscribir el contrato", "suscripcion_contrato"},
		{"firmar el contrato", "suscripcion_contrato"},
		{"ampliacion de plazo", "ampliacion_plazo"},
		{"resolver el contrato", "resolucion_contrato"},
		{"liquidacion", "liquidacion_obra"},
		{"arbitraje", "inicio_arbitraje"},
		{"conformidad", "conformidad_bienes"},
	}
)

// NewProbe builds the router probe for deadline arithmetic. A date plus either
// an explicit day count or a recognizable named deadline short-circuits.
func NewProbe() probe.Probe {
	return probe.Func{ProbeName: "deadlines", DetectFn: detect}
}

func detect(message string) (string, bool) {
	normalized := probe.Normalize(message)

	if probe.Bypassed(normalized, bypassTokens) {
		return "", false
	}

	dates := probe.ExtractDates(message)
	if len(dates) == 0 {
		return "", false
	}

	// Named deadline ("¿hasta cuándo puedo apelar si me notificaron el X?").
	for _, h := range namedHints {
		if strings.Contains(normalized, h.hint) {
			start, err := ParseDate(dates[0])
			if err != nil {
				return "⚠️ " + err.Error(), true
			}
			result, entry, err := ComputeNamed(h.key, start)
			if err != nil {
				return "⚠️ " + err.Error(), true
			}
			return FormatNamedMarkdown(result, entry), true
		}
	}

	if !probe.ContainsAny(normalized, triggerTokens...) {
		return "", false
	}

	amounts := probe.ExtractAmounts(message)
	if len(amounts) == 0 {
		return "", false
	}

	start, err := ParseDate(dates[0])
	if err != nil {
		return "⚠️ " + err.Error(), true
	}

	kind := catalog.DeadlineBusiness
	if strings.Contains(normalized, "calendario") {
		kind = catalog.DeadlineCalendar
	}

	result, err := Compute(start, int(amounts[0]), kind)
	if err != nil {
		return "⚠️ " + err.Error(), true
	}
	return FormatMarkdown(result), true
}
