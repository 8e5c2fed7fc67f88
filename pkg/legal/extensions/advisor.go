// Package extensions advises on ampliaciones de plazo and resolución de
// contrato: which causal applies and which procedural steps follow.
package extensions

import (
	"fmt"
	"strings"
	"time"

	"asesor-legal-be/pkg/legal/deadlines"
	"asesor-legal-be/pkg/legal/probe"
)

// Request kinds.
const (
	KindAmpliacion = "ampliacion_plazo"
	KindResolucion = "resolucion_contrato"
)

// Causal describes one ground for the request plus the steps to pursue it.
type Causal struct {
	Key      string   `json:"key"`
	Kind     string   `json:"kind"`
	Title    string   `json:"title"`
	Detail   string   `json:"detail"`
	Steps    []string `json:"steps"`
	Citation string   `json:"citation"`
	keywords []string
}

var causals = []Causal{
	{
		Key:   "atraso_no_imputable",
		Kind:  KindAmpliacion,
		Title: "Atrasos o paralizaciones no imputables al contratista",
		Detail: "Eventos ajenos a la voluntad del contratista que afectan la ruta crítica " +
			"de la prestación: lluvias extraordinarias, bloqueos, demoras de terceros.",
		Steps: []string{
			"Anotar el hecho en el cuaderno de obra o comunicarlo por escrito a la Entidad",
			"Solicitar la ampliación dentro de los 8 días hábiles de finalizado el hecho generador",
			"Cuantificar el número de días solicitados y sustentar la afectación de la ruta crítica",
			"La Entidad resuelve en 8 días hábiles; el silencio aprueba la solicitud",
		},
		Citation: "Art. 158 del Reglamento de la Ley 32069",
		keywords: []string{"lluvia", "huelga", "bloqueo", "paralizacion", "no imputable", "caso fortuito", "fuerza mayor"},
	},
	{
		Key:   "adicional_aprobado",
		Kind:  KindAmpliacion,
		Title: "Aprobación de prestaciones adicionales que afectan el plazo",
		Detail: "Cuando la Entidad aprueba un adicional cuya ejecución requiere más tiempo, " +
			"el contratista tiene derecho a la ampliación correspondiente.",
		Steps: []string{
			"Verificar que la resolución que aprueba el adicional esté notificada",
			"Solicitar la ampliación dentro de los 8 días hábiles siguientes",
			"Sustentar los días con el cronograma del adicional",
		},
		Citation: "Art. 158 del Reglamento de la Ley 32069",
		keywords: []string{"adicional aprobado", "por el adicional", "mayores metrados aprobados"},
	},
	{
		Key:   "atraso_de_entidad",
		Kind:  KindAmpliacion,
		Title: "Atrasos en el cumplimiento de prestaciones a cargo de la Entidad",
		Detail: "La Entidad no entregó el terreno, el expediente técnico, el adelanto o la " +
			"absolución de consultas en los plazos pactados.",
		Steps: []string{
			"Documentar el incumplimiento de la Entidad (cartas, actas, asientos)",
			"Solicitar la ampliación dentro de los 8 días hábiles de cesado el atraso",
			"Reservar el derecho al reconocimiento de mayores gastos generales",
		},
		Citation: "Art. 158 del Reglamento de la Ley 32069",
		keywords: []string{"no entrego el terreno", "no pago el adelanto", "demora de la entidad", "entidad no cumple", "no absolvio"},
	},
	{
		Key:   "incumplimiento_contratista",
		Kind:  KindResolucion,
		Title: "Incumplimiento injustificado de obligaciones del contratista",
		Detail: "Obligaciones esenciales incumplidas pese al requerimiento previo de la " +
			"Entidad.",
		Steps: []string{
			"Requerir el cumplimiento mediante carta notarial otorgando un plazo no menor a 2 ni mayor a 15 días",
			"Vencido el plazo sin cumplimiento, resolver el contrato por carta notarial",
			"Comunicar la resolución al Tribunal para la sanción correspondiente",
			"Ejecutar la garantía de fiel cumplimiento de corresponder",
		},
		Citation: "Art. 164 y 165 del Reglamento de la Ley 32069",
		keywords: []string{"no cumple", "incumplimiento", "abandono", "abandonó la obra", "no entrega"},
	},
	{
		Key:   "penalidad_maxima",
		Kind:  KindResolucion,
		Title: "Acumulación del monto máximo de penalidad",
		Detail: "El contratista llegó al tope del 10% del monto contractual por penalidad de " +
			"mora u otras penalidades.",
		Steps: []string{
			"Verificar en la liquidación parcial que la penalidad acumulada alcanzó el 10%",
			"Resolver el contrato por carta notarial sin requerimiento previo",
			"Comunicar la resolución al Tribunal",
		},
		Citation: "Art. 162 y 165 del Reglamento de la Ley 32069",
		keywords: []string{"penalidad maxima", "tope de penalidad", "10% de penalidad", "acumulo la penalidad"},
	},
	{
		Key:   "caso_fortuito_resolucion",
		Kind:  KindResolucion,
		Title: "Caso fortuito o fuerza mayor que imposibilita continuar",
		Detail: "Evento extraordinario, imprevisible e irresistible que hace imposible " +
			"continuar la ejecución de manera definitiva.",
		Steps: []string{
			"Acreditar el evento y su carácter definitivo",
			"Resolver el contrato por carta notarial invocando la causal",
			"Liquidar el contrato reconociendo la parte efectivamente ejecutada",
		},
		Citation: "Art. 164 del Reglamento de la Ley 32069",
		keywords: []string{"imposible continuar", "desastre", "terremoto", "inundacion"},
	},
}

// CausalsFor returns the catalog of causals for one request kind.
func CausalsFor(kind string) []Causal {
	var out []Causal
	for _, c := range causals {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Classify matches the description against the causal catalog for the given
// kind. Empty kind searches both.
func Classify(description, kind string) []Causal {
	normalized := probe.Normalize(description)

	var out []Causal
	for _, c := range causals {
		if kind != "" && c.Kind != kind {
			continue
		}
		for _, kw := range c.keywords {
			if strings.Contains(normalized, kw) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func kindTitle(kind string) string {
	if kind == KindResolucion {
		return "Resolución de contrato"
	}
	return "Ampliación de plazo"
}

// FormatMarkdown renders matched causals with their procedural steps. When a
// date is supplied the statutory request deadline is computed from it.
func FormatMarkdown(kind string, matched []Causal, eventEnd *time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 **%s**\n\n", kindTitle(kind))

	if len(matched) == 0 {
		b.WriteString("No se identificó una causal específica. Las causales previstas son:\n\n")
		for _, c := range CausalsFor(kind) {
			fmt.Fprintf(&b, "- **%s** (%s)\n", c.Title, c.Citation)
		}
		return b.String()
	}

	for _, c := range matched {
		fmt.Fprintf(&b, "**Causal: %s**\n\n%s\n\n", c.Title, c.Detail)
		b.WriteString("Pasos a seguir:\n\n")
		for i, s := range c.Steps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s)
		}
		fmt.Fprintf(&b, "\nBase legal: %s\n\n", c.Citation)
	}

	if eventEnd != nil {
		key := "ampliacion_plazo"
		if kind == KindResolucion {
			key = "resolucion_contrato"
		}
		if result, entry, err := deadlines.ComputeNamed(key, *eventEnd); err == nil {
			fmt.Fprintf(&b, "📅 %s: vence el **%s** (%s).\n",
				entry.Description, result.End.Format("02/01/2006"), result.WeekdayLabel)
		}
	}
	return b.String()
}

var (
	ampliacionTokens = []string{
		"ampliacion de plazo", "ampliar el plazo", "extension del plazo", "mas plazo",
	}
	resolucionTokens = []string{
		"resolver el contrato", "resolucion de contrato", "resolucion del contrato",
		"terminar el contrato", "resolverle el contrato",
	}
	bypassTokens = []string{
		"que es", "definicion", "explica", "articulo", "diferencia entre",
	}
)

// NewProbe builds the router probe for contract extensions and terminations.
func NewProbe() probe.Probe {
	return probe.Func{ProbeName: "extensions", DetectFn: detect}
}

func detect(message string) (string, bool) {
	normalized := probe.Normalize(message)

	if probe.Bypassed(normalized, bypassTokens) {
		return "", false
	}

	kind := ""
	switch {
	case probe.ContainsAny(normalized, ampliacionTokens...):
		kind = KindAmpliacion
	case probe.ContainsAny(normalized, resolucionTokens...):
		kind = KindResolucion
	default:
		return "", false
	}

	matched := Classify(message, kind)

	var eventEnd *time.Time
	if dates := probe.ExtractDates(message); len(dates) > 0 {
		if t, err := deadlines.ParseDate(dates[0]); err == nil {
			eventEnd = &t
		}
	}
	return FormatMarkdown(kind, matched, eventEnd), true
}
