package catalog

import "sort"

// DeadlineKind distinguishes business-day from calendar-day counting.
type DeadlineKind string

const (
	DeadlineBusiness DeadlineKind = "habiles"
	DeadlineCalendar DeadlineKind = "calendario"
)

// NamedDeadline is one entry of the statutory deadline table.
type NamedDeadline struct {
	Key         string
	Days        int
	Kind        DeadlineKind
	Description string
	Citation    string
}

var namedDeadlines = map[string]NamedDeadline{
	"apelacion": {
		Key: "apelacion", Days: 8, Kind: DeadlineBusiness,
		Description: "Interposición del recurso de apelación desde la notificación del acto impugnado",
		Citation:    "Art. 122 del Reglamento",
	},
	"suscripcion_contrato": {
		Key: "suscripcion_contrato", Days: 8, Kind: DeadlineBusiness,
		Description: "Suscripción del contrato desde que la buena pro queda consentida",
		Citation:    "Art. 141 del Reglamento",
	},
	"consultas_observaciones_lp": {
		Key: "consultas_observaciones_lp", Days: 10, Kind: DeadlineBusiness,
		Description: "Formulación de consultas y observaciones en licitación/concurso público",
		Citation:    "Art. 72 del Reglamento",
	},
	"consultas_observaciones_abreviado": {
		Key: "consultas_observaciones_abreviado", Days: 5, Kind: DeadlineBusiness,
		Description: "Formulación de consultas y observaciones en procedimiento abreviado",
		Citation:    "Art. 89 del Reglamento",
	},
	"absolucion_consultas": {
		Key: "absolucion_consultas", Days: 5, Kind: DeadlineBusiness,
		Description: "Absolución de consultas y observaciones",
		Citation:    "Art. 72 del Reglamento",
	},
	"integracion_bases": {
		Key: "integracion_bases", Days: 3, Kind: DeadlineBusiness,
		Description: "Integración de bases luego de la absolución",
		Citation:    "Art. 73 del Reglamento",
	},
	"conformidad_bienes": {
		Key: "conformidad_bienes", Days: 10, Kind: DeadlineBusiness,
		Description: "Emisión de la conformidad de bienes y servicios",
		Citation:    "Art. 170 del Reglamento",
	},
	"ampliacion_plazo": {
		Key: "ampliacion_plazo", Days: 8, Kind: DeadlineBusiness,
		Description: "Solicitud de ampliación de plazo desde que finaliza el hecho generador",
		Citation:    "Art. 158 del Reglamento",
	},
	"resolucion_contrato": {
		Key: "resolucion_contrato", Days: 5, Kind: DeadlineCalendar,
		Description: "Plazo del requerimiento previo antes de resolver el contrato",
		Citation:    "Art. 165 del Reglamento",
	},
	"inicio_arbitraje": {
		Key: "inicio_arbitraje", Days: 30, Kind: DeadlineBusiness,
		Description: "Inicio de arbitraje desde la notificación de la controversia",
		Citation:    "Art. 224 del Reglamento",
	},
	"liquidacion_obra": {
		Key: "liquidacion_obra", Days: 60, Kind: DeadlineCalendar,
		Description: "Presentación de la liquidación de obra desde la recepción",
		Citation:    "Art. 209 del Reglamento",
	},
	"consulta_mercado": {
		Key: "consulta_mercado", Days: 6, Kind: DeadlineBusiness,
		Description: "Respuesta a la consulta de mercado (indagación de mercado)",
		Citation:    "Art. 44 del Reglamento",
	},
}

// NamedDeadlineByKey returns the deadline entry for a symbolic key.
func NamedDeadlineByKey(key string) (NamedDeadline, bool) {
	d, ok := namedDeadlines[key]
	return d, ok
}

// NamedDeadlineKeys lists valid keys in sorted order, for catalog-miss messages.
func NamedDeadlineKeys() []string {
	keys := make([]string, 0, len(namedDeadlines))
	for k := range namedDeadlines {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
