package catalog

// NullityCausal describes one ground for declaring nullity of a procurement
// act or contract (Art. 45 de la Ley 32069).
type NullityCausal struct {
	Ordinal          int
	Summary          string
	Description      string
	Examples         []string
	Consequence      string
	PrescriptionText string
	Keywords         []string // normalized (lowercase, no accents)
}

var nullityCausals = []NullityCausal{
	{
		Ordinal: 1,
		Summary: "Contratación con proveedor impedido",
		Description: "Se contrató con un proveedor incurso en alguno de los impedimentos " +
			"del Art. 11, o inhabilitado o suspendido por el Tribunal.",
		Examples: []string{
			"Buena pro otorgada a la empresa de un regidor de la misma municipalidad",
			"Contrato firmado con proveedor suspendido por el Tribunal",
		},
		Consequence:      "Nulidad del contrato y responsabilidad del funcionario que lo suscribió",
		PrescriptionText: "La nulidad de oficio puede declararse hasta 3 años después del consentimiento de la buena pro",
		Keywords:         []string{"impedido", "impedimento", "inhabilitado", "suspendido", "sancionado"},
	},
	{
		Ordinal: 2,
		Summary: "Trasgresión del procedimiento de selección",
		Description: "El procedimiento se condujo contraviniendo las normas de la Ley o el " +
			"Reglamento, afectando su validez (fraccionamiento, procedimiento incorrecto).",
		Examples: []string{
			"Fraccionamiento para eludir la licitación pública",
			"Adjudicación directa cuando correspondía procedimiento competitivo",
		},
		Consequence:      "Retrotraer el procedimiento a la etapa del vicio o declarar su nulidad total",
		PrescriptionText: "La nulidad de oficio puede declararse hasta 3 años después del consentimiento de la buena pro",
		Keywords:         []string{"fraccionamiento", "eludir", "procedimiento incorrecto", "sin proceso", "adjudicacion directa"},
	},
	{
		Ordinal: 3,
		Summary: "Documentación falsa o inexacta",
		Description: "El postor presentó documentos falsos, adulterados o información inexacta " +
			"que le dio ventaja en el procedimiento.",
		Examples: []string{
			"Certificado de experiencia falsificado",
			"Declaración jurada con información inexacta sobre el plantel profesional",
		},
		Consequence:      "Nulidad del acto, comunicación al Tribunal y denuncia penal de corresponder",
		PrescriptionText: "La nulidad de oficio puede declararse hasta 3 años después del consentimiento de la buena pro",
		Keywords:         []string{"documento falso", "falsa", "falsificado", "adulterado", "informacion inexacta", "declaracion jurada"},
	},
	{
		Ordinal: 4,
		Summary: "Vulneración del principio de presunción de veracidad en fiscalización posterior",
		Description: "En la fiscalización posterior se comprobó que la información presentada " +
			"no era veraz y resultó determinante para el otorgamiento.",
		Examples: []string{
			"Fiscalización posterior detecta que el contrato de respaldo de experiencia nunca existió",
		},
		Consequence:      "Nulidad del contrato y ejecución de la garantía de fiel cumplimiento",
		PrescriptionText: "La nulidad de oficio puede declararse hasta 3 años después del consentimiento de la buena pro",
		Keywords:         []string{"fiscalizacion posterior", "veracidad", "comprobacion"},
	},
	{
		Ordinal: 5,
		Summary: "Contrato suscrito sin el consentimiento de la buena pro",
		Description: "El contrato se suscribió antes de que la buena pro quedara consentida o " +
			"administrativamente firme, o estando en trámite un recurso de apelación.",
		Examples: []string{
			"Contrato firmado con apelación pendiente ante el Tribunal",
		},
		Consequence:      "Nulidad del contrato",
		PrescriptionText: "La nulidad de oficio puede declararse hasta 3 años después del consentimiento de la buena pro",
		Keywords:         []string{"sin consentimiento", "apelacion pendiente", "antes del consentimiento", "buena pro no consentida"},
	},
	{
		Ordinal: 6,
		Summary: "Corrupción o colusión acreditada",
		Description: "Existencia de actos de corrupción, colusión entre postores o entre el " +
			"postor y funcionarios, declarada en sede judicial o reconocida por el contratista.",
		Examples: []string{
			"Sentencia por colusión entre el comité de selección y el postor ganador",
			"Acuerdo entre postores para simular competencia",
		},
		Consequence:      "Nulidad del contrato sin derecho a indemnización para el contratista",
		PrescriptionText: "Imprescriptible cuando deriva de sentencia judicial firme por corrupción",
		Keywords:         []string{"corrupcion", "colusion", "soborno", "coima", "acuerdo entre postores"},
	},
}

// NullityCausals returns the full causal catalog.
func NullityCausals() []NullityCausal {
	return nullityCausals
}

// NullityPrescriptionYears is the period for declaring nullity of office,
// counted from the consent of the buena pro.
const NullityPrescriptionYears = 3
