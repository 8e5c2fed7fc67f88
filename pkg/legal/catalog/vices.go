package catalog

// Vice is a catalog entry for an objectionable clause pattern in procurement
// bases. DetectedVice instances produced at analysis time reference these by key.
type Vice struct {
	TypeKey       string
	Description   string
	Indicators    []string
	LimitCitation string
	Narrative     string
}

// Vice type keys. The alias map below normalizes LLM-reported labels to these.
const (
	ViceMarcaSinEquivalente  = "marca_sin_equivalente"
	ViceExperienciaExcesiva  = "experiencia_excesiva"
	VicePlazoInsuficiente    = "plazo_insuficiente"
	VicePenalidadExcesiva    = "penalidad_excesiva"
	ViceRequisitoRestrictivo = "requisito_restrictivo"
)

var vices = map[string]Vice{
	ViceMarcaSinEquivalente: {
		TypeKey:     ViceMarcaSinEquivalente,
		Description: "Referencia a marca o modelo específico sin admitir equivalentes",
		Indicators: []string{
			"mención de marca, modelo o fabricante",
			"ausencia de la fórmula \"o equivalente\"",
		},
		LimitCitation: "Art. 49 de la Ley 32069 y Art. 68 del Reglamento",
		Narrative: "Las especificaciones técnicas no pueden hacer referencia a marcas o " +
			"modelos determinados salvo proceso de estandarización; de referirse a ellos " +
			"debe agregarse \"o equivalente\".",
	},
	ViceExperienciaExcesiva: {
		TypeKey:     ViceExperienciaExcesiva,
		Description: "Experiencia mínima exigida desproporcionada respecto del valor de referencia",
		Indicators: []string{
			"monto de facturación exigido mayor al valor de referencia",
			"experiencia que restringe la pluralidad de postores",
		},
		LimitCitation: "Art. 47 de la Ley 32069 y bases estándar OECE",
		Narrative: "La experiencia exigida debe ser proporcional al objeto de la " +
			"convocatoria; montos que superan el valor de referencia limitan la libre " +
			"concurrencia y competencia.",
	},
	VicePlazoInsuficiente: {
		TypeKey:     VicePlazoInsuficiente,
		Description: "Plazo de ejecución manifiestamente insuficiente para la prestación",
		Indicators: []string{
			"plazo en días incompatible con el alcance de la prestación",
		},
		LimitCitation: "Art. 39 de la Ley 32069",
		Narrative: "Un plazo de ejecución irrealizable direcciona el resultado hacia " +
			"quien conoce la prestación de antemano y genera incumplimientos inducidos.",
	},
	VicePenalidadExcesiva: {
		TypeKey:     VicePenalidadExcesiva,
		Description: "Penalidad diaria superior al esquema reglamentario",
		Indicators: []string{
			"porcentaje diario de penalidad que supera la fórmula reglamentaria",
			"tope de penalidad mayor al 10% del monto contractual",
		},
		LimitCitation: "Art. 162 y 163 del Reglamento",
		Narrative: "La penalidad por mora se calcula con la fórmula reglamentaria y no " +
			"puede exceder el 10% del monto del contrato vigente.",
	},
	ViceRequisitoRestrictivo: {
		TypeKey:     ViceRequisitoRestrictivo,
		Description: "Requisito de calificación ajeno al objeto o que restringe la concurrencia",
		Indicators: []string{
			"certificaciones o acreditaciones no vinculadas al objeto",
			"requisitos geográficos o de antigüedad injustificados",
		},
		LimitCitation: "Art. 47 de la Ley 32069",
		Narrative: "Los requisitos de calificación deben ser razonables, congruentes con " +
			"el objeto y proporcionales; lo contrario vulnera la libre concurrencia.",
	},
}

// ViceByType returns the catalog entry for a vice type key.
func ViceByType(key string) (Vice, bool) {
	v, ok := vices[key]
	return v, ok
}

// viceAliases normalizes type labels coming from the generative model to
// internal keys. Keys are normalized (lowercase, no accents).
var viceAliases = map[string]string{
	"marca":                        ViceMarcaSinEquivalente,
	"marca sin equivalente":        ViceMarcaSinEquivalente,
	"direccionamiento de marca":    ViceMarcaSinEquivalente,
	"experiencia":                  ViceExperienciaExcesiva,
	"experiencia excesiva":         ViceExperienciaExcesiva,
	"experiencia desproporcionada": ViceExperienciaExcesiva,
	"facturacion excesiva":         ViceExperienciaExcesiva,
	"plazo":                        VicePlazoInsuficiente,
	"plazo insuficiente":           VicePlazoInsuficiente,
	"plazo irreal":                 VicePlazoInsuficiente,
	"penalidad":                    VicePenalidadExcesiva,
	"penalidad excesiva":           VicePenalidadExcesiva,
	"requisito restrictivo":        ViceRequisitoRestrictivo,
	"requisitos restrictivos":      ViceRequisitoRestrictivo,
	"restriccion de competencia":   ViceRequisitoRestrictivo,
}

// ResolveViceAlias maps a normalized external label to an internal vice key.
// Unknown labels come back unchanged with ok=false.
func ResolveViceAlias(label string) (string, bool) {
	if _, ok := vices[label]; ok {
		return label, true
	}
	if key, ok := viceAliases[label]; ok {
		return key, true
	}
	return label, false
}
