package catalog

import "strings"

// JurisprudenceDefaultMiss marks the stub returned when no precedent matches;
// the probability scorer treats it as "no jurisprudence".
const JurisprudenceDefaultMiss = "Sin precedente directo identificado; revisar pronunciamientos recientes del OECE"

// jurisprudenceByVice maps vice type keys to relevant Tribunal/OECE precedents.
var jurisprudenceByVice = map[string][]string{
	ViceMarcaSinEquivalente: {
		"Pronunciamiento 101-2024/OECE-DGR: la mención de marca sin la fórmula \"o equivalente\" vulnera la libre concurrencia",
		"Resolución 1523-2023-TCE-S3: direccionamiento por marca acarrea nulidad del procedimiento",
	},
	ViceExperienciaExcesiva: {
		"Pronunciamiento 215-2024/OECE-DGR: la facturación exigida no debe superar el valor de referencia en bienes y servicios",
		"Resolución 0874-2023-TCE-S1: experiencia desproporcionada restringe la pluralidad de postores",
	},
	VicePlazoInsuficiente: {
		"Pronunciamiento 067-2023/OSCE-DGR: el plazo de ejecución debe guardar relación con el alcance de la prestación",
	},
	VicePenalidadExcesiva: {
		"Resolución 1102-2024-TCE-S2: penalidades superiores a la fórmula reglamentaria son inaplicables",
	},
	ViceRequisitoRestrictivo: {
		"Pronunciamiento 188-2024/OECE-DGR: requisitos ajenos al objeto contractual deben suprimirse de las bases",
	},
}

// jurisprudenceByKeyword backs the fallback lookup when the vice type has no
// dedicated entry. Keys are normalized.
var jurisprudenceByKeyword = map[string][]string{
	"marca":       jurisprudenceByVice[ViceMarcaSinEquivalente],
	"experiencia": jurisprudenceByVice[ViceExperienciaExcesiva],
	"plazo":       jurisprudenceByVice[VicePlazoInsuficiente],
	"penalidad":   jurisprudenceByVice[VicePenalidadExcesiva],
}

// JurisprudenceForVice returns precedents for a vice type, falling back to a
// keyword scan of the description and finally to the default-miss stub.
func JurisprudenceForVice(typeKey, normalizedDescription string) []string {
	if list, ok := jurisprudenceByVice[typeKey]; ok {
		return list
	}
	padded := " " + normalizedDescription + " "
	for kw, list := range jurisprudenceByKeyword {
		if strings.Contains(padded, " "+kw+" ") {
			return list
		}
	}
	return []string{JurisprudenceDefaultMiss}
}
