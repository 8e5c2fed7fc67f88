package rapid

import (
	"strings"

	"asesor-legal-be/pkg/utils"
)

// Entry maps normalized trigger phrases to a canned Markdown answer.
// Triggers match on the full normalized message only; domain terms that also
// appear inside legitimate legal questions ("vigencia", "plazo") are left to
// the calculator probes and the RAG layer.
type Entry struct {
	Triggers []string
	Answer   string
}

var entries = []Entry{
	{
		Triggers: []string{"hola", "buenos dias", "buenas tardes", "buenas noches", "hola que tal"},
		Answer: "👋 **¡Hola!** Soy el asistente de contrataciones públicas (Ley 32069).\n\n" +
			"Puedo ayudarte con:\n" +
			"- Selección de procedimientos por monto y objeto\n" +
			"- Cálculo de penalidades por mora\n" +
			"- Plazos en días hábiles y calendario\n" +
			"- Tasas y competencia en apelaciones\n" +
			"- Impedimentos, nulidades y adicionales\n" +
			"- Análisis de bases en PDF\n\nEscribe tu consulta.",
	},
	{
		Triggers: []string{"gracias", "muchas gracias", "ok gracias"},
		Answer:   "🤝 Con gusto. Si tienes otra consulta sobre la Ley 32069 o su Reglamento, aquí estoy.",
	},
	{
		Triggers: []string{"que puedes hacer", "ayuda", "menu", "opciones", "que sabes hacer"},
		Answer: "📋 **Funciones disponibles**\n\n" +
			"| Consulta | Ejemplo |\n|---|---|\n" +
			"| Procedimiento | \"¿Qué procedimiento corresponde para bienes por S/ 50,000?\" |\n" +
			"| Penalidad | \"Penalidad por 15 días de atraso, contrato de S/ 500,000 a 90 días\" |\n" +
			"| Plazos | \"¿Hasta cuándo puedo apelar si me notificaron el 29/04/2026?\" |\n" +
			"| Apelación | \"¿Cuánto cuesta apelar una buena pro de S/ 300,000?\" |\n" +
			"| Adicionales | \"¿Puedo aprobar un adicional de obra del 20%?\" |\n" +
			"| Impedimentos | \"¿El cuñado de un alcalde puede contratar?\" |\n" +
			"| Nulidad | \"Detectaron documentos falsos después de la buena pro\" |\n" +
			"| Bases | Sube el PDF de las bases para detectar vicios |",
	},
	{
		Triggers: []string{"cual es la uit", "valor de la uit", "uit 2026", "cuanto es la uit"},
		Answer: "💰 **UIT 2026: S/ 5,500**\n\n" +
			"El tope de la contratación menor es 8 UIT = **S/ 44,000**. " +
			"Por encima de ese monto se requiere un procedimiento de selección.",
	},
	{
		Triggers: []string{"que ley rige las contrataciones", "que es la ley 32069", "ley de contrataciones"},
		Answer: "📖 **Ley 32069 — Ley General de Contrataciones Públicas**\n\n" +
			"Vigente desde el 22 de abril de 2025 junto con su Reglamento " +
			"(D.S. 009-2025-EF). Reemplaza a la Ley 30225. El OECE supervisa el " +
			"sistema y el Tribunal resuelve apelaciones y aplica sanciones.",
	},
}

// Lookup returns the canned Markdown for a message when a trigger matches the
// full normalized text. Enclosing punctuation is ignored so "¿Cuál es la UIT?"
// matches; interior words still have to line up exactly.
func Lookup(message string) (string, bool) {
	normalized := strings.Trim(utils.NormalizeQuery(message), "¿?¡!.,;: ")
	for _, e := range entries {
		for _, trigger := range e.Triggers {
			if normalized == trigger {
				return e.Answer, true
			}
		}
	}
	return "", false
}
