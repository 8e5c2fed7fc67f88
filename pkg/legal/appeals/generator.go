package appeals

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"asesor-legal-be/pkg/utils"
)

// ProcessData identifies the selection procedure being challenged.
type ProcessData struct {
	Number         string          `json:"number"`
	Entity         string          `json:"entity"`
	Object         string          `json:"object"`
	ReferenceValue decimal.Decimal `json:"reference_value"`
	Notification   time.Time       `json:"notification"`
}

// AppellantData identifies who files the appeal.
type AppellantData struct {
	Name           string `json:"name"`
	RUC            string `json:"ruc"`
	Address        string `json:"address"`
	Representative string `json:"representative"`
}

// GrievanceData describes the challenged act.
type GrievanceData struct {
	TypeKey     string `json:"type_key"`
	ActAppealed string `json:"act_appealed"`
	Summary     string `json:"summary"`
	Request     string `json:"request"`
}

// Document is the generated appeal plus its computed metadata.
type Document struct {
	Text       string        `json:"text"`
	Resolution *Resolution   `json:"resolution"`
	Window     *FilingWindow `json:"window"`
}

type grievanceTemplate struct {
	title         string
	principles    []string
	jurisprudence []string
}

var grievanceTemplates = map[string]grievanceTemplate{
	"descalificacion": {
		title: "descalificación indebida de la oferta",
		principles: []string{
			"Principio de libre concurrencia y competencia",
			"Principio de transparencia",
		},
		jurisprudence: []string{
			"Resolución 0456-2024-TCE-S1: la descalificación exige motivación expresa sobre el requisito incumplido",
		},
	},
	"otorgamiento_buena_pro": {
		title: "otorgamiento indebido de la buena pro",
		principles: []string{
			"Principio de igualdad de trato",
			"Principio de integridad",
		},
		jurisprudence: []string{
			"Resolución 1234-2023-TCE-S2: la evaluación debe ceñirse estrictamente a los factores previstos en las bases",
		},
	},
	"admision_oferta": {
		title: "admisión indebida de la oferta de otro postor",
		principles: []string{
			"Principio de igualdad de trato",
			"Principio de presunción de veracidad y su control",
		},
		jurisprudence: []string{
			"Resolución 0789-2024-TCE-S3: la admisión de ofertas que no cumplen los requisitos mínimos vicia el otorgamiento",
		},
	},
}

// GrievanceTypeKeys lists the supported grievance templates.
func GrievanceTypeKeys() []string {
	return []string{"descalificacion", "otorgamiento_buena_pro", "admision_oferta"}
}

// GenerateDocument fills the appeal template deterministically and attaches
// the fee resolution and filing window.
func GenerateDocument(process ProcessData, appellant AppellantData, grievance GrievanceData, now time.Time) (*Document, error) {
	tpl, ok := grievanceTemplates[grievance.TypeKey]
	if !ok {
		return nil, fmt.Errorf("tipo de agravio %q no reconocido; claves válidas: %s",
			grievance.TypeKey, strings.Join(GrievanceTypeKeys(), ", "))
	}

	resolution, err := Resolve(process.ReferenceValue)
	if err != nil {
		return nil, err
	}
	window := ComputeFilingWindow(process.Notification, now)

	var b strings.Builder
	fmt.Fprintf(&b, "SEÑORES\n%s\n\n", strings.ToUpper(resolutionAddressee(resolution)))
	fmt.Fprintf(&b, "RECURSO DE APELACIÓN\n\nProcedimiento de selección: %s\nEntidad convocante: %s\nObjeto: %s\n\n",
		process.Number, process.Entity, process.Object)
	fmt.Fprintf(&b, "%s, identificado con RUC %s, con domicilio en %s, debidamente representado por %s, "+
		"al amparo del Art. 121 y siguientes del Reglamento de la Ley 32069, interpongo RECURSO DE APELACIÓN contra %s, "+
		"por %s.\n\n",
		appellant.Name, appellant.RUC, appellant.Address, appellant.Representative,
		grievance.ActAppealed, tpl.title)

	b.WriteString("I. FUNDAMENTOS DE HECHO\n\n")
	b.WriteString(grievance.Summary + "\n\n")

	b.WriteString("II. FUNDAMENTOS DE DERECHO\n\n")
	for _, p := range tpl.principles {
		b.WriteString("- " + p + "\n")
	}
	b.WriteString("\nIII. JURISPRUDENCIA APLICABLE\n\n")
	for _, j := range tpl.jurisprudence {
		b.WriteString("- " + j + "\n")
	}

	b.WriteString("\nIV. PETITORIO\n\n")
	b.WriteString(grievance.Request + "\n\n")

	fmt.Fprintf(&b, "V. TASA\n\nSe adjunta el comprobante de pago de la tasa por %s (3%% del valor de referencia, mínimo %s).\n\n",
		utils.FormatSoles(resolution.Fee), utils.FormatSoles(resolution.FeeMinimum))

	fmt.Fprintf(&b, "Plazo de interposición: vence el %s (%s). Estado: %s.\n",
		window.Deadline.Format("02/01/2006"), window.WeekdayLabel, window.Status)

	return &Document{Text: b.String(), Resolution: resolution, Window: window}, nil
}

func resolutionAddressee(r *Resolution) string {
	if r.Body == BodyTribunal {
		return BodyTribunal
	}
	return "Titular de la Entidad"
}
