package appeals

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEntity(t *testing.T) {
	r, err := Resolve(decimal.NewFromInt(300_000))
	require.NoError(t, err)

	assert.Equal(t, BodyEntity, r.Body)
	assert.Equal(t, "9000", r.Fee.String())
	assert.Equal(t, 8, r.FilingDays)
	assert.Equal(t, 12, r.ResolutionDays)
}

func TestResolveTribunal(t *testing.T) {
	r, err := Resolve(decimal.NewFromInt(600_000))
	require.NoError(t, err)

	assert.Equal(t, BodyTribunal, r.Body)
	assert.Equal(t, "18000", r.Fee.String())
	assert.Equal(t, 20, r.ResolutionDays)
}

func TestResolveAppliesFeeMinimum(t *testing.T) {
	r, err := Resolve(decimal.NewFromInt(3_000))
	require.NoError(t, err)
	// 3% of 3,000 is 90, below the Entity minimum of 150.
	assert.Equal(t, "150", r.Fee.String())

	r, err = Resolve(decimal.NewFromInt(485_000))
	require.NoError(t, err)
	assert.Equal(t, BodyTribunal, r.Body)
	assert.Equal(t, "14550", r.Fee.String())
}

func TestResolveRejectsNonPositiveValue(t *testing.T) {
	_, err := Resolve(decimal.Zero)
	assert.Error(t, err)
}

func TestComputeFilingWindow(t *testing.T) {
	notification := time.Date(2026, time.April, 29, 0, 0, 0, 0, time.UTC)

	w := ComputeFilingWindow(notification, time.Date(2026, time.April, 30, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, time.May, 12, 0, 0, 0, 0, time.UTC), w.Deadline)
	assert.Equal(t, "VIGENTE", w.Status)

	w = ComputeFilingWindow(notification, time.Date(2026, time.May, 11, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "URGENTE", w.Status)

	w = ComputeFilingWindow(notification, time.Date(2026, time.May, 20, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "VENCIDO", w.Status)
}

func TestGenerateDocument(t *testing.T) {
	doc, err := GenerateDocument(
		ProcessData{
			Number:         "LP-005-2026-MDSJL",
			Entity:         "Municipalidad Distrital de San Juan",
			Object:         "Adquisición de luminarias LED",
			ReferenceValue: decimal.NewFromInt(600_000),
			Notification:   time.Date(2026, time.April, 29, 0, 0, 0, 0, time.UTC),
		},
		AppellantData{
			Name:           "Constructora Andina S.A.C.",
			RUC:            "20123456789",
			Address:        "Av. Los Cipreses 123, Lima",
			Representative: "María Quispe Rojas",
		},
		GrievanceData{
			TypeKey:     "descalificacion",
			ActAppealed: "la descalificación de nuestra oferta",
			Summary:     "Nuestra oferta fue descalificada sin motivación.",
			Request:     "Se revoque la descalificación y se evalúe nuestra oferta.",
		},
		time.Date(2026, time.April, 30, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	assert.Contains(t, doc.Text, "RECURSO DE APELACIÓN")
	assert.Contains(t, doc.Text, "LP-005-2026-MDSJL")
	assert.Contains(t, doc.Text, "S/ 18,000.00")
	assert.Contains(t, doc.Text, "12/05/2026")
	assert.Equal(t, BodyTribunal, doc.Resolution.Body)
}

func TestGenerateDocumentRejectsUnknownGrievance(t *testing.T) {
	_, err := GenerateDocument(ProcessData{ReferenceValue: decimal.NewFromInt(100_000)},
		AppellantData{}, GrievanceData{TypeKey: "otro"}, time.Now())
	assert.Error(t, err)
}

func TestProbeAnswersFeeQuestion(t *testing.T) {
	p := NewProbe()

	answer, ok := p.Detect("¿Cuánto cuesta apelar una buena pro de S/ 300,000?")
	require.True(t, ok)
	assert.Contains(t, answer, "Entidad")
	assert.Contains(t, answer, "S/ 9,000.00")
}
