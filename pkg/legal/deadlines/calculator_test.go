package deadlines

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asesor-legal-be/pkg/legal/catalog"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("29/04/2026")
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.April, 29), got)

	got, err = ParseDate("2026-04-29")
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.April, 29), got)

	_, err = ParseDate("29 de abril")
	assert.Error(t, err)
}

func TestAddBusinessDaysSkipsWeekendsAndHolidays(t *testing.T) {
	// 29/04/2026 is Wednesday; 01/05 is a holiday, so 8 días hábiles land on
	// Tuesday 12/05/2026.
	end := AddBusinessDays(date(2026, time.April, 29), 8)
	assert.Equal(t, date(2026, time.May, 12), end)

	// Friday before Fiestas Patrias: 27/07 Monday counts, 28-29/07 are
	// holidays, so one business day from Friday 24/07 is Monday 27/07 and the
	// second is Thursday 30/07.
	end = AddBusinessDays(date(2026, time.July, 24), 2)
	assert.Equal(t, date(2026, time.July, 30), end)
}

func TestCompute(t *testing.T) {
	r, err := Compute(date(2026, time.April, 29), 8, catalog.DeadlineBusiness)
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.May, 12), r.End)
	assert.Equal(t, "Martes", r.WeekdayLabel)

	r, err = Compute(date(2026, time.April, 29), 8, catalog.DeadlineCalendar)
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.May, 7), r.End)

	_, err = Compute(date(2026, time.April, 29), -1, catalog.DeadlineBusiness)
	assert.Error(t, err)

	_, err = Compute(date(2026, time.April, 29), 5, catalog.DeadlineKind("lunares"))
	assert.Error(t, err)
}

func TestComputeNamed(t *testing.T) {
	r, entry, err := ComputeNamed("apelacion", date(2026, time.April, 29))
	require.NoError(t, err)
	assert.Equal(t, 8, entry.Days)
	assert.Equal(t, catalog.DeadlineBusiness, entry.Kind)
	assert.Equal(t, date(2026, time.May, 12), r.End)

	_, _, err = ComputeNamed("plazo_inexistente", date(2026, time.April, 29))
	assert.Error(t, err)
}

func TestProbeAnswersNamedDeadline(t *testing.T) {
	p := NewProbe()

	answer, ok := p.Detect("¿Hasta cuándo puedo apelar si me notificaron el 29/04/2026?")
	require.True(t, ok)
	assert.Contains(t, answer, "12/05/2026")
	assert.Contains(t, answer, "Martes")
}

func TestProbeAnswersExplicitCount(t *testing.T) {
	p := NewProbe()

	answer, ok := p.Detect("¿Hasta qué fecha vence un plazo de 8 días hábiles contados desde el 29/04/2026?")
	require.True(t, ok)
	assert.Contains(t, answer, "12/05/2026")
}

func TestProbeDeclinesWithoutDate(t *testing.T) {
	p := NewProbe()

	_, ok := p.Detect("¿Cuántos días hábiles hay para apelar?")
	assert.False(t, ok)

	_, ok = p.Detect("¿Qué es un día hábil según el artículo del Reglamento? Desde el 29/04/2026")
	assert.False(t, ok)
}
