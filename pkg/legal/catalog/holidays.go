package catalog

import "time"

// nationalHolidays holds the non-working days for the target calendar year
// (feriados nacionales 2026, D.S. 139-2025-PCM and Ley 29392 calendar).
var nationalHolidays = map[string]struct{}{
	"2026-01-01": {}, // Año Nuevo
	"2026-04-02": {}, // Jueves Santo
	"2026-04-03": {}, // Viernes Santo
	"2026-05-01": {}, // Día del Trabajo
	"2026-06-29": {}, // San Pedro y San Pablo
	"2026-07-23": {}, // Día de la Fuerza Aérea
	"2026-07-28": {}, // Fiestas Patrias
	"2026-07-29": {}, // Fiestas Patrias
	"2026-08-06": {}, // Batalla de Junín
	"2026-08-30": {}, // Santa Rosa de Lima
	"2026-10-08": {}, // Combate de Angamos
	"2026-11-01": {}, // Todos los Santos
	"2026-12-08": {}, // Inmaculada Concepción
	"2026-12-09": {}, // Batalla de Ayacucho
	"2026-12-25": {}, // Navidad
}

// IsHoliday reports whether the date is a national holiday.
func IsHoliday(t time.Time) bool {
	_, ok := nationalHolidays[t.Format("2006-01-02")]
	return ok
}

// IsBusinessDay reports whether the date counts as a día hábil:
// Monday to Friday and not in the holiday set.
func IsBusinessDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return !IsHoliday(t)
}

// WeekdaySpanish returns the Spanish label for the date's weekday.
func WeekdaySpanish(t time.Time) string {
	switch t.Weekday() {
	case time.Monday:
		return "Lunes"
	case time.Tuesday:
		return "Martes"
	case time.Wednesday:
		return "Miércoles"
	case time.Thursday:
		return "Jueves"
	case time.Friday:
		return "Viernes"
	case time.Saturday:
		return "Sábado"
	default:
		return "Domingo"
	}
}
