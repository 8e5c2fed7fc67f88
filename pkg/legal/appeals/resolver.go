// Package appeals resolves the fee and competent body for recursos de
// apelación and generates the appeal document.
package appeals

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"asesor-legal-be/pkg/legal/catalog"
	"asesor-legal-be/pkg/legal/deadlines"
	"asesor-legal-be/pkg/legal/probe"
	"asesor-legal-be/pkg/utils"
)

// Competent bodies.
const (
	BodyEntity   = "Entidad"
	BodyTribunal = "Tribunal de Contrataciones Públicas"
)

// Resolution resolves who hears the appeal and what it costs.
type Resolution struct {
	Body           string          `json:"body"`
	Fee            decimal.Decimal `json:"fee"`
	FeeMinimum     decimal.Decimal `json:"fee_minimum"`
	FilingDays     int             `json:"filing_days"`     // business days to file
	ResolutionDays int             `json:"resolution_days"` // business days to resolve
}

// FilingWindow is the computed deadline to file from a notification date.
type FilingWindow struct {
	Notification  time.Time `json:"notification"`
	Deadline      time.Time `json:"deadline"`
	WeekdayLabel  string    `json:"weekday"`
	RemainingDays int       `json:"remaining_calendar_days"`
	Status        string    `json:"status"` // VIGENTE | URGENTE | VENCIDO
}

// Resolve applies the Entity/Tribunal split: below the threshold the Entity
// resolves with the lower fee minimum; at or above, the Tribunal.
func Resolve(referenceValue decimal.Decimal) (*Resolution, error) {
	if !referenceValue.IsPositive() {
		return nil, fmt.Errorf("el valor de referencia debe ser mayor a cero")
	}

	res := &Resolution{FilingDays: catalog.AppealFilingDays}
	if referenceValue.LessThan(catalog.AppealEntityThreshold) {
		res.Body = BodyEntity
		res.FeeMinimum = catalog.AppealFeeMinEntity
		res.ResolutionDays = catalog.AppealEntityDays
	} else {
		res.Body = BodyTribunal
		res.FeeMinimum = catalog.AppealFeeMinTribunal
		res.ResolutionDays = catalog.AppealTribunalDays
	}

	fee := referenceValue.Mul(catalog.AppealFeeRate).Round(2)
	if fee.LessThan(res.FeeMinimum) {
		fee = res.FeeMinimum
	}
	res.Fee = fee

	return res, nil
}

// ComputeFilingWindow computes the 8-business-day filing deadline from the
// notification date and classifies its urgency against `now`.
func ComputeFilingWindow(notification, now time.Time) *FilingWindow {
	deadline := deadlines.AddBusinessDays(notification, catalog.AppealFilingDays)

	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	remaining := int(deadline.Sub(nowDay).Hours() / 24)

	status := "VIGENTE"
	switch {
	case remaining < 0:
		status = "VENCIDO"
	case remaining <= 2:
		status = "URGENTE"
	}

	return &FilingWindow{
		Notification:  notification,
		Deadline:      deadline,
		WeekdayLabel:  catalog.WeekdaySpanish(deadline),
		RemainingDays: remaining,
		Status:        status,
	}
}

// FormatMarkdown renders the fee/body resolution.
func FormatMarkdown(referenceValue decimal.Decimal, r *Resolution) string {
	var b strings.Builder
	b.WriteString("📨 **Recurso de apelación**\n\n")
	fmt.Fprintf(&b, "- **Valor de referencia:** %s\n", utils.FormatSoles(referenceValue))
	fmt.Fprintf(&b, "- **Resuelve:** %s\n", r.Body)
	fmt.Fprintf(&b, "- **Tasa (3%%, mínimo %s):** **%s**\n", utils.FormatSoles(r.FeeMinimum), utils.FormatSoles(r.Fee))
	fmt.Fprintf(&b, "- **Plazo para interponer:** %d días hábiles desde la notificación\n", r.FilingDays)
	fmt.Fprintf(&b, "- **Plazo para resolver:** %d días hábiles\n", r.ResolutionDays)
	b.WriteString("\nBase legal: Art. 122 y siguientes del Reglamento de la Ley 32069.\n")
	return b.String()
}

var (
	triggerTokens = []string{
		"apelacion", "apelar", "recurso de apelacion", "impugnar", "tasa de apelacion",
		"cuanto cuesta apelar",
	}
	bypassTokens = []string{
		"que es", "definicion", "explica", "articulo", "etapas", "en que casos procede",
	}
)

// NewProbe builds the router probe for appeal fees. Queries carrying a
// notification date are left to the deadlines probe, which runs earlier.
func NewProbe() probe.Probe {
	return probe.Func{ProbeName: "appeals", DetectFn: detect}
}

func detect(message string) (string, bool) {
	normalized := probe.Normalize(message)

	if probe.Bypassed(normalized, bypassTokens) {
		return "", false
	}
	if !probe.ContainsAny(normalized, triggerTokens...) {
		return "", false
	}

	amounts := probe.ExtractAmounts(message)
	if len(amounts) == 0 {
		return "", false
	}

	value := decimal.NewFromFloat(amounts[0])
	res, err := Resolve(value)
	if err != nil {
		return "⚠️ " + err.Error(), true
	}
	return FormatMarkdown(value, res), true
}
