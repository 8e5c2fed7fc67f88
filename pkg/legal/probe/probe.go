// Package probe defines the detection contract the hybrid router composes.
// Each deterministic calculator exposes a Probe; the router walks them in a
// fixed priority order and the first one that answers short-circuits the
// retrieval and generative layers.
package probe

import (
	"regexp"
	"strconv"
	"strings"

	"asesor-legal-be/pkg/utils"
)

// Probe inspects a user message and either answers it with formatted Markdown
// or declines. Detect must be pure: no side effects, same input same output.
type Probe interface {
	Name() string
	Detect(message string) (string, bool)
}

// Func adapts a function to the Probe interface.
type Func struct {
	ProbeName string
	DetectFn  func(message string) (string, bool)
}

func (f Func) Name() string { return f.ProbeName }

func (f Func) Detect(message string) (string, bool) { return f.DetectFn(message) }

// ContainsAny reports whether the normalized message contains any token.
// Tokens must already be normalized (lowercase, no accents).
func ContainsAny(normalized string, tokens ...string) bool {
	for _, t := range tokens {
		if strings.Contains(normalized, t) {
			return true
		}
	}
	return false
}

// Bypassed reports whether the message is a legal question rather than an
// arithmetic one. When a bypass token is present the probe must refuse even
// if it can extract a number.
func Bypassed(normalized string, bypassTokens []string) bool {
	return ContainsAny(normalized, bypassTokens...)
}

var (
	dateRe   = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b|\b\d{4}-\d{1,2}-\d{1,2}\b`)
	amountRe = regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?`)
)

// ExtractAmounts pulls monetary-looking numbers out of a message, in order of
// appearance. Date tokens are masked first so "29/04/2026" never yields 29.
func ExtractAmounts(message string) []float64 {
	masked := dateRe.ReplaceAllString(message, " ")
	matches := amountRe.FindAllString(masked, -1)

	amounts := make([]float64, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
		if err != nil {
			continue
		}
		amounts = append(amounts, v)
	}
	return amounts
}

// ExtractDates returns date-looking tokens in order of appearance.
func ExtractDates(message string) []string {
	return dateRe.FindAllString(message, -1)
}

// Normalize is a convenience re-export so probes share one normalization.
func Normalize(message string) string {
	return utils.NormalizeQuery(message)
}
