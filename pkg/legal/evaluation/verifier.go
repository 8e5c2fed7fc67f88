// Package evaluation verifies proposal scoring: technical factor consistency,
// the economic score formula and the prelation order.
package evaluation

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"asesor-legal-be/pkg/legal/probe"
	"asesor-legal-be/pkg/utils"
)

// Severity levels for inconsistencies.
const (
	SeverityAlta  = "ALTA"
	SeverityMedia = "MEDIA"
)

// Inconsistency is one verification finding.
type Inconsistency struct {
	Subject  string `json:"subject"`
	Detail   string `json:"detail"`
	Severity string `json:"severity"`
}

// Factor is one technical evaluation factor as declared in the bases.
type Factor struct {
	Max         float64 `json:"max"`
	Methodology string  `json:"methodology,omitempty"`
}

const (
	technicalTolerance = 0.01
	economicTolerance  = 0.1
	temeraryRatio      = 0.90
)

// VerifyTechnical checks awarded technical scores against the factors declared
// in the bases and the declared total.
func VerifyTechnical(factors map[string]Factor, awarded map[string]float64, declaredTotal float64) []Inconsistency {
	var out []Inconsistency

	names := make([]string, 0, len(awarded))
	for name := range awarded {
		names = append(names, name)
	}
	sort.Strings(names)

	sum := 0.0
	for _, name := range names {
		score := awarded[name]
		sum += score

		factor, ok := factors[name]
		if !ok {
			out = append(out, Inconsistency{
				Subject:  name,
				Detail:   "el factor no está previsto en las bases",
				Severity: SeverityAlta,
			})
			continue
		}
		if score < 0 {
			out = append(out, Inconsistency{
				Subject:  name,
				Detail:   fmt.Sprintf("puntaje negativo (%.2f)", score),
				Severity: SeverityAlta,
			})
		}
		if score > factor.Max {
			out = append(out, Inconsistency{
				Subject:  name,
				Detail:   fmt.Sprintf("puntaje %.2f supera el máximo de %.2f previsto en las bases", score, factor.Max),
				Severity: SeverityAlta,
			})
		}
	}

	if math.Abs(sum-declaredTotal) > technicalTolerance {
		out = append(out, Inconsistency{
			Subject:  "total",
			Detail:   fmt.Sprintf("el total declarado %.2f no coincide con la suma de factores %.2f", declaredTotal, sum),
			Severity: SeverityAlta,
		})
	}
	return out
}

// EconomicProposal is one bid with its awarded economic score.
type EconomicProposal struct {
	Bidder       string  `json:"bidder"`
	Price        float64 `json:"price"`
	AwardedScore float64 `json:"awarded_score"`
}

// EconomicResult carries the recomputed score for one proposal.
type EconomicResult struct {
	Bidder        string  `json:"bidder"`
	Price         float64 `json:"price"`
	AwardedScore  float64 `json:"awarded_score"`
	ExpectedScore float64 `json:"expected_score"`
	Consistent    bool    `json:"consistent"`
	LowestPrice   bool    `json:"lowest_price"`
	Temerary      bool    `json:"temerary"`
}

// VerifyEconomic recomputes PE = (Pmin / Pi) · PEmax for every proposal and
// flags awarded scores outside tolerance, the lowest price and potentially
// temerary bids (price below 90% of the mean).
func VerifyEconomic(proposals []EconomicProposal, maxScore float64) ([]EconomicResult, error) {
	if len(proposals) == 0 {
		return nil, fmt.Errorf("se requiere al menos una propuesta económica")
	}
	if maxScore <= 0 {
		return nil, fmt.Errorf("el puntaje económico máximo debe ser mayor a cero")
	}

	minPrice := proposals[0].Price
	mean := 0.0
	for _, p := range proposals {
		if p.Price <= 0 {
			return nil, fmt.Errorf("la propuesta de %q tiene un precio inválido", p.Bidder)
		}
		if p.Price < minPrice {
			minPrice = p.Price
		}
		mean += p.Price
	}
	mean /= float64(len(proposals))

	out := make([]EconomicResult, 0, len(proposals))
	for _, p := range proposals {
		expected := round2(minPrice / p.Price * maxScore)
		out = append(out, EconomicResult{
			Bidder:        p.Bidder,
			Price:         p.Price,
			AwardedScore:  p.AwardedScore,
			ExpectedScore: expected,
			Consistent:    math.Abs(expected-p.AwardedScore) <= economicTolerance,
			LowestPrice:   p.Price == minPrice,
			Temerary:      p.Price < temeraryRatio*mean,
		})
	}
	return out, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RankedProposal is one bid with its total score and the position the Entity
// awarded it.
type RankedProposal struct {
	Bidder      string  `json:"bidder"`
	TotalScore  float64 `json:"total_score"`
	AwardedRank int     `json:"awarded_rank"`
}

// VerifyPrelation sorts by total score descending and reports every position
// where the awarded order differs.
func VerifyPrelation(proposals []RankedProposal) []Inconsistency {
	sorted := make([]RankedProposal, len(proposals))
	copy(sorted, proposals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalScore > sorted[j].TotalScore
	})

	var out []Inconsistency
	for i, p := range sorted {
		expected := i + 1
		if p.AwardedRank != expected {
			out = append(out, Inconsistency{
				Subject: p.Bidder,
				Detail: fmt.Sprintf("con puntaje total %.2f le corresponde el puesto %d, pero se le asignó el puesto %d",
					p.TotalScore, expected, p.AwardedRank),
				Severity: SeverityAlta,
			})
		}
	}
	return out
}

// FormatEconomicMarkdown renders the recomputed economic table.
func FormatEconomicMarkdown(results []EconomicResult, maxScore float64) string {
	var b strings.Builder
	b.WriteString("📊 **Verificación de puntaje económico**\n\n")
	fmt.Fprintf(&b, "Fórmula: PE = (Pmin / Pi) × %.0f\n\n", maxScore)
	b.WriteString("| Postor | Precio | Puntaje otorgado | Puntaje esperado | Consistente |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, r := range results {
		mark := "✅"
		if !r.Consistent {
			mark = "❌"
		}
		fmt.Fprintf(&b, "| %s | %s | %.2f | %.2f | %s |\n",
			r.Bidder, utils.FormatAmount(r.Price), r.AwardedScore, r.ExpectedScore, mark)
	}
	b.WriteString("\n")
	for _, r := range results {
		if r.LowestPrice {
			fmt.Fprintf(&b, "- 🏷️ Precio más bajo: **%s** (%s)\n", r.Bidder, utils.FormatAmount(r.Price))
		}
		if r.Temerary {
			fmt.Fprintf(&b, "- ⚠️ **%s** oferta por debajo del 90%% del promedio: posible oferta temeraria\n", r.Bidder)
		}
	}
	return b.String()
}

var (
	triggerTokens = []string{
		"puntaje economico", "evaluacion economica", "verifica el puntaje",
		"formula de puntaje", "pe =",
	}
	bypassTokens = []string{
		"que es", "definicion", "explica", "como se evalua",
	}
)

// NewProbe builds the router probe for economic-score verification. It treats
// every amount in the message as one bid price and recomputes the table with
// the 100-point default maximum.
func NewProbe() probe.Probe {
	return probe.Func{ProbeName: "evaluation", DetectFn: detect}
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
	if len(amounts) < 2 {
		return "", false
	}

	proposals := make([]EconomicProposal, 0, len(amounts))
	for i, price := range amounts {
		proposals = append(proposals, EconomicProposal{
			Bidder: fmt.Sprintf("Postor %d", i+1),
			Price:  price,
		})
	}

	results, err := VerifyEconomic(proposals, 100)
	if err != nil {
		return "⚠️ " + err.Error(), true
	}
	// Awarded scores are unknown in chat; show only the expected column.
	for i := range results {
		results[i].AwardedScore = results[i].ExpectedScore
		results[i].Consistent = true
	}
	return FormatEconomicMarkdown(results, 100), true
}
