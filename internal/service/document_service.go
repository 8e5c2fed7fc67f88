package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"asesor-legal-be/internal/dto"
	"asesor-legal-be/internal/pkg/logger"
	"asesor-legal-be/pkg/legal/evaluation"
	"asesor-legal-be/pkg/legal/vices"
	"asesor-legal-be/pkg/llm"
	"asesor-legal-be/pkg/pdf"
	"asesor-legal-be/pkg/utils"
)

// Document kinds detected by the auto-classifier.
const (
	DocKindBases      = "bases"
	DocKindEvaluacion = "evaluacion"
	DocKindContrato   = "contrato"
	DocKindOtro       = "otro"
)

type IDocumentService interface {
	Analyze(ctx context.Context, path string) (*dto.DocumentAnalysisResponse, error)
}

type documentService struct {
	extractor pdf.Extractor
	provider  llm.LLMProvider // optional, enriches the vice detector
	logger    logger.ILogger
}

func NewDocumentService(extractor pdf.Extractor, provider llm.LLMProvider, log logger.ILogger) IDocumentService {
	return &documentService{
		extractor: extractor,
		provider:  provider,
		logger:    log,
	}
}

var (
	processNumberRe = regexp.MustCompile(`(?i)\b(?:LP|LPA|CP|CPA|AS|CM|SIE)\s*[-N°º\s]*\d{1,4}[-/]\d{4}[-\w]*`)
	executionDaysRe = regexp.MustCompile(`(?i)plazo\s+de\s+ejecuci[oó]n[^\d]{0,40}(\d{1,4})\s+d[ií]as`)
	penaltyPctRe    = regexp.MustCompile(`(?i)penalidad\s+(?:diaria\s+)?(?:de[l]?\s+)?(\d+(?:\.\d+)?)\s*%`)
	scoreRowRe      = regexp.MustCompile(`(?im)^([A-ZÁÉÍÓÚÑ][\w\s\.&áéíóúñ]{2,60}?)\s+(?:S/\.?\s*)?(\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d{5,}(?:\.\d+)?)\s*$`)
)

func (s *documentService) Analyze(ctx context.Context, path string) (*dto.DocumentAnalysisResponse, error) {
	doc, err := s.extractor.Extract(path)
	if err != nil {
		return nil, err
	}

	fields := extractFields(doc.FullText)
	kind := classifyDocument(doc.FullText)

	resp := &dto.DocumentAnalysisResponse{
		Filename:   doc.Filename,
		Pages:      doc.Pages,
		DocKind:    kind,
		Fields:     fields,
		TextSample: sample(doc.FullText, 600),
	}

	switch kind {
	case DocKindEvaluacion:
		s.analyzeEvaluation(doc.FullText, resp)
	default:
		s.analyzeBases(ctx, doc.FullText, resp)
	}

	s.logger.Info("documents", "document analyzed", map[string]interface{}{
		"file":  doc.Filename,
		"kind":  kind,
		"pages": doc.Pages,
	})
	return resp, nil
}

func extractFields(text string) map[string]string {
	fields := map[string]string{}
	if m := processNumberRe.FindString(text); m != "" {
		fields["numero_proceso"] = strings.Join(strings.Fields(m), " ")
	}
	if rv := vices.ExtractReferenceValue(text); rv.IsPositive() {
		fields["valor_referencia"] = rv.StringFixed(2)
	}
	if m := executionDaysRe.FindStringSubmatch(text); m != nil {
		fields["plazo_ejecucion_dias"] = m[1]
	}
	if m := penaltyPctRe.FindStringSubmatch(text); m != nil {
		fields["penalidad_diaria_pct"] = m[1]
	}
	return fields
}

func classifyDocument(text string) string {
	normalized := utils.NormalizeQuery(text)
	switch {
	case strings.Contains(normalized, "acta de evaluacion") ||
		strings.Contains(normalized, "cuadro comparativo") ||
		strings.Contains(normalized, "otorgamiento de la buena pro"):
		return DocKindEvaluacion
	case strings.Contains(normalized, "bases estandar") ||
		strings.Contains(normalized, "bases integradas") ||
		strings.Contains(normalized, "especificaciones tecnicas") ||
		strings.Contains(normalized, "terminos de referencia"):
		return DocKindBases
	case strings.Contains(normalized, "contrato n") ||
		strings.Contains(normalized, "clausula"):
		return DocKindContrato
	default:
		return DocKindOtro
	}
}

// analyzeBases runs the hybrid vice detector, enriched with model-reported
// candidates when a provider is configured.
func (s *documentService) analyzeBases(ctx context.Context, text string, resp *dto.DocumentAnalysisResponse) {
	var analysis map[string]any
	if s.provider != nil {
		analysis = s.modelCandidates(ctx, text)
	}

	report := vices.Analyze(text, analysis, vices.ExtractReferenceValue(text))
	resp.Report = report
	resp.Markdown = vices.FormatMarkdown(report)
}

const viceExtractionPromptFormat = `Analiza el siguiente extracto de bases de un procedimiento de ` +
	`selección peruano (Ley 32069) y lista los posibles vicios. Responde SOLO con JSON en la forma ` +
	`{"posibles_vicios":[{"tipo":"...","descripcion":"...","severidad":"ALTA|MEDIA|BAJA"}]}.` + "\n\nBASES:\n%s"

func (s *documentService) modelCandidates(ctx context.Context, text string) map[string]any {
	reply, err := s.provider.Generate(ctx,
		fmt.Sprintf(viceExtractionPromptFormat, sample(text, 8000)),
		llm.WithTemperature(0.1))
	if err != nil {
		s.logger.Warn("documents", "model vice extraction failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	cleaned := strings.TrimSpace(reply)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var analysis map[string]any
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		s.logger.Warn("documents", "model vice reply was not JSON", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return analysis
}

// analyzeEvaluation recomputes the economic score table from bidder/price rows
// found in the document.
func (s *documentService) analyzeEvaluation(text string, resp *dto.DocumentAnalysisResponse) {
	rows := scoreRowRe.FindAllStringSubmatch(text, -1)

	var proposals []evaluation.EconomicProposal
	for _, row := range rows {
		price, err := strconv.ParseFloat(strings.ReplaceAll(row[2], ",", ""), 64)
		if err != nil || price <= 0 {
			continue
		}
		proposals = append(proposals, evaluation.EconomicProposal{
			Bidder: strings.TrimSpace(row[1]),
			Price:  price,
		})
	}

	if len(proposals) < 2 {
		resp.Markdown = "📄 Acta de evaluación detectada. No se pudieron extraer al menos dos " +
			"propuestas económicas del texto; use el verificador de evaluación con los datos estructurados."
		return
	}

	results, err := evaluation.VerifyEconomic(proposals, 100)
	if err != nil {
		resp.Markdown = "⚠️ " + err.Error()
		return
	}
	// Awarded scores are not machine-readable from the acta; report expected only.
	for i := range results {
		results[i].AwardedScore = results[i].ExpectedScore
		results[i].Consistent = true
	}
	resp.Report = results
	resp.Markdown = evaluation.FormatEconomicMarkdown(results, 100)
}

func sample(text string, n int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n]) + "…"
}
