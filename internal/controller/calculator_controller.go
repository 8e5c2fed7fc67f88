package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"asesor-legal-be/internal/dto"
	"asesor-legal-be/internal/pkg/serverutils"
	"asesor-legal-be/pkg/legal/additionals"
	"asesor-legal-be/pkg/legal/appeals"
	"asesor-legal-be/pkg/legal/catalog"
	"asesor-legal-be/pkg/legal/deadlines"
	"asesor-legal-be/pkg/legal/evaluation"
	"asesor-legal-be/pkg/legal/impediments"
	"asesor-legal-be/pkg/legal/nullity"
	"asesor-legal-be/pkg/legal/penalties"
	"asesor-legal-be/pkg/legal/procedures"
)

// CalculatorController exposes the deterministic calculators directly, without
// going through the chat router.
type CalculatorController struct{}

func NewCalculatorController() *CalculatorController {
	return &CalculatorController{}
}

func (c *CalculatorController) RegisterRoutes(r fiber.Router) {
	group := r.Group("/api/calculators/v1")
	group.Post("/procedure", c.Procedure)
	group.Post("/penalty", c.Penalty)
	group.Post("/deadline", c.Deadline)
	group.Post("/deadline/named/:key", c.NamedDeadline)
	group.Post("/appeal-fee", c.AppealFee)
	group.Post("/appeal-document", c.AppealDocument)
	group.Post("/additional", c.Additional)
	group.Post("/impediment", c.Impediment)
	group.Post("/nullity", c.Nullity)
	group.Post("/evaluation/technical", c.TechnicalEvaluation)
	group.Post("/evaluation/economic", c.EconomicEvaluation)
	group.Post("/evaluation/prelation", c.Prelation)
}

func parseBody[T any](ctx *fiber.Ctx) (*T, error) {
	req := new(T)
	if err := ctx.BodyParser(req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

func calculatorError(err error) error {
	return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
}

func (c *CalculatorController) Procedure(ctx *fiber.Ctx) error {
	req, err := parseBody[dto.ProcedureRequest](ctx)
	if err != nil {
		return err
	}

	amount := decimal.NewFromFloat(req.Amount)
	decision, err := procedures.Select(amount, req.ObjectType)
	if err != nil {
		return calculatorError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success select procedure", dto.CalculatorResponse{
		Result:   decision,
		Markdown: procedures.FormatMarkdown(amount, req.ObjectType, decision),
	}))
}

func (c *CalculatorController) Penalty(ctx *fiber.Ctx) error {
	req, err := parseBody[dto.PenaltyRequest](ctx)
	if err != nil {
		return err
	}

	amount := decimal.NewFromFloat(req.Amount)
	result, err := penalties.Calculate(amount, req.TermDays, req.DelayDays, req.ContractType)
	if err != nil {
		return calculatorError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success calculate penalty", dto.CalculatorResponse{
		Result:   result,
		Markdown: penalties.FormatMarkdown(amount, req.TermDays, req.DelayDays, req.ContractType, result),
	}))
}

func (c *CalculatorController) Deadline(ctx *fiber.Ctx) error {
	req, err := parseBody[dto.DeadlineRequest](ctx)
	if err != nil {
		return err
	}

	start, err := deadlines.ParseDate(req.StartDate)
	if err != nil {
		return calculatorError(err)
	}
	result, err := deadlines.Compute(start, req.Days, catalog.DeadlineKind(req.Kind))
	if err != nil {
		return calculatorError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success compute deadline", dto.CalculatorResponse{
		Result:   result,
		Markdown: deadlines.FormatMarkdown(result),
	}))
}

func (c *CalculatorController) NamedDeadline(ctx *fiber.Ctx) error {
	req, err := parseBody[dto.NamedDeadlineRequest](ctx)
	if err != nil {
		return err
	}

	start, err := deadlines.ParseDate(req.StartDate)
	if err != nil {
		return calculatorError(err)
	}
	result, entry, err := deadlines.ComputeNamed(ctx.Params("key"), start)
	if err != nil {
		return calculatorError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success compute named deadline", dto.CalculatorResponse{
		Result:   result,
		Markdown: deadlines.FormatNamedMarkdown(result, entry),
	}))
}

func (c *CalculatorController) AppealFee(ctx *fiber.Ctx) error {
	req, err := parseBody[dto.AppealFeeRequest](ctx)
	if err != nil {
		return err
	}

	rv := decimal.NewFromFloat(req.ReferenceValue)
	resolution, err := appeals.Resolve(rv)
	if err != nil {
		return calculatorError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success resolve appeal fee", dto.CalculatorResponse{
		Result:   resolution,
		Markdown: appeals.FormatMarkdown(rv, resolution),
	}))
}

func (c *CalculatorController) AppealDocument(ctx *fiber.Ctx) error {
	req, err := parseBody[dto.AppealDocumentRequest](ctx)
	if err != nil {
		return err
	}

	notification, err := deadlines.ParseDate(req.Notification)
	if err != nil {
		return calculatorError(err)
	}

	doc, err := appeals.GenerateDocument(
		appeals.ProcessData{
			Number:         req.ProcessNumber,
			Entity:         req.Entity,
			Object:         req.Object,
			ReferenceValue: decimal.NewFromFloat(req.ReferenceValue),
			Notification:   notification,
		},
		appeals.AppellantData{
			Name:           req.AppellantName,
			RUC:            req.AppellantRUC,
			Address:        req.Address,
			Representative: req.Representative,
		},
		appeals.GrievanceData{
			TypeKey:     req.GrievanceType,
			ActAppealed: req.ActAppealed,
			Summary:     req.Summary,
			Request:     req.Request,
		},
		time.Now(),
	)
	if err != nil {
		return calculatorError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate appeal document", doc))
}

func (c *CalculatorController) Additional(ctx *fiber.Ctx) error {
	req, err := parseBody[dto.AdditionalRequest](ctx)
	if err != nil {
		return err
	}

	original := decimal.NewFromFloat(req.OriginalAmount)
	additional := decimal.NewFromFloat(req.AdditionalAmount)
	result, err := additionals.Evaluate(original, additional, req.Kind)
	if err != nil {
		return calculatorError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success evaluate additional", dto.CalculatorResponse{
		Result:   result,
		Markdown: additionals.FormatMarkdown(original, additional, result),
	}))
}

func (c *CalculatorController) Impediment(ctx *fiber.Ctx) error {
	req, err := parseBody[dto.ImpedimentRequest](ctx)
	if err != nil {
		return err
	}

	if req.Kinship != "" {
		verdict, err := impediments.VerifyKinship(req.Kinship, req.RelatedRole)
		if err != nil {
			return calculatorError(err)
		}
		return ctx.JSON(serverutils.SuccessResponse("Success verify impediment", dto.CalculatorResponse{
			Result:   verdict,
			Markdown: impediments.FormatKinshipMarkdown(verdict),
		}))
	}

	if req.Role == "" {
		return fiber.NewError(fiber.StatusBadRequest, "either role or kinship is required")
	}
	monthsSinceCease := -1
	if req.MonthsSinceCease != nil {
		monthsSinceCease = *req.MonthsSinceCease
	}
	verdict, err := impediments.VerifyRole(req.Role, monthsSinceCease)
	if err != nil {
		return calculatorError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success verify impediment", dto.CalculatorResponse{
		Result:   verdict,
		Markdown: impediments.FormatRoleMarkdown(verdict),
	}))
}

func (c *CalculatorController) Nullity(ctx *fiber.Ctx) error {
	req, err := parseBody[dto.NullityRequest](ctx)
	if err != nil {
		return err
	}

	matches := nullity.MatchCausals(req.Description)
	var prescription *nullity.Prescription
	if req.ConsentDate != "" {
		consent, err := deadlines.ParseDate(req.ConsentDate)
		if err != nil {
			return calculatorError(err)
		}
		prescription = nullity.ComputePrescription(consent, time.Now())
	}
	return ctx.JSON(serverutils.SuccessResponse("Success match nullity causals", dto.CalculatorResponse{
		Result: fiber.Map{
			"matches":      matches,
			"prescription": prescription,
		},
		Markdown: nullity.FormatMarkdown(matches, prescription),
	}))
}

func (c *CalculatorController) TechnicalEvaluation(ctx *fiber.Ctx) error {
	req, err := parseBody[dto.TechnicalEvaluationRequest](ctx)
	if err != nil {
		return err
	}

	factors := make(map[string]evaluation.Factor, len(req.Factors))
	for name, f := range req.Factors {
		factors[name] = evaluation.Factor{Max: f.Max, Methodology: f.Methodology}
	}
	inconsistencies := evaluation.VerifyTechnical(factors, req.Awarded, req.DeclaredTotal)
	return ctx.JSON(serverutils.SuccessResponse("Success verify technical evaluation", inconsistencies))
}

func (c *CalculatorController) EconomicEvaluation(ctx *fiber.Ctx) error {
	req, err := parseBody[dto.EconomicEvaluationRequest](ctx)
	if err != nil {
		return err
	}

	proposals := make([]evaluation.EconomicProposal, 0, len(req.Proposals))
	for _, p := range req.Proposals {
		proposals = append(proposals, evaluation.EconomicProposal{
			Bidder:       p.Bidder,
			Price:        p.Price,
			AwardedScore: p.AwardedScore,
		})
	}
	results, err := evaluation.VerifyEconomic(proposals, req.MaxScore)
	if err != nil {
		return calculatorError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success verify economic evaluation", dto.CalculatorResponse{
		Result:   results,
		Markdown: evaluation.FormatEconomicMarkdown(results, req.MaxScore),
	}))
}

func (c *CalculatorController) Prelation(ctx *fiber.Ctx) error {
	req, err := parseBody[dto.PrelationRequest](ctx)
	if err != nil {
		return err
	}

	proposals := make([]evaluation.RankedProposal, 0, len(req.Proposals))
	for _, p := range req.Proposals {
		proposals = append(proposals, evaluation.RankedProposal{
			Bidder:      p.Bidder,
			TotalScore:  p.TotalScore,
			AwardedRank: p.AwardedRank,
		})
	}
	inconsistencies := evaluation.VerifyPrelation(proposals)
	return ctx.JSON(serverutils.SuccessResponse("Success verify prelation order", inconsistencies))
}
