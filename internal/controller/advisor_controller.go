package controller

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"asesor-legal-be/internal/dto"
	"asesor-legal-be/internal/pkg/serverutils"
	"asesor-legal-be/internal/service"
)

type AdvisorController struct {
	advisorService  service.IAdvisorService
	ingestService   service.IIngestService
	documentService service.IDocumentService
	knowledgeDir    string
}

func NewAdvisorController(
	advisorService service.IAdvisorService,
	ingestService service.IIngestService,
	documentService service.IDocumentService,
	knowledgeDir string,
) *AdvisorController {
	return &AdvisorController{
		advisorService:  advisorService,
		ingestService:   ingestService,
		documentService: documentService,
		knowledgeDir:    knowledgeDir,
	}
}

func (c *AdvisorController) RegisterRoutes(r fiber.Router) {
	group := r.Group("/api/advisor/v1")
	group.Post("/chat", c.Chat)
	group.Delete("/session/:id", c.ClearSession)
	group.Post("/ingest", c.Ingest)
	group.Post("/documents/analyze", c.AnalyzeDocument)
}

func (c *AdvisorController) Chat(ctx *fiber.Ctx) error {
	req := new(dto.ChatRequest)
	if err := ctx.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.advisorService.Chat(ctx.UserContext(), req)
	return ctx.JSON(serverutils.SuccessResponse("Success chat", res))
}

func (c *AdvisorController) ClearSession(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("id")
	if sessionID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session id is required")
	}

	c.advisorService.ClearSession(sessionID)
	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear session", nil))
}

func (c *AdvisorController) Ingest(ctx *fiber.Ctx) error {
	req := new(dto.IngestRequest)
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
	}

	dir := req.Directory
	if dir == "" {
		dir = c.knowledgeDir
	}

	summary, err := c.ingestService.QueueDirectory(ctx.UserContext(), dir)
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	return ctx.JSON(serverutils.SuccessResponse("Success queue ingest", summary))
}

// AnalyzeDocument receives one multipart PDF, stores it in a temp file for the
// extractor and deletes it afterwards.
func (c *AdvisorController) AnalyzeDocument(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "multipart field 'file' is required")
	}

	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("analyze-%s-%s", uuid.NewString(), filepath.Base(fileHeader.Filename)))
	if err := ctx.SaveFile(fileHeader, tmpPath); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to store uploaded file")
	}
	defer os.Remove(tmpPath)

	res, err := c.documentService.Analyze(ctx.UserContext(), tmpPath)
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	res.Filename = fileHeader.Filename
	return ctx.JSON(serverutils.SuccessResponse("Success analyze document", res))
}
