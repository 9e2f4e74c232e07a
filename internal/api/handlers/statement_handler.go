package handlers

import (
	"arthos/internal/dto"
	"arthos/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type StatementHandler struct {
	statementService *service.StatementService
	logger           *zap.Logger
}

func NewStatementHandler(statementService *service.StatementService, logger *zap.Logger) *StatementHandler {
	return &StatementHandler{
		statementService: statementService,
		logger:           logger,
	}
}

// Analyze godoc
// @Summary Analyze a bank statement
// @Description Clean pasted bank statement text and run an AI analysis over it
// @Tags statements
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeStatementRequest true "Raw statement text"
// @Success 200 {object} dto.AnalyzeStatementResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/statements/analyze [post]
func (h *StatementHandler) Analyze(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user identity",
		})
	}

	var req dto.AnalyzeStatementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.statementService.Analyze(c.Context(), userID, &req)
	if err != nil {
		if err == service.ErrStatementTooShort {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Statement text must be at least 50 characters",
			})
		}
		h.logger.Error("Statement analysis failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Statement analysis failed",
		})
	}

	return c.JSON(resp)
}

// History godoc
// @Summary List past statement analyses
// @Tags statements
// @Produce json
// @Param limit query int false "Page size (1-200, default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.StatementHistoryResponse
// @Security BearerAuth
// @Router /api/v1/statements/history [get]
func (h *StatementHandler) History(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user identity",
		})
	}

	limit, offset := pageParams(c)
	resp, err := h.statementService.History(c.Context(), userID, limit, offset)
	if err != nil {
		h.logger.Error("Failed to load statement history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load statement history",
		})
	}

	return c.JSON(resp)
}
