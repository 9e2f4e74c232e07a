package handlers

import (
	"arthos/internal/dto"
	"arthos/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UPIHandler struct {
	analyzeService *service.AnalyzeService
	logger         *zap.Logger
}

func NewUPIHandler(analyzeService *service.AnalyzeService, logger *zap.Logger) *UPIHandler {
	return &UPIHandler{
		analyzeService: analyzeService,
		logger:         logger,
	}
}

// Analyze godoc
// @Summary Analyze UPI transaction messages
// @Description Parse pasted UPI/SMS payment messages, categorize and store the extracted transactions
// @Tags upi
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeRequest true "Raw UPI message text, one or more messages"
// @Success 200 {object} dto.AnalyzeResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/upi/analyze [post]
func (h *UPIHandler) Analyze(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user identity",
		})
	}

	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.analyzeService.Analyze(c.Context(), userID, &req)
	if err != nil {
		h.logger.Error("UPI analysis failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Analysis failed",
		})
	}

	return c.JSON(resp)
}

// ListTransactions godoc
// @Summary List stored transactions
// @Description List the user's transactions with pagination, optional category filter and an aggregate summary
// @Tags upi
// @Produce json
// @Param limit query int false "Page size (1-200, default 50)"
// @Param offset query int false "Page offset"
// @Param category query string false "Filter by category"
// @Success 200 {object} dto.TransactionListResponse
// @Security BearerAuth
// @Router /api/v1/upi/transactions [get]
func (h *UPIHandler) ListTransactions(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user identity",
		})
	}

	limit, offset := pageParams(c)
	category := c.Query("category")

	resp, err := h.analyzeService.ListTransactions(c.Context(), userID, category, limit, offset)
	if err != nil {
		h.logger.Error("Failed to list transactions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list transactions",
		})
	}

	return c.JSON(resp)
}
