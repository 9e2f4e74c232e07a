package handlers

import (
	"strconv"

	"arthos/internal/dto"
	"arthos/internal/models"
	"arthos/internal/repository"
	"arthos/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
	logger              *zap.Logger
}

func NewSubscriptionHandler(subscriptionService *service.SubscriptionService, logger *zap.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
		logger:              logger,
	}
}

// Create godoc
// @Summary Create a subscription
// @Description Register a recurring payment to track
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body dto.SubscriptionCreateRequest true "Subscription"
// @Success 201 {object} dto.SubscriptionResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/subscriptions [post]
func (h *SubscriptionHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user identity",
		})
	}

	var req dto.SubscriptionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Name == "" || req.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and a positive amount are required",
		})
	}

	resp, err := h.subscriptionService.Create(c.Context(), userID, &req)
	if err != nil {
		return h.mapError(c, err, "Failed to create subscription")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary List subscriptions
// @Description List subscriptions with optional name, amount and billing cycle filters
// @Tags subscriptions
// @Produce json
// @Param name query string false "Name contains, case-insensitive"
// @Param min_amount query number false "Minimum amount"
// @Param max_amount query number false "Maximum amount"
// @Param billing_cycle query string false "monthly, quarterly or yearly"
// @Param limit query int false "Page size (1-200, default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.SubscriptionListResponse
// @Security BearerAuth
// @Router /api/v1/subscriptions [get]
func (h *SubscriptionHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user identity",
		})
	}

	filter := repository.SubscriptionFilter{
		Name:         c.Query("name"),
		BillingCycle: models.BillingCycle(c.Query("billing_cycle")),
	}
	if raw := c.Query("min_amount"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid min_amount",
			})
		}
		filter.MinAmount = &v
	}
	if raw := c.Query("max_amount"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid max_amount",
			})
		}
		filter.MaxAmount = &v
	}
	if filter.BillingCycle != "" && !filter.BillingCycle.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid billing_cycle",
		})
	}

	limit, offset := pageParams(c)
	resp, err := h.subscriptionService.List(c.Context(), userID, filter, limit, offset)
	if err != nil {
		h.logger.Error("Failed to list subscriptions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list subscriptions",
		})
	}

	return c.JSON(resp)
}

// Get godoc
// @Summary Get a subscription
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/subscriptions/{id} [get]
func (h *SubscriptionHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user identity",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid subscription id",
		})
	}

	resp, err := h.subscriptionService.Get(c.Context(), userID, id)
	if err != nil {
		return h.mapError(c, err, "Failed to get subscription")
	}

	return c.JSON(resp)
}

// Update godoc
// @Summary Update a subscription
// @Description Update selected fields of a subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Param request body dto.SubscriptionUpdateRequest true "Fields to update"
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/subscriptions/{id} [put]
func (h *SubscriptionHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user identity",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid subscription id",
		})
	}

	var req dto.SubscriptionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.subscriptionService.Update(c.Context(), userID, id, &req)
	if err != nil {
		return h.mapError(c, err, "Failed to update subscription")
	}

	return c.JSON(resp)
}

// Delete godoc
// @Summary Delete a subscription
// @Tags subscriptions
// @Param id path string true "Subscription ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/subscriptions/{id} [delete]
func (h *SubscriptionHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user identity",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid subscription id",
		})
	}

	if err := h.subscriptionService.Delete(c.Context(), userID, id); err != nil {
		return h.mapError(c, err, "Failed to delete subscription")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Summary godoc
// @Summary Subscription burn rate and upcoming renewals
// @Description Monthly and yearly recurring spend plus renewals due within a week
// @Tags subscriptions
// @Produce json
// @Success 200 {object} dto.SubscriptionSummaryResponse
// @Security BearerAuth
// @Router /api/v1/subscriptions/summary [get]
func (h *SubscriptionHandler) Summary(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user identity",
		})
	}

	resp, err := h.subscriptionService.Summary(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to build subscription summary", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build subscription summary",
		})
	}

	return c.JSON(resp)
}

// Detect godoc
// @Summary Detect subscriptions from stored transactions
// @Description Scan the user's transactions for recurring charges; nothing is persisted automatically
// @Tags subscriptions
// @Produce json
// @Success 200 {object} dto.DetectSubscriptionsResponse
// @Security BearerAuth
// @Router /api/v1/subscriptions/detect [post]
func (h *SubscriptionHandler) Detect(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user identity",
		})
	}

	resp, err := h.subscriptionService.Detect(c.Context(), userID)
	if err != nil {
		h.logger.Error("Subscription detection failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Subscription detection failed",
		})
	}

	return c.JSON(resp)
}

func (h *SubscriptionHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch err {
	case service.ErrSubscriptionNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Subscription not found",
		})
	case service.ErrInvalidBillingCycle:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Billing cycle must be monthly, quarterly or yearly",
		})
	case service.ErrInvalidRenewalDate:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Renewal date must be YYYY-MM-DD",
		})
	case service.ErrInvalidSourceTransaction:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Source transaction id must be a UUID",
		})
	}
	h.logger.Error(fallback, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": fallback,
	})
}
