package api

import (
	"arthos/docs"
	"arthos/internal/api/handlers"
	"arthos/pkg/auth"
	"arthos/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	upiHandler *handlers.UPIHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	statementHandler *handlers.StatementHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger - importing the docs package registers the spec through init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	upi := protected.Group("/upi")
	upi.Post("/analyze", upiHandler.Analyze)
	upi.Get("/transactions", upiHandler.ListTransactions)

	subscriptions := protected.Group("/subscriptions")
	subscriptions.Get("/summary", subscriptionHandler.Summary)
	subscriptions.Post("/detect", subscriptionHandler.Detect)
	subscriptions.Post("", subscriptionHandler.Create)
	subscriptions.Get("", subscriptionHandler.List)
	subscriptions.Get("/:id", subscriptionHandler.Get)
	subscriptions.Put("/:id", subscriptionHandler.Update)
	subscriptions.Delete("/:id", subscriptionHandler.Delete)

	statements := protected.Group("/statements")
	statements.Post("/analyze", statementHandler.Analyze)
	statements.Get("/history", statementHandler.History)

	return app
}
