package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/skillswap-service/internal/api/http/handlers"
	"github.com/spec-kit/skillswap-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Skills         *handlers.SkillsHandler
	Swaps          *handlers.SwapsHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated(), cfg.Auth.Logout)

	users := app.Group("/users", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	users.Get("/me", cfg.Users.Me)
	users.Put("/me", cfg.Users.UpdateMe)
	users.Post("/me/photo", cfg.Users.UploadPhoto)
	users.Get("/", cfg.Users.SearchUsers)
	users.Get("/:id", cfg.Users.GetUser)

	skills := app.Group("/skills", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	skills.Get("/search", cfg.Skills.Search)
	skills.Post("/offered", cfg.Skills.CreateOffered)
	skills.Get("/offered", cfg.Skills.ListOffered)
	skills.Get("/offered/:id", cfg.Skills.GetOffered)
	skills.Put("/offered/:id", cfg.Skills.UpdateOffered)
	skills.Delete("/offered/:id", cfg.Skills.DeleteOffered)
	skills.Post("/wanted", cfg.Skills.CreateWanted)
	skills.Get("/wanted", cfg.Skills.ListWanted)
	skills.Get("/wanted/:id", cfg.Skills.GetWanted)
	skills.Put("/wanted/:id", cfg.Skills.UpdateWanted)
	skills.Delete("/wanted/:id", cfg.Skills.DeleteWanted)

	// Literal segments before :id so /sent, /received and /feedback do not
	// fall into the id routes.
	swaps := app.Group("/swaps", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	swaps.Post("/", cfg.Swaps.Create)
	swaps.Get("/", cfg.Swaps.List)
	swaps.Get("/sent", cfg.Swaps.ListSent)
	swaps.Get("/received", cfg.Swaps.ListReceived)
	swaps.Post("/feedback", cfg.Swaps.CreateFeedback)
	swaps.Get("/feedback/received", cfg.Swaps.FeedbackReceived)
	swaps.Get("/feedback/given", cfg.Swaps.FeedbackGiven)
	swaps.Get("/:id", cfg.Swaps.Get)
	swaps.Put("/:id", cfg.Swaps.Update)
	swaps.Delete("/:id", cfg.Swaps.Delete)
	swaps.Get("/:id/feedback", cfg.Swaps.ListFeedback)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("/users", cfg.Admin.ListUsers)
	admin.Put("/users/:id/ban", cfg.Admin.BanUser)
	admin.Put("/users/:id/unban", cfg.Admin.UnbanUser)
	admin.Put("/users/:id/promote", cfg.Admin.PromoteUser)
	admin.Get("/skills/pending", cfg.Admin.ListPendingSkills)
	admin.Put("/skills/:id/approve", cfg.Admin.ApproveSkill)
	admin.Put("/skills/:id/reject", cfg.Admin.RejectSkill)
	admin.Get("/swaps", cfg.Admin.ListSwaps)
	admin.Get("/stats", cfg.Admin.Stats)
	admin.Get("/metrics", cfg.Admin.Metrics)
	admin.Post("/broadcast", cfg.Admin.Broadcast)
}
