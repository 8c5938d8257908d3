package main

import (
	"learnify/config"
	"learnify/handlers"
	"learnify/middleware"
	"learnify/models"
	"learnify/repositories"
	"learnify/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// newApp wires repositories, handlers and routes into a Fiber app.
func newApp(cfg *config.Config, logger *zap.Logger, store session.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.MaxUploadBytes,
	})

	app.Use(middleware.RequestLogger(logger))

	userRepo := repositories.NewUserRepository()
	classRepo := repositories.NewClassRepository()
	assignmentRepo := repositories.NewAssignmentRepository()
	submissionRepo := repositories.NewSubmissionRepository()

	authHandlers := handlers.NewAuthHandlers(userRepo, store)
	classHandlers := handlers.NewClassHandlers(classRepo)
	assignmentHandlers := handlers.NewAssignmentHandlers(assignmentRepo, classRepo)
	submissionHandlers := handlers.NewSubmissionHandlers(submissionRepo, cfg.UploadsDir)
	fileHandlers := handlers.NewFileHandlers(cfg.FilesBaseDir, cfg.UploadsDir, cfg.StrictPaths)

	requireAuth := middleware.RequireAuth(store)
	lecturerOrAdmin := middleware.RequireRoles(models.RoleLecturer, models.RoleAdmin)
	studentOnly := middleware.RequireRoles(models.RoleStudent)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandlers.Register)
	auth.Post("/login", authHandlers.Login)
	auth.Post("/logout", requireAuth, authHandlers.Logout)
	auth.Get("/me", requireAuth, authHandlers.Me)
	auth.Put("/profile", requireAuth, authHandlers.UpdateProfile)

	classes := api.Group("/classes", requireAuth)
	classes.Get("/", classHandlers.List)
	classes.Post("/", lecturerOrAdmin, classHandlers.Create)
	classes.Post("/join", studentOnly, classHandlers.Join)
	classes.Get("/:id", classHandlers.Get)
	classes.Get("/:id/students", classHandlers.Students)
	classes.Get("/:id/assignments", assignmentHandlers.ListForClass)
	classes.Post("/:id/assignments", lecturerOrAdmin, assignmentHandlers.Create)

	assignments := api.Group("/assignments", requireAuth)
	assignments.Get("/:id", assignmentHandlers.Get)
	assignments.Post("/:id/submit", studentOnly, submissionHandlers.Submit)
	assignments.Get("/:id/submissions", lecturerOrAdmin, submissionHandlers.ListForAssignment)

	submissions := api.Group("/submissions", requireAuth)
	submissions.Get("/my", submissionHandlers.My)
	submissions.Put("/:id/grade", lecturerOrAdmin, submissionHandlers.Grade)
	submissions.Delete("/:id", lecturerOrAdmin, submissionHandlers.Delete)

	files := api.Group("/files", requireAuth)
	files.Get("/view", fileHandlers.View)
	files.Get("/include", fileHandlers.Include)

	// Uploaded files are also reachable directly, no auth.
	app.Static("/uploads", cfg.UploadsDir)

	return app
}
