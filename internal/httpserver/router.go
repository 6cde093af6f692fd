package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"callsheet/internal/handler"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	authHandler *handler.AuthHandler,
	projectHandler *handler.ProjectHandler,
	statsHandler *handler.StatsHandler,
	exportHandler *handler.ExportHandler,
	notificationHandler *handler.NotificationHandler,
	projects ProjectLookup,
	jwtSecret string,
	db *pgxpool.Pool,
) *Router {
	r := gin.Default()
	r.Use(MetricsMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(500, gin.H{"status": "db_not_ready", "error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Protected
	auth := r.Group("/")
	auth.Use(AuthMiddleware(jwtSecret))
	{
		auth.POST("/projects", projectHandler.CreateProject)
		auth.GET("/projects", projectHandler.ListProjects)

		// Everything addressing a single project is owner-only.
		proj := auth.Group("/projects/:id")
		proj.Use(RequireProjectOwner(projects))
		{
			proj.GET("", projectHandler.GetProject)
			proj.DELETE("", projectHandler.DeleteProject)

			proj.PUT("/budget", projectHandler.UpdateBudget)
			proj.POST("/expenses", projectHandler.AddExpense)
			proj.PUT("/expenses/:expenseID", projectHandler.UpdateExpense)
			proj.DELETE("/expenses/:expenseID", projectHandler.DeleteExpense)

			proj.POST("/shooting-days", projectHandler.AddShootingDay)
			proj.PUT("/shooting-days/:dayID", projectHandler.UpdateShootingDay)
			proj.DELETE("/shooting-days/:dayID", projectHandler.DeleteShootingDay)

			proj.POST("/phases", projectHandler.AddPhase)
			proj.PUT("/phases/:phaseID", projectHandler.UpdatePhase)
			proj.DELETE("/phases/:phaseID", projectHandler.DeletePhase)
			proj.POST("/phases/:phaseID/tasks", projectHandler.AddTask)
			proj.PUT("/phases/:phaseID/tasks/:taskID", projectHandler.UpdateTask)
			proj.DELETE("/phases/:phaseID/tasks/:taskID", projectHandler.DeleteTask)

			proj.GET("/milestones", projectHandler.ListMilestones)
			proj.POST("/milestones", projectHandler.AddMilestone)
			proj.PUT("/milestones/:milestoneID", projectHandler.UpdateMilestone)
			proj.DELETE("/milestones/:milestoneID", projectHandler.DeleteMilestone)

			proj.POST("/team", projectHandler.AddTeamMember)
			proj.PUT("/team/:memberID", projectHandler.UpdateTeamMember)
			proj.DELETE("/team/:memberID", projectHandler.DeleteTeamMember)

			proj.POST("/equipment", projectHandler.AddEquipmentItem)
			proj.PUT("/equipment/:itemID", projectHandler.UpdateEquipmentItem)
			proj.DELETE("/equipment/:itemID", projectHandler.DeleteEquipmentItem)

			proj.POST("/checklist", projectHandler.AddChecklistItem)
			proj.PUT("/checklist/:itemID", projectHandler.UpdateChecklistItem)
			proj.DELETE("/checklist/:itemID", projectHandler.DeleteChecklistItem)

			proj.POST("/documents", projectHandler.AddDocument)
			proj.PUT("/documents/:documentID", projectHandler.UpdateDocument)
			proj.DELETE("/documents/:documentID", projectHandler.DeleteDocument)

			proj.PUT("/sections/:section", projectHandler.ReplaceSection)

			proj.GET("/stats", statsHandler.GetStats)
			proj.GET("/export/:section", exportHandler.ExportSection)
			proj.GET("/notifications", notificationHandler.ListNotifications)
		}
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
