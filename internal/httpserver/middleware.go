package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"callsheet/internal/model"
	"callsheet/internal/util"
	"callsheet/pkg/metrics"
)

// ProjectLookup is the slice of the project service the ownership
// middleware needs.
type ProjectLookup interface {
	GetProject(id string) (*model.ProductionProject, error)
}

func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := util.ExtractToken(c.Request)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		userID, err := util.ParseJWT(token, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		// store user_id in context so handlers can use it
		c.Set("user_id", userID)

		c.Next()
	}
}

// RequireProjectOwner rejects requests whose authenticated user does not
// own the addressed project. Missing and foreign projects both answer 404
// so the API does not reveal which ids exist.
func RequireProjectOwner(projects ProjectLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := projects.GetProject(c.Param("id"))
		if err != nil || p.OwnerID != c.GetInt("user_id") {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// MetricsMiddleware records request durations per route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
