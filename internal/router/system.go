package router

import (
	"context"
	"net/http"
	"sort"
	"time"

	"starblog/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type endpoint struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

func registerSystemRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", sitemap(r))
	r.GET("/health", health(db))
}

// sitemap lists every registered route, sorted by path then method.
func sitemap(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := r.Routes()
		out := make([]endpoint, 0, len(routes))
		for _, rt := range routes {
			out = append(out, endpoint{Method: rt.Method, Path: rt.Path})
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].Path != out[j].Path {
				return out[i].Path < out[j].Path
			}
			return out[i].Method < out[j].Method
		})
		c.JSON(http.StatusOK, gin.H{"endpoints": out})
	}
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := database.Ping(ctx, db); err != nil {
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
