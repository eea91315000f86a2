package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autopneuma/autopneuma-api/internal/config"
	"github.com/autopneuma/autopneuma-api/internal/domain/scripture"
	"github.com/autopneuma/autopneuma-api/internal/infrastructure/metrics"
	"github.com/autopneuma/autopneuma-api/internal/interfaces/httpserver/requests"
	"github.com/autopneuma/autopneuma-api/internal/interfaces/httpserver/responses"
)

func registerScriptureRoutes(group *gin.RouterGroup, assistant *scripture.Assistant, cfg *config.Config) {
	scriptureGroup := group.Group("/scripture")
	scriptureGroup.POST("/context", scriptureContext(assistant))
	scriptureGroup.GET("/health", scriptureHealth(cfg))
}

// scriptureContext godoc
// @Summary      Get biblical context for a query
// @Description  Returns scripture references, theological insights and practical application for faith and technology questions.
// @Tags         scripture
// @Accept       json
// @Produce      json
// @Success      200  {object}  scripture.Response
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /api/v1/scripture/context [post]
func scriptureContext(assistant *scripture.Assistant) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.ScriptureContextRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, responses.ErrorResponse{Detail: err.Error()})
			return
		}

		result := assistant.GetContext(c.Request.Context(), scripture.Request{
			Query:        req.Query,
			Context:      req.Context,
			ContentType:  req.ContentType,
			BibleVersion: req.BibleVersion,
		})

		metrics.ScriptureRequestsTotal.Inc()

		c.JSON(http.StatusOK, result)
	}
}

func scriptureHealth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "scripture_assistant",
			"status":  "healthy",
			"enabled": cfg.EnableScriptureAssistant,
		})
	}
}
