package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/autopneuma/autopneuma-api/internal/config"
	"github.com/autopneuma/autopneuma-api/internal/domain/moderation"
	"github.com/autopneuma/autopneuma-api/internal/domain/scripture"
	"github.com/autopneuma/autopneuma-api/internal/domain/tool"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	cfg        *config.Config
	moderation *moderation.Service
	scripture  *scripture.Assistant
	tools      *tool.Service
}

// NewRoutes builds the v1 route registrar.
func NewRoutes(cfg *config.Config, moderationSvc *moderation.Service, scriptureSvc *scripture.Assistant, toolSvc *tool.Service) *Routes {
	return &Routes{
		cfg:        cfg,
		moderation: moderationSvc,
		scripture:  scriptureSvc,
		tools:      toolSvc,
	}
}

// Register attaches all v1 routes under the /api/v1 prefix.
func (r *Routes) Register(engine *gin.Engine) {
	group := engine.Group("/api/v1")
	registerModerationRoutes(group, r.moderation, r.cfg)
	registerScriptureRoutes(group, r.scripture, r.cfg)
	registerToolRoutes(group, r.tools, r.cfg)
}
