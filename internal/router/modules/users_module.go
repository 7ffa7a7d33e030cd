package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devconnect/devconnect-api/internal/container"
	handlers "github.com/devconnect/devconnect-api/internal/interface/http"
	"github.com/devconnect/devconnect-api/internal/interface/middleware"
)

type UsersModule struct {
	Handler *handlers.UsersHandler
}

func NewUsersModule(h *handlers.UsersHandler) *UsersModule {
	return &UsersModule{Handler: h}
}

func (m *UsersModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.POST("/users", registerLimiter, m.Handler.Register)
}
