package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/devconnect/devconnect-api/internal/interface/http"
	"github.com/devconnect/devconnect-api/internal/interface/middleware"
	"github.com/devconnect/devconnect-api/pkg/helpers"
)

type ProfileModule struct {
	Handler *handlers.ProfileHandler
	JWT     *helpers.JWTManager
}

func NewProfileModule(h *handlers.ProfileHandler, jwt *helpers.JWTManager) *ProfileModule {
	return &ProfileModule{Handler: h, JWT: jwt}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	// Public
	rg.GET("/profile", m.Handler.List)
	rg.GET("/profile/user/:id", m.Handler.GetByUser)
	rg.GET("/profile/github/:username", m.Handler.GithubRepos)

	// Protected
	auth := rg.Group("/profile")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/me", m.Handler.Me)
		auth.POST("", m.Handler.Upsert)
		auth.DELETE("", m.Handler.DeleteAccount)
		auth.PUT("/experience", m.Handler.AddExperience)
		auth.DELETE("/experience/:id", m.Handler.RemoveExperience)
		auth.PUT("/education", m.Handler.AddEducation)
		auth.DELETE("/education/:id", m.Handler.RemoveEducation)
	}
}
