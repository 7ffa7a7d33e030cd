package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/devconnect/devconnect-api/internal/interface/http"
	"github.com/devconnect/devconnect-api/internal/interface/middleware"
	"github.com/devconnect/devconnect-api/pkg/helpers"
)

type PostsModule struct {
	Handler *handlers.PostsHandler
	JWT     *helpers.JWTManager
}

func NewPostsModule(h *handlers.PostsHandler, jwt *helpers.JWTManager) *PostsModule {
	return &PostsModule{Handler: h, JWT: jwt}
}

func (m *PostsModule) Register(rg *gin.RouterGroup) {
	// Public
	rg.GET("/posts", m.Handler.List)
	rg.GET("/posts/:id", m.Handler.Get)

	// Protected
	auth := rg.Group("/posts")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("", m.Handler.Create)
		auth.DELETE("/:id", m.Handler.Delete)
		auth.PUT("/like/:id", m.Handler.Like)
		auth.PUT("/unlike/:id", m.Handler.Unlike)
		auth.PUT("/comment/:id", m.Handler.AddComment)
		auth.DELETE("/comment/:id/:commentId", m.Handler.RemoveComment)
	}
}
