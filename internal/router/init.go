package router

import (
	"github.com/devconnect/devconnect-api/internal/application"
	"github.com/devconnect/devconnect-api/internal/container"
	"github.com/devconnect/devconnect-api/internal/infrastructure/mongodb"
	handlers "github.com/devconnect/devconnect-api/internal/interface/http"
	"github.com/devconnect/devconnect-api/internal/router/modules"
)

// InitModules builds repositories, services and handlers from the container
// singletons and registers every feature module with the router registry.
// Called once during application startup.
func InitModules(r *Registry) {
	db := container.GetMongo()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	users := mongodb.NewUserRepository(db)
	profiles := mongodb.NewProfileRepository(db)
	posts := mongodb.NewPostRepository(db)

	userSvc := application.NewUserService(users, jwt, logger)
	profileSvc := application.NewProfileService(profiles, users, container.GetGithub(), logger)
	postSvc := application.NewPostService(posts, users, logger)

	r.Add(modules.NewUsersModule(handlers.NewUsersHandler(userSvc, logger)))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(userSvc, logger), jwt))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(profileSvc, logger), jwt))
	r.Add(modules.NewPostsModule(handlers.NewPostsHandler(postSvc, logger), jwt))
}
