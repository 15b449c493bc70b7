package wire

import (
	"Inkstone/internal/api"
	"Inkstone/internal/api/config"
	"Inkstone/internal/api/handler"
	"Inkstone/internal/pkg/storage"
	"Inkstone/internal/repository"
	"Inkstone/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
	Store  *storage.DiskStore
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	store, err := storage.NewDiskStore(&cfg.Media)
	if err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)

	userService := service.NewUserService(userRepo, store)
	postService := service.NewPostService(postRepo, userRepo, store)

	handlers := &api.HandlersGroup{
		UserHandler: handler.NewUserHandler(userService),
		PostHandler: handler.NewPostHandler(postService),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
		Store:  store,
	}, nil
}
