package api

import (
	"Inkstone/internal/api/config"
	"Inkstone/internal/api/middleware"
	"Inkstone/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	// 上传目录由静态服务按文件名回源
	r.Static("/uploads", config.Cfg.Media.UploadDir)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/users")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.GET("/authors", group.UserHandler.GetAuthors)
			userGroup.GET("/:user_id", group.UserHandler.GetUser)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/change-avatar", group.UserHandler.ChangeAvatar)
				authGroup.PATCH("/edit-user", group.UserHandler.EditUser)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("", group.PostHandler.GetPosts)
			postGroup.GET("/categories/:category", group.PostHandler.GetCategoryPosts)
			postGroup.GET("/users/:user_id", group.PostHandler.GetUserPosts)
			postGroup.GET("/:post_id", group.PostHandler.GetPost)

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.PATCH("/:post_id", group.PostHandler.EditPost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
			}
		}
	}

	return r
}
