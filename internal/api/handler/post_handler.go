package handler

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/pkg/util"
	"Inkstone/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var postDTO dto.PostBaseDTO
	err := c.ShouldBind(&postDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&postDTO); err != nil {
		response.Error(c, err)
		return
	}
	// 缩略图缺失不在此处拦截，由服务层给出统一的校验错误
	thumbnail, _ := readFormFile(c, "thumbnail")
	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, &postDTO, thumbnail)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) GetPosts(c *gin.Context) {
	posts, err := s.postSvc.GetPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	post, err := s.postSvc.GetPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) GetCategoryPosts(c *gin.Context) {
	category := c.Param("category")
	posts, err := s.postSvc.GetPostsByCategory(c.Request.Context(), category)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) GetUserPosts(c *gin.Context) {
	creatorID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	posts, err := s.postSvc.GetPostsByCreator(c.Request.Context(), creatorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) EditPost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var postDTO dto.PostBaseDTO
	if err = c.ShouldBind(&postDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&postDTO); err != nil {
		response.Error(c, err)
		return
	}
	// 编辑时缩略图可选
	thumbnail, _ := readFormFile(c, "thumbnail")
	post, err := s.postSvc.EditPost(c.Request.Context(), userID, postID, &postDTO, thumbnail)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrPostUnavailable)
		return
	}
	if err = s.postSvc.DeletePost(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
