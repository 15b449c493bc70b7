package service

import (
	"Inkstone/internal/api/config"
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/pkg/storage"
	"Inkstone/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"github.com/jinzhu/copier"
)

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, postDTO *dto.PostBaseDTO, thumbnail *dto.UploadFileDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, postID uint64) (*dto.PostDTO, error)
	GetPosts(ctx context.Context) ([]*dto.PostDTO, error)
	GetPostsByCategory(ctx context.Context, category string) ([]*dto.PostDTO, error)
	GetPostsByCreator(ctx context.Context, creatorID uint64) ([]*dto.PostDTO, error)
	EditPost(ctx context.Context, userID uint64, postID uint64, postDTO *dto.PostBaseDTO, thumbnail *dto.UploadFileDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, userID uint64, postID uint64) error
}

type postServiceImpl struct {
	postRepo repository.PostRepo
	userRepo repository.UserRepo
	store    *storage.DiskStore
}

func NewPostService(postRepo repository.PostRepo, userRepo repository.UserRepo, store *storage.DiskStore) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		userRepo: userRepo,
		store:    store,
	}
}

// CreatePost 创建帖子并将作者的帖子计数加一。
// 计数是先读后写，和帖子写入之间没有事务
func (s *postServiceImpl) CreatePost(ctx context.Context, userID uint64, postDTO *dto.PostBaseDTO, thumbnail *dto.UploadFileDTO) (*dto.PostDTO, error) {
	if postDTO.Title == "" || postDTO.Category == "" || postDTO.Description == "" ||
		thumbnail == nil || len(thumbnail.Data) == 0 {
		return nil, ErrPostFieldsMissing
	}

	maxSize := config.Cfg.Media.MaxThumbnailSize
	if thumbnail.Size > maxSize {
		return nil, ErrThumbnailTooBig
	}

	fileName, err := s.store.Save(thumbnail.Data, thumbnail.Name, maxSize)
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) {
			return nil, ErrThumbnailTooBig
		}
		log.ErrorContext(ctx, "save thumbnail failed", "err", err)
		return nil, UnExpectedError
	}

	post := &model.Post{
		Title:       postDTO.Title,
		Category:    postDTO.Category,
		Description: postDTO.Description,
		Thumbnail:   fileName,
		CreatorID:   userID,
	}
	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		if errors.Is(err, repository.ErrInvalidCategory) {
			return nil, ErrInvalidCategory
		}
		log.ErrorContext(ctx, "create post failed", "err", err)
		return nil, ErrPostCreateFailed
	}

	if err = s.bumpPostCount(ctx, userID, 1); err != nil {
		return nil, UnExpectedError
	}

	return s.toPostDTO(post), nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil {
		return nil, UnExpectedError
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return s.toPostDTO(post), nil
}

// GetPosts 全量帖子，按最近更新排序
func (s *postServiceImpl) GetPosts(ctx context.Context) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.GetPosts(ctx)
	if err != nil {
		return nil, UnExpectedError
	}
	return s.batchToPostDTO(posts), nil
}

func (s *postServiceImpl) GetPostsByCategory(ctx context.Context, category string) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.GetPostsByCategory(ctx, category)
	if err != nil {
		return nil, UnExpectedError
	}
	return s.batchToPostDTO(posts), nil
}

func (s *postServiceImpl) GetPostsByCreator(ctx context.Context, creatorID uint64) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.GetPostsByCreator(ctx, creatorID)
	if err != nil {
		return nil, UnExpectedError
	}
	return s.batchToPostDTO(posts), nil
}

// EditPost 编辑帖子。非创建者的修改不落库，调用方只收到一个
// 笼统的更新失败错误，而不是鉴权错误
func (s *postServiceImpl) EditPost(ctx context.Context, userID uint64, postID uint64, postDTO *dto.PostBaseDTO, thumbnail *dto.UploadFileDTO) (*dto.PostDTO, error) {
	if postDTO.Title == "" || postDTO.Category == "" ||
		len(postDTO.Description) < consts.MinDescriptionLength {
		return nil, ErrFillAllFields
	}

	oldPost, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil {
		return nil, UnExpectedError
	}
	if oldPost == nil {
		return nil, ErrPostNotFound
	}
	if oldPost.CreatorID != userID {
		return nil, ErrPostUpdateFailed
	}

	newFileName := oldPost.Thumbnail
	if thumbnail != nil && len(thumbnail.Data) > 0 {
		maxSize := config.Cfg.Media.MaxThumbnailSize
		if thumbnail.Size > maxSize {
			return nil, ErrThumbnailTooBig
		}
		newFileName, err = s.store.Replace(oldPost.Thumbnail, thumbnail.Data, thumbnail.Name, maxSize)
		if err != nil {
			if errors.Is(err, storage.ErrFileTooLarge) {
				return nil, ErrThumbnailTooBig
			}
			log.ErrorContext(ctx, "replace thumbnail failed", "err", err)
			return nil, UnExpectedError
		}
	}

	oldPost.Title = postDTO.Title
	oldPost.Category = postDTO.Category
	oldPost.Description = postDTO.Description
	oldPost.Thumbnail = newFileName
	if err = s.postRepo.UpdatePost(ctx, oldPost); err != nil {
		if errors.Is(err, repository.ErrInvalidCategory) {
			return nil, ErrInvalidCategory
		}
		log.ErrorContext(ctx, "update post failed", "err", err)
		return nil, ErrPostUpdateFailed
	}

	updated, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil || updated == nil {
		return s.toPostDTO(oldPost), nil
	}
	return s.toPostDTO(updated), nil
}

// DeletePost 删除帖子及其缩略图文件，并将作者计数减一（不低于0）。
// 只有创建者可以删除
func (s *postServiceImpl) DeletePost(ctx context.Context, userID uint64, postID uint64) error {
	if postID == 0 {
		return ErrPostUnavailable
	}

	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil {
		return UnExpectedError
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.CreatorID != userID {
		return ErrPostDeleteFailed
	}

	if err = s.store.Delete(post.Thumbnail); err != nil {
		log.ErrorContext(ctx, "delete thumbnail failed", "file", post.Thumbnail, "err", err)
		return UnExpectedError
	}

	if err = s.postRepo.DeletePost(ctx, postID); err != nil {
		log.ErrorContext(ctx, "delete post failed", "err", err)
		return UnExpectedError
	}

	return s.bumpPostCount(ctx, userID, -1)
}

// bumpPostCount 调整作者的冗余帖子计数，下限为0
func (s *postServiceImpl) bumpPostCount(ctx context.Context, userID uint64, delta int) error {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return UnExpectedError
	}
	if user == nil {
		return nil
	}

	count := user.PostCount + delta
	if count < 0 {
		count = 0
	}
	if err = s.userRepo.UpdateUserPostCount(ctx, userID, count); err != nil {
		log.ErrorContext(ctx, "update post count failed", "user_id", userID, "err", err)
		return UnExpectedError
	}
	return nil
}

// toPostDTO 将 Model 转换为返回给前端的 DTO，缩略图补全为公共URL
func (s *postServiceImpl) toPostDTO(post *model.Post) *dto.PostDTO {
	out := &dto.PostDTO{}
	_ = copier.Copy(out, post)
	out.Thumbnail = s.store.PublicURL(post.Thumbnail)
	return out
}

func (s *postServiceImpl) batchToPostDTO(posts []*model.Post) []*dto.PostDTO {
	out := make([]*dto.PostDTO, len(posts))
	for i, post := range posts {
		out[i] = s.toPostDTO(post)
	}
	return out
}
