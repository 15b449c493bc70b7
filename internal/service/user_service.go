package service

import (
	"Inkstone/internal/api/config"
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/pkg/security"
	"Inkstone/internal/pkg/storage"
	"Inkstone/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.UserDTO, error)
	Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.LoginResultDTO, error)
	GetUserById(ctx context.Context, id uint64) (*dto.UserDTO, error)
	GetAuthors(ctx context.Context) ([]*dto.UserDTO, error)
	EditUser(ctx context.Context, userID uint64, editDTO *dto.EditUserDTO) (*dto.UserDTO, error)
	ChangeAvatar(ctx context.Context, userID uint64, file *dto.UploadFileDTO) (string, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	store    *storage.DiskStore
}

func NewUserService(userRepo repository.UserRepo, store *storage.DiskStore) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		store:    store,
	}
}

// Register 注册新用户。邮箱小写归一后唯一，密码哈希绝不回传
func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.UserDTO, error) {
	if regDTO.Name == "" || regDTO.Email == "" || regDTO.Password == "" {
		return nil, ErrFillAllFields
	}

	newEmail := strings.ToLower(regDTO.Email)

	// 先查后建，无事务保护
	existing, err := s.userRepo.GetUserByEmail(ctx, newEmail)
	if err != nil {
		return nil, UnExpectedError
	}
	if existing != nil {
		return nil, ErrEmailRegistered
	}

	if len(strings.TrimSpace(regDTO.Password)) < consts.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if regDTO.Password != regDTO.Password2 {
		return nil, ErrPasswordMismatch
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return nil, UnExpectedError
	}

	user := &model.User{
		Name:     regDTO.Name,
		Email:    newEmail,
		Password: passwordHash,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		log.ErrorContext(ctx, "create user failed", "err", err)
		return nil, UnExpectedError
	}

	return s.toUserDTO(user), nil
}

// Login 校验凭据并签发会话令牌
func (s *UserServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.LoginResultDTO, error) {
	if loginDTO.Email == "" || loginDTO.Password == "" {
		return nil, ErrFillAllFields
	}

	newEmail := strings.ToLower(loginDTO.Email)
	user, err := s.userRepo.GetUserByEmail(ctx, newEmail)
	if err != nil {
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err = security.CheckPasswordHash(loginDTO.Password, user.Password); err != nil {
		return nil, ErrInvalidPassword
	}

	token, err := security.GenerateToken(user.ID, user.Name)
	if err != nil {
		return nil, UnExpectedError
	}

	return &dto.LoginResultDTO{
		Token: token,
		ID:    user.ID,
		Name:  user.Name,
	}, nil
}

func (s *UserServiceImpl) GetUserById(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.toUserDTO(user), nil
}

// GetAuthors 所有用户列表，不含密码哈希
func (s *UserServiceImpl) GetAuthors(ctx context.Context) ([]*dto.UserDTO, error) {
	users, err := s.userRepo.GetAllUsers(ctx)
	if err != nil {
		return nil, UnExpectedError
	}
	out := make([]*dto.UserDTO, len(users))
	for i, user := range users {
		out[i] = s.toUserDTO(user)
	}
	return out, nil
}

// EditUser 修改姓名/邮箱/密码，需验证当前密码
func (s *UserServiceImpl) EditUser(ctx context.Context, userID uint64, editDTO *dto.EditUserDTO) (*dto.UserDTO, error) {
	if editDTO.Name == "" || editDTO.Email == "" ||
		editDTO.CurrentPassword == "" || editDTO.NewPassword == "" {
		return nil, ErrFillAllFields
	}

	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	newEmail := strings.ToLower(editDTO.Email)
	emailOwner, err := s.userRepo.GetUserByEmail(ctx, newEmail)
	if err != nil {
		return nil, UnExpectedError
	}
	if emailOwner != nil && emailOwner.ID != userID {
		return nil, ErrEmailExists
	}

	if err = security.CheckPasswordHash(editDTO.CurrentPassword, user.Password); err != nil {
		return nil, ErrCurrentPassword
	}
	if editDTO.NewPassword != editDTO.ConfirmNewPassword {
		return nil, ErrNewPasswordMismatch
	}

	passwordHash, err := security.HashPassword(editDTO.NewPassword)
	if err != nil {
		return nil, UnExpectedError
	}

	user.Name = editDTO.Name
	user.Email = newEmail
	user.Password = passwordHash
	if err = s.userRepo.UpdateUserProfile(ctx, user); err != nil {
		log.ErrorContext(ctx, "update user profile failed", "err", err)
		return nil, UnExpectedError
	}

	return s.toUserDTO(user), nil
}

// ChangeAvatar 替换头像文件并落库新文件名。旧文件删除是尽力而为
func (s *UserServiceImpl) ChangeAvatar(ctx context.Context, userID uint64, file *dto.UploadFileDTO) (string, error) {
	if file == nil || len(file.Data) == 0 {
		return "", ErrNoImageChosen
	}
	maxSize := config.Cfg.Media.MaxAvatarSize
	if file.Size > maxSize {
		return "", ErrAvatarTooBig
	}

	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return "", UnExpectedError
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	oldAvatar := ""
	if user.Avatar != nil {
		oldAvatar = *user.Avatar
	}
	fileName, err := s.store.Replace(oldAvatar, file.Data, file.Name, maxSize)
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) {
			return "", ErrAvatarTooBig
		}
		log.ErrorContext(ctx, "save avatar failed", "err", err)
		return "", UnExpectedError
	}

	if err = s.userRepo.UpdateUserAvatar(ctx, userID, fileName); err != nil {
		return "", ErrAvatarChangeFailed
	}

	return fileName, nil
}

// toUserDTO 将 Model 转换为返回给前端的 DTO，头像补全为公共URL
func (s *UserServiceImpl) toUserDTO(user *model.User) *dto.UserDTO {
	out := &dto.UserDTO{}
	_ = copier.Copy(out, user)
	if user.Avatar != nil {
		out.Avatar = s.store.PublicURL(*user.Avatar)
	}
	return out
}
