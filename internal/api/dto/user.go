package dto

import "time"

// RegisterDTO 注册
type RegisterDTO struct {
	Name      string `json:"name" validate:"max=100"`
	Email     string `json:"email" validate:"max=255"`
	Password  string `json:"password" validate:"max=72"`
	Password2 string `json:"password2" validate:"max=72"`
}

// LoginDTO 登录凭证
type LoginDTO struct {
	Email    string `json:"email" validate:"max=255"`
	Password string `json:"password" validate:"max=72"`
}

// LoginResultDTO 登录成功后返回的令牌及身份
type LoginResultDTO struct {
	Token string `json:"token"`
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
}

// EditUserDTO 修改个人资料
type EditUserDTO struct {
	Name               string `json:"name" validate:"max=100"`
	Email              string `json:"email" validate:"max=255"`
	CurrentPassword    string `json:"currentPassword" validate:"max=72"`
	NewPassword        string `json:"newPassword" validate:"max=72"`
	ConfirmNewPassword string `json:"confirmNewPassword" validate:"max=72"`
}

// UserDTO 用户，读路径永不携带密码哈希
type UserDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	PostCount int       `json:"posts"`
	CreatedAt time.Time `json:"created_at"`
}
