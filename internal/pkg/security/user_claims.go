package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims 会话令牌中携带的业务信息
type UserClaims struct {
	UserID uint64 `json:"id"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}
