package util

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 校验请求结构体，错误原样返回给 response.Error 归类
func ValidateDTO(dto any) error {
	if err := validate.Struct(dto); err != nil {
		return err
	}
	return nil
}
