package handler

import (
	"Inkstone/internal/api/dto"
	"io"

	"github.com/gin-gonic/gin"
)

// readFormFile 读取 multipart 表单中的上传文件
func readFormFile(c *gin.Context, field string) (*dto.UploadFileDTO, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, err
	}

	reader, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	return &dto.UploadFileDTO{
		Name: file.Filename,
		Size: file.Size,
		Data: data,
	}, nil
}
