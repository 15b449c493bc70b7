package dto

import "time"

// PostBaseDTO 创建/编辑帖子的请求体（multipart 表单字段）
type PostBaseDTO struct {
	Title       string `form:"title" validate:"max=255"`
	Category    string `form:"category" validate:"max=50"`
	Description string `form:"description"`
}

// UploadFileDTO 上传文件的内容及元信息
type UploadFileDTO struct {
	Name string
	Size int64
	Data []byte
}

// PostDTO 帖子
type PostDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	CreatorID   uint64    `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
