package storage

import (
	"Inkstone/internal/api/config"
	log "log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrFileTooLarge 文件超出大小限制
var ErrFileTooLarge = errors.New("file exceeds size limit")

// DiskStore 基于本地磁盘的上传文件存储，文件以生成的文件名为键
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(cfg *config.MediaConfig) (*DiskStore, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create upload dir")
	}
	return &DiskStore{
		dir:     cfg.UploadDir,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Save 校验大小后落盘，返回生成的文件名。
// 文件名由原始文件名去掉扩展名的部分、随机 uuid 和原扩展名拼接而成
func (s *DiskStore) Save(data []byte, originalName string, maxSize int64) (string, error) {
	if int64(len(data)) > maxSize {
		return "", ErrFileTooLarge
	}

	fileName := newFileName(originalName)
	if err := os.WriteFile(filepath.Join(s.dir, fileName), data, 0o644); err != nil {
		return "", errors.Wrap(err, "failed to write file")
	}

	return fileName, nil
}

// Replace 尽力删除旧文件后写入新文件。删除失败只记日志不终止，
// 两步之间没有原子性保证
func (s *DiskStore) Replace(oldName string, data []byte, originalName string, maxSize int64) (string, error) {
	if oldName != "" {
		if err := s.Delete(oldName); err != nil {
			log.Warn("failed to delete old file, continuing", "file", oldName, "err", err)
		}
	}
	return s.Save(data, originalName, maxSize)
}

// Delete 删除文件，失败向调用方返回错误
func (s *DiskStore) Delete(fileName string) error {
	if err := os.Remove(filepath.Join(s.dir, fileName)); err != nil {
		return errors.Wrapf(err, "failed to delete file %s", fileName)
	}
	return nil
}

// PublicURL 文件的公共访问URL，由外部静态服务回源
func (s *DiskStore) PublicURL(fileName string) string {
	if fileName == "" {
		return ""
	}
	return s.baseURL + "/" + fileName
}

func newFileName(originalName string) string {
	base := filepath.Base(originalName)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return stem + uuid.NewString() + ext
}
