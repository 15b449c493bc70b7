package service

import (
	"Inkstone/internal/api/config"
	"Inkstone/internal/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestStore 初始化测试配置与落盘存储，上传目录用临时目录
func newTestStore(t *testing.T) *storage.DiskStore {
	t.Helper()

	dir := t.TempDir()
	config.Cfg = &config.Config{
		JWT: config.JWTConfig{
			Secret:      "test-secret",
			ExpireHours: 24,
			Issuer:      "Inkstone",
		},
		Media: config.MediaConfig{
			UploadDir:        dir,
			PublicBaseURL:    "http://localhost:8080/uploads",
			MaxAvatarSize:    500000,
			MaxThumbnailSize: 2000000,
		},
	}

	store, err := storage.NewDiskStore(&config.Cfg.Media)
	require.NoError(t, err)
	return store
}
