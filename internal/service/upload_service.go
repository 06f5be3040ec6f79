package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/newsdesk/internal/config"
)

// ObjectStore 对象存储抽象，生产环境由 S3 客户端实现
type ObjectStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Exists(ctx context.Context, key string) (bool, error)
	PublicURL(key string) string
}

// UploadService 媒体上传服务
type UploadService struct {
	cfg   *config.Config
	store ObjectStore
}

// NewUploadService 创建媒体上传服务实例
func NewUploadService(cfg *config.Config, store ObjectStore) *UploadService {
	return &UploadService{cfg: cfg, store: store}
}

// UploadResult 上传结果
type UploadResult struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// SaveFile 上传文件到对象存储：随机对象名保留原扩展名，
// 写入后回查一次确认对象可见，再返回公开访问 URL。
func (s *UploadService) SaveFile(ctx context.Context, file *multipart.FileHeader) (*UploadResult, error) {
	if file == nil {
		return nil, ErrMissingFile
	}
	if s.store == nil {
		return nil, ErrStorageUnavailable
	}
	if s.cfg.Upload.MaxSize > 0 && file.Size > s.cfg.Upload.MaxSize {
		return nil, ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	key := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	if err := s.store.Put(ctx, key, src, file.Size, contentType); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	ok, err := s.store.Exists(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if !ok {
		return nil, ErrUploadVerifyFailed
	}

	return &UploadResult{
		URL: s.store.PublicURL(key),
		Key: key,
	}, nil
}
