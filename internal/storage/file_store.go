package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStore 本地磁盘的键值式文件存储
// 每次保存都会生成新的文件名，不同实体的并发上传不会相互覆盖
type FileStore struct {
	baseDir string
}

// NewFileStore 创建文件存储，目录不存在时自动创建
func NewFileStore(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("无法创建上传目录: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// Save 保存字节流，返回生成的存储标识（token）
func (s *FileStore) Save(ext string, r io.Reader) (string, error) {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	token := uuid.NewString()
	if ext != "" {
		token = token + "." + ext
	}

	f, err := os.Create(filepath.Join(s.baseDir, token))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return token, nil
}

// Open 根据存储标识读取文件，调用方负责关闭
func (s *FileStore) Open(token string) (io.ReadCloser, error) {
	// 防止路径穿越
	if filepath.Base(token) != token {
		return nil, os.ErrNotExist
	}

	f, err := os.Open(filepath.Join(s.baseDir, token))
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Remove 删除存储的文件，文件不存在不算错误
func (s *FileStore) Remove(token string) error {
	if filepath.Base(token) != token {
		return os.ErrNotExist
	}
	err := os.Remove(filepath.Join(s.baseDir, token))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
