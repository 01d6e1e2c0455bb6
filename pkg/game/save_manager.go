package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// SaveStore 存档后端
// Save/Load 只在进入 Save/Load 状态时同步调用一次，不在每个 tick 调用
type SaveStore interface {
	Save(ctx context.Context, rec SaveRecord) error
	Load(ctx context.Context) (SaveRecord, error)
}

// maxSaveFileSize 读档大小上限，存档正常只有十几个字节
const maxSaveFileSize = 1024

// FileSaveStore 基于本地文件的存档
//
// 文件布局：
//   - <dir>/<file>，默认 saves/save.txt
//   - 目录在第一次保存时自动创建，创建失败则放弃写文件
type FileSaveStore struct {
	dir  string
	path string
}

// NewFileSaveStore 创建文件存档后端
//
// 参数：
//   - dir: 存档目录（如 "saves"）
//   - file: 存档文件名（如 "save.txt"）
func NewFileSaveStore(dir, file string) *FileSaveStore {
	return &FileSaveStore{
		dir:  dir,
		path: filepath.Join(dir, file),
	}
}

// Path 返回存档文件路径
func (s *FileSaveStore) Path() string {
	return s.path
}

// Save 写入存档
func (s *FileSaveStore) Save(ctx context.Context, rec SaveRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("save cancelled: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}

	if err := os.WriteFile(s.path, EncodeSaveRecord(rec), 0644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("save exceeded deadline: %w", err)
	}

	log.Printf("[SaveManager] Saved wave=%d score=%d lives=%d to %s", rec.Wave, rec.Score, rec.Lives, s.path)
	return nil
}

// Load 读取存档
//
// 返回：
//   - 文件不存在：*LoadError{LoadReasonNotFound}，errors.Is(err, ErrSaveNotFound) 为 true
//   - 读取失败：*LoadError{LoadReasonIO}
//   - 内容损坏：*LoadError{LoadReasonMalformed}
func (s *FileSaveStore) Load(ctx context.Context) (SaveRecord, error) {
	if err := ctx.Err(); err != nil {
		return SaveRecord{}, &LoadError{Reason: LoadReasonIO, Err: err}
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return SaveRecord{}, &LoadError{Reason: LoadReasonNotFound, Err: ErrSaveNotFound}
		}
		return SaveRecord{}, &LoadError{Reason: LoadReasonIO, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxSaveFileSize))
	if err != nil {
		return SaveRecord{}, &LoadError{Reason: LoadReasonIO, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return SaveRecord{}, &LoadError{Reason: LoadReasonIO, Err: err}
	}

	rec, err := DecodeSaveRecord(data)
	if err != nil {
		return SaveRecord{}, err
	}

	log.Printf("[SaveManager] Loaded wave=%d score=%d lives=%d from %s", rec.Wave, rec.Score, rec.Lives, s.path)
	return rec, nil
}
