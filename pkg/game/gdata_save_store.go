package game

import (
	"context"
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
)

// 存档在 gdata 中的存储位置
const (
	saveObject   = "saves"
	saveProperty = "slot"
)

// GdataSaveStore 基于 gdata 跨平台存储的存档后端
// 内容与 FileSaveStore 使用相同的文本编码
type GdataSaveStore struct {
	gdataManager *gdata.Manager
}

// NewGdataSaveStore 创建 gdata 存档后端
//
// 参数：
//   - gdataManager: gdata 管理器，不能为 nil
func NewGdataSaveStore(gdataManager *gdata.Manager) *GdataSaveStore {
	return &GdataSaveStore{gdataManager: gdataManager}
}

// Save 写入存档
func (s *GdataSaveStore) Save(ctx context.Context, rec SaveRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("save cancelled: %w", err)
	}
	if err := s.gdataManager.SaveObjectProp(saveObject, saveProperty, EncodeSaveRecord(rec)); err != nil {
		return fmt.Errorf("failed to save game data: %w", err)
	}
	log.Printf("[GdataSaveStore] Saved wave=%d score=%d lives=%d", rec.Wave, rec.Score, rec.Lives)
	return nil
}

// Load 读取存档
func (s *GdataSaveStore) Load(ctx context.Context) (SaveRecord, error) {
	if err := ctx.Err(); err != nil {
		return SaveRecord{}, &LoadError{Reason: LoadReasonIO, Err: err}
	}
	if !s.gdataManager.ObjectPropExists(saveObject, saveProperty) {
		return SaveRecord{}, &LoadError{Reason: LoadReasonNotFound, Err: ErrSaveNotFound}
	}
	data, err := s.gdataManager.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		return SaveRecord{}, &LoadError{Reason: LoadReasonIO, Err: err}
	}
	if len(data) > maxSaveFileSize {
		return SaveRecord{}, &LoadError{
			Reason: LoadReasonMalformed,
			Err:    fmt.Errorf("save data too large: %d bytes", len(data)),
		}
	}
	return DecodeSaveRecord(data)
}
