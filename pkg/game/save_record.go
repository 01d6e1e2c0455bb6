package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SaveRecord 持久化的最小游戏进度
type SaveRecord struct {
	Wave  uint32
	Score uint32
	Lives uint32
}

// ErrSaveNotFound 存档不存在
// 这是正常可恢复的情况（例如第一次运行）
var ErrSaveNotFound = errors.New("save not found")

// LoadReason 读档失败原因
type LoadReason int

const (
	LoadReasonNotFound LoadReason = iota
	LoadReasonMalformed
	LoadReasonIO
)

// String 返回失败原因的可读名称
func (r LoadReason) String() string {
	switch r {
	case LoadReasonNotFound:
		return "not found"
	case LoadReasonMalformed:
		return "malformed"
	case LoadReasonIO:
		return "io"
	default:
		return fmt.Sprintf("LoadReason(%d)", int(r))
	}
}

// LoadError 读档错误
// 所有原因都映射到同一个回退：返回主菜单
type LoadError struct {
	Reason LoadReason
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("load failed (%s)", e.Reason)
	}
	return fmt.Sprintf("load failed (%s): %v", e.Reason, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// saveRecordLines 存档文本的字段行数：wave, score, lives
const saveRecordLines = 3

// MaxSaveWave 解码时接受的波次上限，防止损坏的存档一次生成海量敌机
// 场景读档时还会用配置的 saves.maxWave 再检查一次
const MaxSaveWave uint32 = 100000

// Validate 检查存档字段的取值范围
// wave 必须在 [1, maxWave]，lives 必须 >= 1（0 条命的存档无法进入 InGame）
func (rec SaveRecord) Validate(maxWave uint32) error {
	switch {
	case rec.Wave == 0:
		return &LoadError{Reason: LoadReasonMalformed, Err: errors.New("field wave: must be >= 1")}
	case rec.Wave > maxWave:
		return &LoadError{
			Reason: LoadReasonMalformed,
			Err:    fmt.Errorf("field wave: %d exceeds limit %d", rec.Wave, maxWave),
		}
	case rec.Lives == 0:
		return &LoadError{Reason: LoadReasonMalformed, Err: errors.New("field lives: must be >= 1")}
	}
	return nil
}

// EncodeSaveRecord 编码为 UTF-8 文本，每行一个十进制无符号整数，以换行结尾
func EncodeSaveRecord(rec SaveRecord) []byte {
	return []byte(fmt.Sprintf("%d\n%d\n%d\n", rec.Wave, rec.Score, rec.Lives))
}

// DecodeSaveRecord 解析存档文本
// 多余的行被忽略；少于 3 行、字段非数字或超出范围（见 Validate）返回 LoadReasonMalformed
func DecodeSaveRecord(data []byte) (SaveRecord, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) < saveRecordLines {
		return SaveRecord{}, &LoadError{
			Reason: LoadReasonMalformed,
			Err:    fmt.Errorf("expected %d lines, got %d", saveRecordLines, len(lines)),
		}
	}

	var fields [saveRecordLines]uint32
	names := [saveRecordLines]string{"wave", "score", "lives"}
	for i := 0; i < saveRecordLines; i++ {
		v, err := strconv.ParseUint(strings.TrimSpace(lines[i]), 10, 32)
		if err != nil {
			return SaveRecord{}, &LoadError{
				Reason: LoadReasonMalformed,
				Err:    fmt.Errorf("field %s: %w", names[i], err),
			}
		}
		fields[i] = uint32(v)
	}

	rec := SaveRecord{Wave: fields[0], Score: fields[1], Lives: fields[2]}
	if err := rec.Validate(MaxSaveWave); err != nil {
		return SaveRecord{}, err
	}
	return rec, nil
}
