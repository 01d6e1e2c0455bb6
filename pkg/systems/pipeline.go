package systems

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Resource 系统读写的共享资源名
type Resource string

const (
	ResEntities    Resource = "entities"
	ResInput       Resource = "input"
	ResWave        Resource = "wave"
	ResEnemyCount  Resource = "enemyCount"
	ResScore       Resource = "score"
	ResPlayer      Resource = "playerState"
	ResGameState   Resource = "gameState"
	ResEvents      Resource = "events"
	ResTick        Resource = "tick"
	ResRandom      Resource = "random"
	ResRenderCache Resource = "renderCache"
	ResHUD         Resource = "hud"
)

// Updater 固定步长更新的系统
type Updater interface {
	Update(deltaTime float64)
}

// UpdateFunc 让普通函数满足 Updater
type UpdateFunc func(deltaTime float64)

// Update 实现 Updater
func (f UpdateFunc) Update(deltaTime float64) { f(deltaTime) }

// Step 流水线中的一个系统及其声明的读写集
type Step struct {
	Name   string
	System Updater
	Reads  []Resource
	Writes []Resource
}

// Stage 同一阶段内的步骤可以并行执行
// 构造时校验：任意两个步骤的写集不相交，且一个步骤的写集与另一个步骤的读集不相交
type Stage struct {
	Steps []Step
}

// Sequential 单步阶段
func Sequential(step Step) Stage {
	return Stage{Steps: []Step{step}}
}

// Parallel 多步并行阶段
func Parallel(steps ...Step) Stage {
	return Stage{Steps: steps}
}

// Pipeline 按固定顺序执行的 tick 流水线
type Pipeline struct {
	stages []Stage
}

// NewPipeline 创建流水线并校验每个阶段的读写集
//
// 返回：
//   - error: 同一阶段内存在写冲突时返回错误，错误信息包含冲突的步骤和资源
func NewPipeline(stages ...Stage) (*Pipeline, error) {
	for i, stage := range stages {
		if len(stage.Steps) == 0 {
			return nil, fmt.Errorf("stage %d has no steps", i)
		}
		if err := validateStage(stage); err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
	}
	return &Pipeline{stages: stages}, nil
}

func validateStage(stage Stage) error {
	for i := range stage.Steps {
		for j := range stage.Steps {
			if i == j {
				continue
			}
			a, b := stage.Steps[i], stage.Steps[j]
			for _, w := range a.Writes {
				if contains(b.Writes, w) {
					return fmt.Errorf("steps %q and %q both write %q", a.Name, b.Name, w)
				}
				if contains(b.Reads, w) {
					return fmt.Errorf("step %q writes %q which step %q reads", a.Name, w, b.Name)
				}
			}
		}
	}
	return nil
}

func contains(list []Resource, r Resource) bool {
	for _, x := range list {
		if x == r {
			return true
		}
	}
	return false
}

// Run 执行一次 tick
// 单步阶段直接调用；多步阶段用 errgroup 并行执行并等待全部完成
func (p *Pipeline) Run(deltaTime float64) {
	for _, stage := range p.stages {
		if len(stage.Steps) == 1 {
			stage.Steps[0].System.Update(deltaTime)
			continue
		}

		var g errgroup.Group
		for _, step := range stage.Steps {
			sys := step.System
			g.Go(func() error {
				sys.Update(deltaTime)
				return nil
			})
		}
		_ = g.Wait()
	}
}

// String 返回流水线结构，如 "input -> movement -> [renderSync | hud]"
func (p *Pipeline) String() string {
	parts := make([]string, 0, len(p.stages))
	for _, stage := range p.stages {
		names := make([]string, 0, len(stage.Steps))
		for _, step := range stage.Steps {
			names = append(names, step.Name)
		}
		if len(names) == 1 {
			parts = append(parts, names[0])
		} else {
			parts = append(parts, "["+strings.Join(names, " | ")+"]")
		}
	}
	return strings.Join(parts, " -> ")
}
