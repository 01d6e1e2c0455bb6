package systems

import (
	"github.com/decker502/starshooter/pkg/components"
	"github.com/decker502/starshooter/pkg/config"
	"github.com/decker502/starshooter/pkg/ecs"
	"github.com/decker502/starshooter/pkg/entities"
)

// PowerUpSystem 把道具生成请求转换为可拾取的道具实体
// 请求在同一 tick 内被消费并删除
type PowerUpSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
}

// NewPowerUpSystem 创建道具系统
func NewPowerUpSystem(em *ecs.EntityManager, cfg *config.GameConfig) *PowerUpSystem {
	return &PowerUpSystem{
		entityManager: em,
		config:        cfg,
	}
}

// Update 处理所有待处理的请求
func (s *PowerUpSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.PowerUpRequestComponent](s.entityManager) {
		req, _ := ecs.GetComponent[*components.PowerUpRequestComponent](s.entityManager, id)
		entities.NewPowerUp(s.entityManager, s.config, req.X, req.Y, req.Type)
		s.entityManager.DestroyEntity(id)
	}
}
