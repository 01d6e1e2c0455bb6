package systems

import (
	"testing"

	"github.com/decker502/starshooter/internal/testutil"
	"github.com/decker502/starshooter/pkg/components"
	"github.com/decker502/starshooter/pkg/ecs"
	"github.com/decker502/starshooter/pkg/entities"
	"github.com/decker502/starshooter/pkg/game"
)

func TestOverlaps_Symmetric(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"same center", Rect{0, 0, 5, 5}, Rect{0, 0, 1, 1}, true},
		{"partial overlap", Rect{0, 0, 5, 5}, Rect{8, 3, 5, 5}, true},
		{"separated on x", Rect{0, 0, 5, 5}, Rect{11, 0, 5, 5}, false},
		{"separated on y", Rect{0, 0, 5, 5}, Rect{0, -11, 5, 5}, false},
		{"touching edges", Rect{0, 0, 5, 5}, Rect{10, 0, 5, 5}, false},
		{"overlap on x only", Rect{0, 0, 5, 5}, Rect{3, 20, 5, 5}, false},
		{"contained", Rect{0, 0, 50, 50}, Rect{10, -10, 2, 2}, true},
		{"thin beam crossing", Rect{0, 0, 2.25, 13.5}, Rect{30, 10, 36, 18.75}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := Overlaps(tt.a, tt.b)
			ba := Overlaps(tt.b, tt.a)
			if ab != ba {
				t.Fatalf("overlap is not symmetric: %v vs %v", ab, ba)
			}
			if ab != tt.want {
				t.Errorf("got %v, want %v", ab, tt.want)
			}
		})
	}
}

// TestCollision_LastEnemyOfWave 击毁本波唯一敌机：EnemyCount=0，Wave+1，计分，爆炸，掉落请求
func TestCollision_LastEnemyOfWave(t *testing.T) {
	em, w, cfg := newTestWorld(t)
	w.Wave = 3
	w.EnemyCount = 1
	enemy := entities.NewEnemy(em, cfg, 100, 50, 0, 0)
	laser := entities.NewLaserBeam(em, cfg, 100, 40)

	// OneIn(5) 命中，权重 [1,1,1,1] 掷出 1 -> WeaponLevelUp
	sys := NewCollisionSystem(em, w, cfg, &testutil.ScriptedRandom{Ints: []int{0, 1}})
	sys.Update(testDt)

	if em.IsAlive(enemy) || em.IsAlive(laser) {
		t.Error("enemy and laser should both be despawned")
	}
	if w.EnemyCount != 0 {
		t.Errorf("expected EnemyCount=0, got %d", w.EnemyCount)
	}
	if w.Wave != 4 {
		t.Errorf("expected Wave=4, got %d", w.Wave)
	}
	if w.Score != 100 {
		t.Errorf("expected Score=100, got %d", w.Score)
	}

	explosions := ecs.GetEntitiesWith1[*components.ExplosionComponent](em)
	if len(explosions) != 1 {
		t.Fatalf("expected 1 explosion, got %d", len(explosions))
	}
	if pos := positionOf(t, em, explosions[0]); pos.X != 100 || pos.Y != 50 {
		t.Errorf("explosion should be at enemy position, got (%v, %v)", pos.X, pos.Y)
	}

	requests := ecs.GetEntitiesWith1[*components.PowerUpRequestComponent](em)
	if len(requests) != 1 {
		t.Fatalf("expected 1 power-up request, got %d", len(requests))
	}
	req, _ := ecs.GetComponent[*components.PowerUpRequestComponent](em, requests[0])
	if req.Type != components.PowerUpWeaponLevel || req.X != 100 || req.Y != 50 {
		t.Errorf("unexpected request %+v", req)
	}
	if w.Player.WeaponLevel != 1 {
		t.Errorf("weapon should not auto upgrade by default, got level %d", w.Player.WeaponLevel)
	}
}

func TestCollision_NoDropOnMissedRoll(t *testing.T) {
	em, w, cfg := newTestWorld(t)
	w.EnemyCount = 2
	entities.NewEnemy(em, cfg, 0, 0, 0, 0)
	entities.NewLaserBeam(em, cfg, 0, 0)

	sys := NewCollisionSystem(em, w, cfg, &testutil.ScriptedRandom{Ints: []int{3}})
	sys.Update(testDt)

	if n := countWith[*components.PowerUpRequestComponent](em); n != 0 {
		t.Errorf("expected no request, got %d", n)
	}
	if w.Wave != 1 || w.EnemyCount != 1 {
		t.Errorf("wave should not advance while enemies remain: wave=%d count=%d", w.Wave, w.EnemyCount)
	}
}

func TestCollision_AutoUpgradeRule(t *testing.T) {
	em, w, cfg := newTestWorld(t)
	cfg.Rules.AutoUpgradeWeaponOnWaveClear = true
	w.EnemyCount = 1
	entities.NewEnemy(em, cfg, 0, 0, 0, 0)
	entities.NewLaserBeam(em, cfg, 0, 0)

	NewCollisionSystem(em, w, cfg, &testutil.ScriptedRandom{}).Update(testDt)

	if w.Player.WeaponLevel != 2 {
		t.Errorf("expected weapon level 2, got %d", w.Player.WeaponLevel)
	}
}

// TestCollision_OneLaserKillsOneEnemy 一发子弹同时覆盖两架敌机，只结算第一架
func TestCollision_OneLaserKillsOneEnemy(t *testing.T) {
	em, w, cfg := newTestWorld(t)
	w.EnemyCount = 2
	first := entities.NewEnemy(em, cfg, 0, 0, 0, 0)
	second := entities.NewEnemy(em, cfg, 10, 0, 0, 0)
	entities.NewLaserBeam(em, cfg, 5, 0)

	NewCollisionSystem(em, w, cfg, &testutil.ScriptedRandom{}).Update(testDt)

	if em.IsAlive(first) {
		t.Error("first enemy should be destroyed")
	}
	if !em.IsAlive(second) {
		t.Error("second enemy must survive: the laser was already consumed")
	}
	if w.EnemyCount != 1 || w.Score != 100 {
		t.Errorf("expected one kill, got count=%d score=%d", w.EnemyCount, w.Score)
	}
}

// TestCollision_TwoLasersOneEnemy 两发子弹同时命中一架敌机，第二发保留
func TestCollision_TwoLasersOneEnemy(t *testing.T) {
	em, w, cfg := newTestWorld(t)
	w.EnemyCount = 2
	entities.NewEnemy(em, cfg, 0, 0, 0, 0)
	a := entities.NewLaserBeam(em, cfg, -4, 0)
	b := entities.NewLaserBeam(em, cfg, 4, 0)

	NewCollisionSystem(em, w, cfg, &testutil.ScriptedRandom{}).Update(testDt)

	if em.IsAlive(a) {
		t.Error("first laser should be consumed")
	}
	if !em.IsAlive(b) {
		t.Error("second laser should survive")
	}
	if w.Score != 100 || w.EnemyCount != 1 {
		t.Errorf("enemy must be counted once: score=%d count=%d", w.Score, w.EnemyCount)
	}
	if n := countWith[*components.ExplosionComponent](em); n != 1 {
		t.Errorf("expected 1 explosion, got %d", n)
	}
}

// TestCollision_EnemyLaserLastLife 剩 1 条命被击中：子弹删除，生命归零，请求回到主菜单
func TestCollision_EnemyLaserLastLife(t *testing.T) {
	em, w, cfg := newTestWorld(t)
	w.Player.Lives = 1
	player := entities.NewPlayer(em, cfg, w.Window)
	pp := positionOf(t, em, player)
	laser := entities.NewEnemyLaser(em, cfg, pp.X, pp.Y)

	NewCollisionSystem(em, w, cfg, &testutil.ScriptedRandom{}).Update(testDt)

	if em.IsAlive(laser) {
		t.Error("enemy laser should be despawned")
	}
	if w.Player.Lives != 0 {
		t.Errorf("expected 0 lives, got %d", w.Player.Lives)
	}
	events := w.DrainEvents()
	if len(events) != 1 || events[0] != game.EventLivesDepleted {
		t.Errorf("expected LivesDepleted event, got %v", events)
	}
}

// TestCollision_AtMostOneLifePerTick 多发敌机子弹同时命中只扣一条命
func TestCollision_AtMostOneLifePerTick(t *testing.T) {
	em, w, cfg := newTestWorld(t)
	player := entities.NewPlayer(em, cfg, w.Window)
	pp := positionOf(t, em, player)
	first := entities.NewEnemyLaser(em, cfg, pp.X-5, pp.Y)
	second := entities.NewEnemyLaser(em, cfg, pp.X+5, pp.Y)

	NewCollisionSystem(em, w, cfg, &testutil.ScriptedRandom{}).Update(testDt)

	if w.Player.Lives != 2 {
		t.Errorf("expected 2 lives, got %d", w.Player.Lives)
	}
	if em.IsAlive(first) || !em.IsAlive(second) {
		t.Error("only the first overlapping laser should be consumed")
	}
	if len(w.DrainEvents()) != 0 {
		t.Error("no state event expected while lives remain")
	}
}

func TestCollision_ThreeHitsDepleteLives(t *testing.T) {
	em, w, cfg := newTestWorld(t)
	player := entities.NewPlayer(em, cfg, w.Window)
	pp := positionOf(t, em, player)
	sys := NewCollisionSystem(em, w, cfg, &testutil.ScriptedRandom{})

	for hit := 1; hit <= 3; hit++ {
		entities.NewEnemyLaser(em, cfg, pp.X, pp.Y)
		sys.Update(testDt)
		em.RemoveMarkedEntities()
		if want := uint32(3 - hit); w.Player.Lives != want {
			t.Fatalf("after hit %d expected %d lives, got %d", hit, want, w.Player.Lives)
		}
	}

	events := w.DrainEvents()
	if len(events) != 1 || events[0] != game.EventLivesDepleted {
		t.Errorf("expected exactly one LivesDepleted event, got %v", events)
	}
}

func TestCollision_PowerUpPickup(t *testing.T) {
	tests := []struct {
		name    string
		powerUp components.PowerUpType
		check   func(*testing.T, game.PlayerState)
	}{
		{"heal", components.PowerUpHeal, func(t *testing.T, ps game.PlayerState) {
			if ps.Lives != 4 {
				t.Errorf("expected 4 lives, got %d", ps.Lives)
			}
		}},
		{"level", components.PowerUpWeaponLevel, func(t *testing.T, ps game.PlayerState) {
			if ps.WeaponLevel != 2 {
				t.Errorf("expected level 2, got %d", ps.WeaponLevel)
			}
		}},
		{"shotgun", components.PowerUpSwitchToShotgun, func(t *testing.T, ps game.PlayerState) {
			if ps.WeaponType != components.WeaponShotgun {
				t.Errorf("expected shotgun, got %s", ps.WeaponType)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em, w, cfg := newTestWorld(t)
			player := entities.NewPlayer(em, cfg, w.Window)
			pp := positionOf(t, em, player)
			first := entities.NewPowerUp(em, cfg, pp.X, pp.Y, tt.powerUp)
			second := entities.NewPowerUp(em, cfg, pp.X+1, pp.Y, tt.powerUp)

			NewCollisionSystem(em, w, cfg, &testutil.ScriptedRandom{}).Update(testDt)

			if em.IsAlive(first) {
				t.Error("picked power-up should be despawned")
			}
			if !em.IsAlive(second) {
				t.Error("at most one power-up is collected per tick")
			}
			tt.check(t, w.Player)
		})
	}
}

func TestPowerUpSystem_MaterializesRequests(t *testing.T) {
	em, _, cfg := newTestWorld(t)
	req := entities.NewPowerUpRequest(em, 7, 8, components.PowerUpHeal)

	NewPowerUpSystem(em, cfg).Update(testDt)

	if em.IsAlive(req) {
		t.Error("request should be consumed")
	}
	powerUps := ecs.GetEntitiesWith1[*components.PowerUpComponent](em)
	if len(powerUps) != 1 {
		t.Fatalf("expected 1 power-up, got %d", len(powerUps))
	}
	pos := positionOf(t, em, powerUps[0])
	if pos.X != 7 || pos.Y != 8 {
		t.Errorf("power-up should spawn at request position, got (%v, %v)", pos.X, pos.Y)
	}
	pu, _ := ecs.GetComponent[*components.PowerUpComponent](em, powerUps[0])
	if pu.Type != components.PowerUpHeal {
		t.Errorf("unexpected type %s", pu.Type)
	}
}
