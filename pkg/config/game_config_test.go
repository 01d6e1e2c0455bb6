package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	if got := cfg.Simulation.FixedDelta(); got != 1.0/60.0 {
		t.Errorf("expected fixed delta 1/60, got %v", got)
	}
	if cfg.Player.StartLives != 3 {
		t.Errorf("expected 3 start lives, got %d", cfg.Player.StartLives)
	}
	if cfg.Rules.AutoUpgradeWeaponOnWaveClear {
		t.Error("auto upgrade rule should be off by default")
	}
}

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "partial document keeps defaults",
			yamlContent: `
window:
  width: 800
  height: 600
rules:
  autoUpgradeWeaponOnWaveClear: true
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
					t.Errorf("expected 800x600, got %vx%v", cfg.Window.Width, cfg.Window.Height)
				}
				if !cfg.Rules.AutoUpgradeWeaponOnWaveClear {
					t.Error("expected auto upgrade rule to be enabled")
				}
				if cfg.Simulation.BaseSpeed != 500 {
					t.Errorf("expected default baseSpeed 500, got %v", cfg.Simulation.BaseSpeed)
				}
				if cfg.Window.Title != "shooter game" {
					t.Errorf("expected default title, got %q", cfg.Window.Title)
				}
			},
		},
		{
			name: "custom weights",
			yamlContent: `
powerUps:
  weights:
    heal: 5
    weaponLevelUp: 0
    switchToLasergun: 0
    switchToShotgun: 0
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.PowerUps.Weights.Total() != 5 {
					t.Errorf("expected total weight 5, got %d", cfg.PowerUps.Weights.Total())
				}
			},
		},
		{
			name:        "zero tick rate",
			yamlContent: "simulation:\n  tickRate: 0\n",
			wantErr:     true,
			errContains: "simulation.tickRate",
		},
		{
			name: "all weights zero",
			yamlContent: `
powerUps:
  weights: { heal: 0, weaponLevelUp: 0, switchToLasergun: 0, switchToShotgun: 0 }
`,
			wantErr:     true,
			errContains: "weights cannot all be zero",
		},
		{
			name:        "spawn margins swallow window",
			yamlContent: "enemy:\n  bottomMargin: 700\n",
			wantErr:     true,
			errContains: "no vertical spawn area",
		},
		{
			name:        "dispersion out of range",
			yamlContent: "weapons:\n  shotgun:\n    dispersionDeg: 180\n",
			wantErr:     true,
			errContains: "dispersionDeg",
		},
		{
			name:        "zero max wave",
			yamlContent: "saves:\n  maxWave: 0\n",
			wantErr:     true,
			errContains: "saves.maxWave",
		},
		{
			name:        "malformed yaml",
			yamlContent: "window: [unclosed",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(path, []byte("enemy:\n  killScore: 250\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig failed: %v", err)
	}
	if cfg.Enemy.KillScore != 250 {
		t.Errorf("expected killScore 250, got %d", cfg.Enemy.KillScore)
	}

	if _, err := LoadGameConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestShippedConfigMatchesDefaults 仓库自带的 data/game.yaml 应与默认值一致
func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadGameConfig(filepath.Join("..", "..", "data", "game.yaml"))
	if err != nil {
		t.Fatalf("failed to load shipped config: %v", err)
	}
	def := DefaultGameConfig()
	if *cfg != *def {
		t.Errorf("data/game.yaml drifted from DefaultGameConfig:\n got  %+v\n want %+v", *cfg, *def)
	}
}
