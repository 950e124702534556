// Package config 提供关卡和窗口配置
//
// 关卡文件是 YAML 格式：瓦片网格（路径编码、道岔、传送门/站台角色）
// 加上列车任务列表（入口、目标站台、目标出口、速度、生成延迟）。
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LevelConfig 关卡配置数据结构
type LevelConfig struct {
	ID   string `yaml:"id"`   // 关卡ID，如 "1"
	Name string `yaml:"name"` // 关卡名称（可选）

	Rows int `yaml:"rows"` // 网格行数，缺省时由瓦片坐标推导
	Cols int `yaml:"cols"` // 网格列数，缺省时由瓦片坐标推导

	Tiles  []TileConfig  `yaml:"tiles"`  // 轨道瓦片列表
	Trains []TrainConfig `yaml:"trains"` // 列车任务列表
}

// TileConfig 单块轨道瓦片配置
type TileConfig struct {
	Row  int    `yaml:"row"`  // 网格行
	Col  int    `yaml:"col"`  // 网格列
	Path string `yaml:"path"` // 主路径编码，如 "mm"、"ud"
	Alt  string `yaml:"alt"`  // 备用路径编码，空表示无道岔

	Portal   string `yaml:"portal"`   // 传送门标识，空表示不是传送门
	Platform string `yaml:"platform"` // 站台标识，空表示不是站台
}

// TrainConfig 单辆列车的任务配置
type TrainConfig struct {
	Entry    string  `yaml:"entry"`    // 入口传送门标识
	Platform string  `yaml:"platform"` // 目标站台标识
	Exit     string  `yaml:"exit"`     // 目标出口传送门标识
	Speed    int     `yaml:"speed"`    // 速度档位 1..5，默认 1
	SpawnAt  float64 `yaml:"spawnAt"`  // 关卡开始后多少秒生成，默认 0
}

// LoadLevelConfig 从YAML文件加载关卡配置
func LoadLevelConfig(filepath string) (*LevelConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", filepath, err)
	}

	levelConfig, err := ParseLevelConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid level config in %s: %w", filepath, err)
	}
	return levelConfig, nil
}

// ParseLevelConfig 解析YAML数据，应用默认值并校验
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML: %w", err)
	}

	applyDefaults(&levelConfig)

	if err := validateLevelConfig(&levelConfig); err != nil {
		return nil, err
	}
	return &levelConfig, nil
}

// applyDefaults 为缺失的可选字段设置默认值
func applyDefaults(config *LevelConfig) {
	// 网格尺寸缺省时按瓦片坐标的最大值推导
	if config.Rows == 0 || config.Cols == 0 {
		maxRow, maxCol := 0, 0
		for _, tile := range config.Tiles {
			if tile.Row > maxRow {
				maxRow = tile.Row
			}
			if tile.Col > maxCol {
				maxCol = tile.Col
			}
		}
		if config.Rows == 0 {
			config.Rows = maxRow + 1
		}
		if config.Cols == 0 {
			config.Cols = maxCol + 1
		}
	}

	// 列车速度默认 1 档
	for i := range config.Trains {
		if config.Trains[i].Speed == 0 {
			config.Trains[i].Speed = 1
		}
	}
}

// validateLevelConfig 校验必填字段和引用完整性
func validateLevelConfig(config *LevelConfig) error {
	if config.ID == "" {
		return fmt.Errorf("level config missing required field: id")
	}
	if len(config.Tiles) == 0 {
		return fmt.Errorf("level %s has no tiles", config.ID)
	}
	if len(config.Trains) == 0 {
		return fmt.Errorf("level %s has no trains", config.ID)
	}

	portals := make(map[string]bool)
	for _, tile := range config.Tiles {
		if tile.Path == "" {
			return fmt.Errorf("level %s: tile (%d,%d) missing path code", config.ID, tile.Row, tile.Col)
		}
		if tile.Portal != "" {
			portals[tile.Portal] = true
		}
	}

	for i, tr := range config.Trains {
		if tr.Speed < 1 || tr.Speed > 5 {
			return fmt.Errorf("level %s: train %d speed %d out of range 1..5", config.ID, i, tr.Speed)
		}
		if !portals[tr.Entry] {
			return fmt.Errorf("level %s: train %d entry portal %q not defined by any tile", config.ID, i, tr.Entry)
		}
		if !portals[tr.Exit] {
			return fmt.Errorf("level %s: train %d exit portal %q not defined by any tile", config.ID, i, tr.Exit)
		}
		if tr.Platform == "" {
			return fmt.Errorf("level %s: train %d missing target platform", config.ID, i)
		}
		if tr.SpawnAt < 0 {
			return fmt.Errorf("level %s: train %d spawnAt must not be negative", config.ID, i)
		}
	}
	return nil
}
