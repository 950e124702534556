// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：创建资源管理器和场景管理器、
// 加载指定关卡并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/decker502/trackswitch/pkg/config"
	"github.com/decker502/trackswitch/pkg/game"
	"github.com/decker502/trackswitch/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 指定要加载的关卡ID，为空则默认 "1"
	Level string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	verbose      bool
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	resourceManager := game.NewResourceManager()
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(levelID string) game.Scene {
		scene, err := scenes.NewGameScene(resourceManager, sceneManager, levelID)
		if err != nil {
			log.Printf("[App] 关卡加载失败: %v", err)
			return nil
		}
		return scene
	})

	levelToLoad := cfg.Level
	if levelToLoad == "" {
		levelToLoad = "1"
	}
	log.Printf("[App] Starting level: %s", levelToLoad)

	startScene, err := scenes.NewGameScene(resourceManager, sceneManager, levelToLoad)
	if err != nil {
		return nil, fmt.Errorf("failed to start level %s: %w", levelToLoad, err)
	}
	sceneManager.SwitchTo(startScene)

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 渲染游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}
