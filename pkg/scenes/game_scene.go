// Package scenes 实现具体的游戏场景
package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/trackswitch/pkg/config"
	"github.com/decker502/trackswitch/pkg/game"
	"github.com/decker502/trackswitch/pkg/tilemap"
	"github.com/decker502/trackswitch/pkg/train"
	"github.com/decker502/trackswitch/pkg/types"
	"github.com/decker502/trackswitch/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// trainEntry 关卡内单辆列车的调度状态
type trainEntry struct {
	train   *train.Train
	spawnAt float64
	// done 列车已穿越传送门并被消除
	done bool
}

// GameScene 关卡场景：持有关卡地图和列车，按帧推进调度
//
// 场景负责核心之外的收尾工作：按时刻表生成列车、处理玩家的扳道岔
// 输入、在列车驶离场地后消除它，以及结算目标达成数。
type GameScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager

	levelConfig *config.LevelConfig
	levelMap    *tilemap.LevelMap
	clock       train.Clock

	trains  []*trainEntry
	elapsed float64

	goalFont *text.GoTextFace

	finished bool
	// succeeded 结算时达成的目标数（每辆列车两个目标：站台和出口）
	succeeded int
}

// NewGameScene 按关卡ID加载配置并构造场景
// 配置加载失败返回错误，由上层决定如何处理
func NewGameScene(resourceManager *game.ResourceManager, sceneManager *game.SceneManager,
	levelID string) (*GameScene, error) {

	path := fmt.Sprintf("data/levels/level%s.yaml", levelID)
	levelConfig, err := config.LoadLevelConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", levelID, err)
	}
	return newGameScene(resourceManager, sceneManager, levelConfig, game.SystemClock{})
}

// newGameScene 从已解析的配置构造场景，时钟可注入（测试用手动时钟）
func newGameScene(resourceManager *game.ResourceManager, sceneManager *game.SceneManager,
	levelConfig *config.LevelConfig, clock train.Clock) (*GameScene, error) {

	levelMap, err := buildLevelMap(levelConfig)
	if err != nil {
		return nil, err
	}

	s := &GameScene{
		resourceManager: resourceManager,
		sceneManager:    sceneManager,
		levelConfig:     levelConfig,
		levelMap:        levelMap,
		clock:           clock,
	}

	for i, tc := range levelConfig.Trains {
		speed, err := types.NewSpeed(tc.Speed)
		if err != nil {
			return nil, fmt.Errorf("train %d: %w", i, err)
		}
		tr, err := train.NewTrain(levelMap, clock,
			types.PortalID(tc.Entry), types.PlatformID(tc.Platform), types.PortalID(tc.Exit), speed)
		if err != nil {
			return nil, fmt.Errorf("train %d: %w", i, err)
		}
		s.trains = append(s.trains, &trainEntry{train: tr, spawnAt: tc.SpawnAt})
	}

	if resourceManager != nil {
		font, err := resourceManager.LoadFont(config.GoalFontPath, config.GoalFontSize)
		if err != nil {
			log.Printf("[GameScene] Warning: failed to load goal font: %v", err)
			log.Printf("[GameScene] Will use fallback debug text rendering")
		} else {
			s.goalFont = font
		}
		s.loadWagonArt(resourceManager)
	}

	log.Printf("[GameScene] 关卡 %s 就绪: %d 块瓦片, %d 辆列车",
		levelConfig.ID, len(levelConfig.Tiles), len(s.trains))
	return s, nil
}

// loadWagonArt 加载车厢贴图并套用到所有列车
// 任一贴图加载失败时整体放弃，列车保持矢量占位图绘制
func (s *GameScene) loadWagonArt(resourceManager *game.ResourceManager) {
	locImage, err := resourceManager.LoadImage(config.LocomotiveImagePath)
	if err != nil {
		log.Printf("[GameScene] Warning: failed to load locomotive image: %v", err)
		log.Printf("[GameScene] Will use placeholder wagon rendering")
		return
	}
	carriageImage, err := resourceManager.LoadImage(config.CarriageImagePath)
	if err != nil {
		log.Printf("[GameScene] Warning: failed to load carriage image: %v", err)
		log.Printf("[GameScene] Will use placeholder wagon rendering")
		return
	}
	for _, entry := range s.trains {
		entry.train.SetSprites(locImage, carriageImage)
	}
}

// buildLevelMap 把关卡配置展开为瓦片网格
func buildLevelMap(levelConfig *config.LevelConfig) (*tilemap.LevelMap, error) {
	m, err := tilemap.NewLevelMap(levelConfig.Rows, levelConfig.Cols)
	if err != nil {
		return nil, err
	}
	for _, tc := range levelConfig.Tiles {
		tile, err := tilemap.NewTrackTile(tc.Row, tc.Col, tc.Path, tc.Alt)
		if err != nil {
			return nil, err
		}
		tile.Portal = types.PortalID(tc.Portal)
		tile.Platform = types.PlatformID(tc.Platform)
		if err := m.AddTile(tile); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Update 每帧推进：玩家输入 -> 按时刻表生成 -> 列车更新 -> 离场消除
func (s *GameScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	s.handleInput()

	for _, entry := range s.trains {
		if entry.done {
			continue
		}
		if !entry.train.Spawned() {
			if s.elapsed >= entry.spawnAt {
				entry.train.Spawn()
				log.Printf("[GameScene] 列车生成: 入口 %s -> 站台 %s -> 出口 %s",
					entry.train.EntryPortal(), entry.train.Platform(), entry.train.ExitPortal())
			}
			continue
		}

		entry.train.Update()

		// 出口判定完成且整车驶离场地后消除
		if entry.train.ExitPortalStatus().Resolved() &&
			!entry.train.Rect().Intersects(s.levelMap.Bounds()) {
			entry.train.Despawn()
			entry.done = true
			log.Printf("[GameScene] 列车离场: 站台 %v, 出口 %v",
				entry.train.PlatformStatus(), entry.train.ExitPortalStatus())
		}
	}

	s.updateSummary()
}

// handleInput 左键点击带道岔的瓦片切换其路径；结算后按 R 重开本关
func (s *GameScene) handleInput() {
	if s.finished && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.restartLevel()
		return
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	if s.levelMap.ToggleSwitchAt(utils.Vec2{X: float64(x), Y: float64(y)}) {
		log.Printf("[GameScene] 道岔切换: (%d, %d)", x, y)
	}
}

// restartLevel 通过场景管理器重建本关卡的新场景
func (s *GameScene) restartLevel() {
	if s.sceneManager == nil {
		return
	}
	log.Printf("[GameScene] 重开关卡: %s", s.levelConfig.ID)
	s.sceneManager.LoadLevel(s.levelConfig.ID)
}

// updateSummary 所有列车离场后结算目标达成数
func (s *GameScene) updateSummary() {
	if s.finished {
		return
	}
	for _, entry := range s.trains {
		if !entry.done {
			return
		}
	}

	s.finished = true
	s.succeeded = 0
	for _, entry := range s.trains {
		if entry.train.PlatformStatus() == types.Succeeded {
			s.succeeded++
		}
		if entry.train.ExitPortalStatus() == types.Succeeded {
			s.succeeded++
		}
	}
	log.Printf("[GameScene] 关卡结束: %d/%d 目标达成", s.succeeded, 2*len(s.trains))
}

// Draw 绘制场景：底色、瓦片网格、列车、结算文本
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 230, G: 230, B: 225, A: 255})

	s.levelMap.Draw(screen)

	for _, entry := range s.trains {
		entry.train.Draw(screen, s.goalFont)
	}

	if s.finished {
		s.drawSummary(screen)
	}
}

// drawSummary 居中显示结算文本
func (s *GameScene) drawSummary(screen *ebiten.Image) {
	msg := fmt.Sprintf("关卡结束  目标达成 %d/%d  按 R 重新开始", s.succeeded, 2*len(s.trains))
	if s.goalFont != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(config.GameWindowWidth/2, config.GameWindowHeight/2)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(color.RGBA{R: 30, G: 30, B: 30, A: 255})
		text.Draw(screen, msg, s.goalFont, op)
	} else {
		ebitenutil.DebugPrintAt(screen, msg, config.GameWindowWidth/2-80, config.GameWindowHeight/2)
	}
}

// Finished 返回关卡是否已结束
func (s *GameScene) Finished() bool {
	return s.finished
}

// Succeeded 返回结算时达成的目标数
func (s *GameScene) Succeeded() int {
	return s.succeeded
}
