package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于创建指定ID的关卡场景，避免循环依赖
type SceneFactory func(levelID string) Scene

// SceneManager 管理当前活动场景
// 同一时间只有一个场景会被 Update 和 Draw
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	currentLevel string
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换到指定场景，旧场景实现 Closer 时会被关闭
func (sm *SceneManager) SwitchTo(scene Scene) {
	if closer, ok := sm.currentScene.(Closer); ok && sm.currentScene != scene {
		closer.Close()
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentLevel 最近一次加载的关卡ID
func (sm *SceneManager) CurrentLevel() string {
	return sm.currentLevel
}

// LoadLevel 加载指定ID的关卡场景
func (sm *SceneManager) LoadLevel(levelID string) {
	log.Printf("[SceneManager] 加载关卡: %s", levelID)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory(levelID)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建关卡场景: %s", levelID)
		return
	}
	sm.SwitchTo(newScene)
	sm.currentLevel = levelID
	log.Printf("[SceneManager] 成功切换到关卡: %s", levelID)
}

// ReloadLevel 重新加载当前关卡（重新开始）
func (sm *SceneManager) ReloadLevel() {
	if sm.currentLevel == "" {
		return
	}
	sm.LoadLevel(sm.currentLevel)
}

// Close 关闭当前场景（程序退出时调用），之后不再有活动场景
func (sm *SceneManager) Close() {
	if closer, ok := sm.currentScene.(Closer); ok {
		closer.Close()
	}
	sm.currentScene = nil
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
