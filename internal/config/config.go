// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 540
	ScreenHeight = 960
	MaxDeltaTime = 0.06
	TargetFPS    = 60

	// Геометрия сцены
	TargetCenterX = ScreenWidth / 2
	TargetCenterY = 300
	TargetRadius  = 110.0
	KnifeSpawnY   = 800 // Точка появления ножа (центр рукояти)
	KnifeLength   = 90.0
	KnifeWidth    = 12.0
	KnifeRiseTime = 0.1 // Время выезда ножа на позицию, сек

	KnifeSpeed        = 2600.0               // пикселей в секунду
	KnifeCollisionArc = 10.0 * math.Pi / 180 // Минимальный угол между ножами в мишени
	AppleArc          = 8.0 * math.Pi / 180
	KnifeHitScore     = 1

	// Стадии и боссы
	BossEvery          = 5    // Каждая пятая стадия — босс
	LateStageThreshold = 50   // После этой стадии мишени выбираются случайно
	LateStageMinIndex  = 11   // Нижняя граница случайного индекса мишени
	BossBannerDuration = 2.0  // Баннер начала/конца боя с боссом, сек
	NextStageDelay     = 0.3  // Пауза перед следующей обычной мишенью, сек
	TargetSpawnScale   = 0.2  // Начальный масштаб мишени при появлении
	TargetScaleTime    = 0.3  // Длительность анимации появления
	StageIconCount     = 5    // Иконок стадий в полоске над мишенью
	BossVolume         = 1.0  // Громкость звуков боя с боссом
	DefaultVolume      = 1.0  // Громкость по умолчанию
	ThrowsPerSecond    = 12.0 // Ограничение частоты бросков
	ThrowBurst         = 2

	// Предложение посмотреть рекламу после проигрыша
	AdCountdownDuration = 3.0
	AdCountdownStep     = 0.1

	// Сцены
	GameSceneName = "GameScene"
	HomeSceneName = "HomeScene"
)

// Clip — идентификатор звукового эффекта
type Clip string

const (
	SfxButton     Clip = "button"
	SfxTimer      Clip = "timer"
	SfxKnifeThrow Clip = "knife_throw"
	SfxKnifeHit   Clip = "knife_hit"
	SfxKnifeClash Clip = "knife_clash"
	SfxApple      Clip = "apple"
	SfxTargetDone Clip = "target_done"
	SfxGameOver   Clip = "game_over"
)

var (
	BossFightStartSounds = []Clip{"boss_start_1", "boss_start_2"}
	BossFightEndSounds   = []Clip{"boss_end_1", "boss_end_2"}
)

var (
	BackgroundColor       = color.RGBA{28, 34, 48, 255}
	TextLightColor        = color.RGBA{240, 240, 240, 255}
	TextDarkColor         = color.RGBA{20, 20, 30, 255}
	StageIconActiveColor  = color.RGBA{255, 196, 0, 255}
	StageIconNormalColor  = color.RGBA{200, 200, 200, 255}
	KnifeCounterColor     = color.RGBA{240, 240, 240, 255}
	KnifeCounterUsedColor = color.RGBA{90, 90, 100, 255}
	AppleColor            = color.RGBA{220, 40, 40, 255}
	PanelColor            = color.RGBA{0, 0, 0, 200}
	ButtonColor           = color.RGBA{70, 130, 180, 255}
	ButtonAccentColor     = color.RGBA{60, 180, 90, 255}
	TimerColor            = color.RGBA{255, 196, 0, 255}
	BossBannerColor       = color.RGBA{220, 60, 60, 230}
	NewBestColor          = color.RGBA{255, 215, 0, 255}
	StrokeWidth           = float32(2.0)
)
