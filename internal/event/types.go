// internal/event/types.go
package event

const (
	TargetSpawned    EventType = "TargetSpawned"    // Data: *component.Target
	TargetCleared    EventType = "TargetCleared"    // Data: int, номер стадии
	StageAdvanced    EventType = "StageAdvanced"    // Data: int, новая стадия
	BossFightStarted EventType = "BossFightStarted" // Data: int, стадия босса
	BossFightEnded   EventType = "BossFightEnded"   // Data: int, стадия босса
	KnifeStaged      EventType = "KnifeStaged"      // Data: *component.Knife
	KnifeThrown      EventType = "KnifeThrown"      // Data: *component.Knife
	KnifeStuck       EventType = "KnifeStuck"       // Data: Impact
	KnifeCollided    EventType = "KnifeCollided"    // Data: Impact
	GameOver         EventType = "GameOver"
	AdOffered        EventType = "AdOffered"
	AdRequested      EventType = "AdRequested"
	AdRedeemed       EventType = "AdRedeemed"
	AdLapsed         EventType = "AdLapsed"
	AdUnavailable    EventType = "AdUnavailable"
	NewBestScore     EventType = "NewBestScore" // Data: int, новый рекорд
)
