// internal/event/types.go
package event

import "go-stealth/internal/types"

const (
	PawnSpawned        EventType = "PawnSpawned"        // пешка игрока создана
	SightInitialized   EventType = "SightInitialized"   // меш видимости построен
	DestinationSet     EventType = "DestinationSet"     // новая точка назначения
	DestinationReached EventType = "DestinationReached" // пешка дошла или упёрлась в стену
)

// EntityData is the payload of entity events.
type EntityData struct {
	Entity types.EntityID
	X, Y   float64
}
