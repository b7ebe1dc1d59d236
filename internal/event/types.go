// internal/event/types.go
package event

const (
	WaveStarted        EventType = "WaveStarted"        // payload: int (wave number)
	WaveCompleted      EventType = "WaveCompleted"      // payload: int (wave number)
	AllWavesCompleted  EventType = "AllWavesCompleted"  // payload: nil
	MissileIntercepted EventType = "MissileIntercepted" // payload: InterceptionData
	MissileImpacted    EventType = "MissileImpacted"    // payload: types.EntityID (missile)
	TargetHit          EventType = "TargetHit"          // payload: TargetHitData
	TargetDestroyed    EventType = "TargetDestroyed"    // payload: types.EntityID (target)
	ScoreChanged       EventType = "ScoreChanged"       // payload: int (new score)
	LivesChanged       EventType = "LivesChanged"       // payload: int (new lives)
	Victory            EventType = "Victory"            // payload: GameEndData
	Defeat             EventType = "Defeat"             // payload: GameEndData
)

// InterceptionData describes a missile brought down by a defense.
type InterceptionData struct {
	MissileDefID string
	ScoreValue   int
}

// TargetHitData describes a missile reaching a protected target.
type TargetHitData struct {
	TargetDefID     string
	MissileDefID    string
	Damage          int
	DestroyedTarget bool
}

// GameEndData is the payload for Victory and Defeat events.
type GameEndData struct {
	Reason      string
	FinalScore  int
	WaveReached int
}
