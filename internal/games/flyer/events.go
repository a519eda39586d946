package flyer

// Event is a notification the game sends to its host. The host reacts to
// rock lifecycle events by creating or dropping whatever visual it keeps
// for a rock; the game itself never holds host objects.
type Event interface {
	flyerEvent()
}

// ObstacleSpawnedEvent is sent when a rock enters the field.
type ObstacleSpawnedEvent struct {
	Obstacle Obstacle
}

func (ObstacleSpawnedEvent) flyerEvent() {}

// ObstacleRemovedEvent is sent when a rock leaves the field, either by
// passing the camera or because the field was reset.
type ObstacleRemovedEvent struct {
	Obstacle Obstacle
}

func (ObstacleRemovedEvent) flyerEvent() {}

// GameOverEvent is sent once when a run ends.
type GameOverEvent struct {
	Score    int
	Obstacle Obstacle // The rock that was hit
}

func (GameOverEvent) flyerEvent() {}

// RestartedEvent is sent once when a finished run is restarted.
type RestartedEvent struct{}

func (RestartedEvent) flyerEvent() {}

// Listener receives game events. Calls happen synchronously inside
// Step/Restart/Reset on the caller's goroutine.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(e Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}

type nopListener struct{}

func (nopListener) OnEvent(Event) {}
