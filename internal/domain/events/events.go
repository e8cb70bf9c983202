// Package events defines the broadcast contract between domain services and
// the realtime fan-out. Delivery is best-effort and never awaited; services
// must not depend on a subscriber receiving anything.
package events

// Broadcaster fans a tagged event out to all connected realtime subscribers.
type Broadcaster interface {
	Broadcast(eventType string, data any)
}

// Event types pushed over the realtime channel.
const (
	ProjectCreated = "project.created"
	ProjectUpdated = "project.updated"
	ProjectDeleted = "project.deleted"

	PersonaCreated = "persona.created"
	PersonaUpdated = "persona.updated"
	PersonaDeleted = "persona.deleted"

	ChatMessage = "chat.message"

	ContentPublished = "content.published"
	ContentUpdated   = "content.updated"

	AutonomyTick   = "autonomy.tick"
	SystemRedeploy = "system.redeploy"
)

// NopBroadcaster discards all events. Used in tests and when realtime is
// disabled by configuration.
type NopBroadcaster struct{}

func (NopBroadcaster) Broadcast(string, any) {}
