package runtime

// Observer receives method-invocation lifecycle events for profiling or
// telemetry. Observers are attached to a Module with WithObserver rather
// than registered globally, so different modules can report to different
// sinks.
//
// For every Method.Run invocation, OnEnterRunMethod fires before execution
// and then exactly one of OnExitRunMethod or OnFailRunMethod fires, never
// both, regardless of how execution ends.
//
// The instance key correlates the enter event with its matching exit or fail
// event. Observer methods are called synchronously on the invoking
// goroutine; implementations must be safe for concurrent use if the host
// invokes methods from multiple goroutines.
type Observer interface {
	// OnEnterRunMethod is called before a method begins executing. The
	// metadata map is a copy owned by the observer.
	OnEnterRunMethod(metadata map[string]string, instanceKey string, methodName string)

	// OnExitRunMethod is called after a method returns successfully.
	OnExitRunMethod(instanceKey string)

	// OnFailRunMethod is called when a method fails, with a best-effort
	// symbolicated error message.
	OnFailRunMethod(instanceKey string, errorMessage string)
}

// NoOpObserver is an Observer implementation that does nothing. Embed this
// in your observer to provide default implementations for methods you don't
// need.
type NoOpObserver struct{}

func (NoOpObserver) OnEnterRunMethod(map[string]string, string, string) {}
func (NoOpObserver) OnExitRunMethod(string)                             {}
func (NoOpObserver) OnFailRunMethod(string, string)                     {}

// Ensure NoOpObserver implements Observer.
var _ Observer = NoOpObserver{}
