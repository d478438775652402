package runtime

import "github.com/deepnoodle-ai/mobilert/debug"

// Option is a configuration function for a Module.
type Option func(*Module)

// WithMetadata provides model metadata made available to observers during
// invocation. The key "model_name" has special meaning: it names the model
// in per-call debug info.
func WithMetadata(metadata map[string]string) Option {
	return func(m *Module) {
		for k, v := range metadata {
			m.metadata[k] = v
		}
	}
}

// WithObserver sets an observer for method-invocation lifecycle events.
// Observer methods are called synchronously during invocation, so
// implementations should be fast to avoid impacting performance.
func WithObserver(observer Observer) Option {
	return func(m *Module) {
		m.observer = observer
	}
}

// WithDebugTable sets the symbolication table used to translate debug
// handles into source and module-hierarchy strings. Without a table, all
// symbolication yields empty strings and errors propagate unannotated.
func WithDebugTable(table *debug.Table) Option {
	return func(m *Module) {
		m.debugTable = table
	}
}
