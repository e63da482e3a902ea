package echo

import "go.uber.org/zap"

type (
	// Config controls how a property is bound and how writes are handled.
	// The zero value is ready to use: a replay history of one, a stream
	// view installed on the target, existing values adopted, and rejected
	// writes kept silent
	Config[T any] struct {
		// Validate accepts or rejects incoming writes. nil accepts every
		// write. A rejected write changes nothing and raises no error
		Validate Validator[T]

		// Logger, when set, reports each rejected write at warn level.
		// nil keeps rejections silent
		Logger *zap.Logger

		// Metrics, when set, counts accepted and rejected writes, replay
		// deliveries, live subscribers, and completions
		Metrics *Metrics

		// Replay is how many accepted values are retained for replay to
		// late subscribers. Zero selects DefaultReplay; ReplayNone
		// disables replay entirely
		Replay int

		// NoObservable skips installing the stream view on the target
		NoObservable bool

		// NoAdopt stops BindProp from adopting a value already present
		// on the target
		NoAdopt bool
	}
)

const (
	// DefaultReplay is the history capacity used when Config.Replay is
	// zero
	DefaultReplay = 1

	// ReplayNone disables history; late subscribers receive nothing
	// until the next accepted write
	ReplayNone = -1

	// StreamKeySuffix is appended to the property name to form the
	// stream view entry installed on map targets
	StreamKeySuffix = "$"

	// StreamFieldSuffix is appended to the property name when looking
	// for an optional stream view field on struct targets
	StreamFieldSuffix = "Stream"
)

func (c *Config[T]) replayCapacity() int {
	switch {
	case c.Replay == 0:
		return DefaultReplay
	case c.Replay < 0:
		return 0
	default:
		return c.Replay
	}
}

func pickConfig[T any](cfg []Config[T]) Config[T] {
	if len(cfg) == 0 {
		return Config[T]{}
	}
	return cfg[0]
}
