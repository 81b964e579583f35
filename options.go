package plot2d

import "github.com/gogpu/plot2d/text"

// ActorOption configures an actor during creation.
// Use functional options to customize actor behavior.
//
// Example:
//
//	// Default measurer
//	actor := plot2d.NewParallelCoordinatesActor()
//
//	// Shared measurer (shares the parsed-font cache across actors)
//	m := text.NewMeasurer()
//	pc := plot2d.NewParallelCoordinatesActor(plot2d.WithMeasurer(m))
//	sb := plot2d.NewScalarBarActor(plot2d.WithMeasurer(m))
type ActorOption func(*actorOptions)

// actorOptions holds optional configuration for actor creation.
type actorOptions struct {
	measurer *text.Measurer
}

// defaultActorOptions returns the default actor options.
func defaultActorOptions() actorOptions {
	return actorOptions{}
}

// WithMeasurer sets the text measurer an actor sizes titles and labels
// with. Sharing one measurer between actors shares its font cache.
func WithMeasurer(m *text.Measurer) ActorOption {
	return func(o *actorOptions) {
		o.measurer = m
	}
}

// resolve fills in defaults for options the caller did not set.
func (o *actorOptions) resolve() {
	if o.measurer == nil {
		o.measurer = text.NewMeasurer()
	}
}
