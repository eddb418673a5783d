// builder.go: fluent registration surface for options pipelines
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package options

// Builder collects configure actions, post-configure actions, validators,
// and change-token sources for one options type, then assembles them into
// a Factory, Manager, or ChangeMonitor.
//
// Actions registered through Configure/PostConfigure/Validate are filtered
// by the builder's name: a builder created with NewBuilder (DefaultName)
// registers actions that apply to every requested name, while a builder
// created with NewNamedBuilder only touches the matching instance. Actions
// needing external collaborators simply capture them in the closure.
//
// Example usage:
//
//	manager := options.NewNamedBuilder[ClientOptions]("payments").
//	    Configure(func(o *ClientOptions) { o.Timeout = 30 * time.Second }).
//	    PostConfigure(func(o *ClientOptions) { o.Endpoint = normalize(o.Endpoint) }).
//	    Validate(func(o *ClientOptions) options.ValidateResult {
//	        if o.Endpoint == "" {
//	            return options.Fail("endpoint is required")
//	        }
//	        return options.Success()
//	    }).
//	    Manager()
type Builder[T any] struct {
	name           string
	configures     []ConfigureOptions[T]
	postConfigures []PostConfigureOptions[T]
	validations    []ValidateOptions[T]
	sources        []ChangeTokenSource[T]
	logger         any
}

// NewBuilder creates a builder whose actions apply to every options name.
func NewBuilder[T any]() *Builder[T] {
	return NewNamedBuilder[T](DefaultName)
}

// NewNamedBuilder creates a builder whose actions apply only to the given
// options name.
func NewNamedBuilder[T any](name string) *Builder[T] {
	return &Builder[T]{name: name}
}

// Name returns the options name the builder's actions are filtered by.
func (b *Builder[T]) Name() string {
	return b.name
}

// Configure registers a configure action filtered by the builder's name.
func (b *Builder[T]) Configure(action func(options *T)) *Builder[T] {
	b.configures = append(b.configures, NamedConfigure(b.name, action))
	return b
}

// PostConfigure registers a post-configure action filtered by the
// builder's name. Post-configure actions run after every configure action.
func (b *Builder[T]) PostConfigure(action func(options *T)) *Builder[T] {
	b.postConfigures = append(b.postConfigures, NamedPostConfigure(b.name, action))
	return b
}

// Validate registers a validator filtered by the builder's name; it skips
// for any other name.
func (b *Builder[T]) Validate(action func(options *T) ValidateResult) *Builder[T] {
	b.validations = append(b.validations, NamedValidate(b.name, action))
	return b
}

// AddConfigure registers a raw configure action that performs its own name
// filtering.
func (b *Builder[T]) AddConfigure(configure ConfigureOptions[T]) *Builder[T] {
	b.configures = append(b.configures, configure)
	return b
}

// AddPostConfigure registers a raw post-configure action that performs its
// own name filtering.
func (b *Builder[T]) AddPostConfigure(postConfigure PostConfigureOptions[T]) *Builder[T] {
	b.postConfigures = append(b.postConfigures, postConfigure)
	return b
}

// AddValidate registers a raw validator that performs its own name
// filtering.
func (b *Builder[T]) AddValidate(validate ValidateOptions[T]) *Builder[T] {
	b.validations = append(b.validations, validate)
	return b
}

// AddSource registers a change-token source consumed by Monitor.
func (b *Builder[T]) AddSource(source ChangeTokenSource[T]) *Builder[T] {
	b.sources = append(b.sources, source)
	return b
}

// Bind wires a file source in both of its roles: its content is bound into
// the options during creation, and its change events drive monitors built
// from this builder. The caller remains responsible for the source's
// Start/Close lifecycle.
func (b *Builder[T]) Bind(source *FileSource[T]) *Builder[T] {
	b.configures = append(b.configures, source)
	b.sources = append(b.sources, source)
	return b
}

// WithLogger sets the logger used by monitors built from this builder. It
// may be a Logger, a *slog.Logger, or nil.
func (b *Builder[T]) WithLogger(logger any) *Builder[T] {
	b.logger = logger
	return b
}

// Factory assembles the registered actions into a factory.
func (b *Builder[T]) Factory() *DefaultFactory[T] {
	return NewFactory(b.configures, b.postConfigures, b.validations)
}

// Manager assembles a Manager serving the Options and Snapshot interfaces.
// Change-token sources are ignored on this path; managers do not track
// changes.
func (b *Builder[T]) Manager() *Manager[T] {
	return NewManager[T](b.Factory())
}

// Monitor assembles a ChangeMonitor over a fresh cache, the registered
// sources, and the registered actions. The caller owns the monitor's
// Close lifecycle.
func (b *Builder[T]) Monitor() *ChangeMonitor[T] {
	return NewMonitor[T](NewCache[T](), b.sources, b.Factory(), b.logger)
}
