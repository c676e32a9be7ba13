package api

import "context"

type Runnable interface {
	// Start runs the component until the context is canceled or an error
	// occurs. It blocks for the lifetime of the component.
	Start(context.Context) error
}
