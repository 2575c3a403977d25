package mocks

import (
	"context"
	"hotel/infras/otel"
)

type noopOtel struct{}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func (noopOtel) Shutdown(context.Context) error {
	return nil
}

// NewOtel returns a tracer that records nothing.
func NewOtel() otel.Otel {
	return noopOtel{}
}
