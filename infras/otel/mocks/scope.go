package mocks

import "hotel/infras/otel"

// noopScope drops everything, handlers and services under test never inspect spans.
type noopScope struct{}

func (noopScope) End() {}
func (noopScope) TraceError(error) {}
func (noopScope) TraceIfError(error) {}
func (noopScope) AddEvent(string) {}
func (noopScope) SetAttribute(string, any) {}
func (noopScope) SetAttributes(map[string]any) {}

func NewScope() otel.Scope {
	return noopScope{}
}
