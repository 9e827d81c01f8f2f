package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/podium"
)

// Mock provides a mock implementation of Application for testing.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	PipelineFunc     func(opts ...podium.Option) (podium.Pipeline, error)
	OutputDirFunc    func() string
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Pipeline returns a pipeline using the mock function or nil.
func (m *Mock) Pipeline(opts ...podium.Option) (podium.Pipeline, error) {
	if m.PipelineFunc != nil {
		return m.PipelineFunc(opts...)
	}
	return nil, nil
}

// OutputDir returns the output directory using the mock function or "output".
func (m *Mock) OutputDir() string {
	if m.OutputDirFunc != nil {
		return m.OutputDirFunc()
	}
	return "output"
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Application at compile time.
var _ Application = (*Mock)(nil)
