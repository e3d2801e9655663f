package log

import (
	"context"
	"time"

	"github.com/feedrate/feedrate-calculator/pkg/requestid"
	"go.uber.org/zap"
)

// StructuredLogger logs operations as a start/step/finish sequence sharing the same fields.
// It always resolves the global logger so it follows zap.ReplaceGlobals.
type StructuredLogger struct {
	name      string
	level     func(*zap.Logger) func(string, ...zap.Field)
	requestID string
}

// NewDebugLogger returns a logger that emits steps and successes at debug level.
// Errors are always logged at error level.
func NewDebugLogger(name string) *StructuredLogger {
	return &StructuredLogger{
		name:  name,
		level: func(l *zap.Logger) func(string, ...zap.Field) { return l.Debug },
	}
}

// NewInfoLogger is like NewDebugLogger but emits at info level.
func NewInfoLogger(name string) *StructuredLogger {
	return &StructuredLogger{
		name:  name,
		level: func(l *zap.Logger) func(string, ...zap.Field) { return l.Info },
	}
}

// WithContext returns a copy carrying the request id found in ctx.
func (s *StructuredLogger) WithContext(ctx context.Context) *StructuredLogger {
	c := *s
	c.requestID = requestid.FromContext(ctx)
	return &c
}

// Operation starts describing a named operation.
func (s *StructuredLogger) Operation(name string) *OperationBuilder {
	return &OperationBuilder{logger: s, operation: name}
}

func (s *StructuredLogger) base() *zap.Logger {
	return zap.L().Named(s.name)
}

type OperationBuilder struct {
	logger    *StructuredLogger
	operation string
	fields    []zap.Field
}

func (b *OperationBuilder) WithString(key, value string) *OperationBuilder {
	b.fields = append(b.fields, zap.String(key, value))
	return b
}

func (b *OperationBuilder) WithInt(key string, value int) *OperationBuilder {
	b.fields = append(b.fields, zap.Int(key, value))
	return b
}

func (b *OperationBuilder) WithFloat(key string, value float64) *OperationBuilder {
	b.fields = append(b.fields, zap.Float64(key, value))
	return b
}

func (b *OperationBuilder) WithParam(key string, value any) *OperationBuilder {
	b.fields = append(b.fields, zap.Any(key, value))
	return b
}

// Build freezes the operation fields and returns the tracer used to log its progress.
func (b *OperationBuilder) Build() *OperationTracer {
	fields := []zap.Field{zap.String("operation", b.operation)}
	if b.logger.requestID != "" {
		fields = append(fields, zap.String("request_id", b.logger.requestID))
	}
	return &OperationTracer{
		logger:  b.logger,
		fields:  append(fields, b.fields...),
		started: time.Now(),
	}
}

type OperationTracer struct {
	logger  *StructuredLogger
	fields  []zap.Field
	started time.Time
}

func (t *OperationTracer) Step(name string) *Entry {
	return t.entry("step", t.logger.level(t.logger.base())).with(zap.String("step", name))
}

func (t *OperationTracer) Success() *Entry {
	return t.entry("success", t.logger.level(t.logger.base())).with(zap.Duration("duration", time.Since(t.started)))
}

func (t *OperationTracer) Error(err error) *Entry {
	return t.entry("error", t.logger.base().Error).with(zap.Error(err), zap.Duration("duration", time.Since(t.started)))
}

func (t *OperationTracer) entry(phase string, emit func(string, ...zap.Field)) *Entry {
	fields := make([]zap.Field, len(t.fields), len(t.fields)+4)
	copy(fields, t.fields)
	return &Entry{phase: phase, emit: emit, fields: append(fields, zap.String("phase", phase))}
}

// Entry is a single log line under construction.
type Entry struct {
	phase  string
	emit   func(string, ...zap.Field)
	fields []zap.Field
}

func (e *Entry) with(fields ...zap.Field) *Entry {
	e.fields = append(e.fields, fields...)
	return e
}

func (e *Entry) WithString(key, value string) *Entry {
	return e.with(zap.String(key, value))
}

func (e *Entry) WithInt(key string, value int) *Entry {
	return e.with(zap.Int(key, value))
}

func (e *Entry) WithFloat(key string, value float64) *Entry {
	return e.with(zap.Float64(key, value))
}

func (e *Entry) WithBool(key string, value bool) *Entry {
	return e.with(zap.Bool(key, value))
}

func (e *Entry) WithParam(key string, value any) *Entry {
	return e.with(zap.Any(key, value))
}

func (e *Entry) Log() {
	e.emit("operation "+e.phase, e.fields...)
}
