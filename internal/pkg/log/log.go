package log

import (
	"context"
	"fmt"
	"sync"

	"go.elastic.co/apm"
	"go.uber.org/zap"
)

type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
}

type logger struct {
	zap *zap.Logger
}

var (
	mu     sync.RWMutex
	global Logger = New(zap.NewNop())
)

// SetupLogger builds the production zap logger.
func SetupLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(fmt.Sprintf("error setup logger: %v", err))
	}
	return l
}

// Init replaces the process-wide logger returned by GetLogger.
func Init(z *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = New(z)
}

func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Setup returns a logger that discards everything. Used by tests.
func Setup() Logger {
	return New(zap.NewNop())
}

func New(z *zap.Logger) Logger {
	return &logger{zap: z}
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Debug(msg, toFields(ctx, fields)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Info(msg, toFields(ctx, fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Warn(msg, toFields(ctx, fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Error(msg, toFields(ctx, fields)...)
}

func toFields(ctx context.Context, args []interface{}) []zap.Field {
	fields := make([]zap.Field, 0, len(args)+1)
	if ctx != nil {
		if tx := apm.TransactionFromContext(ctx); tx != nil {
			fields = append(fields, zap.String("trace.id", tx.TraceContext().Trace.String()))
		}
	}
	for i, arg := range args {
		switch v := arg.(type) {
		case zap.Field:
			fields = append(fields, v)
		case error:
			fields = append(fields, zap.Error(v))
		default:
			fields = append(fields, zap.Any(fmt.Sprintf("arg%d", i), v))
		}
	}
	return fields
}
