package logger

import (
	"context"

	"github.com/flexprice/vanrental/internal/config"
	"github.com/flexprice/vanrental/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.SugaredLogger to provide logging functionality
type Logger struct {
	*zap.SugaredLogger
}

// Global logger for convenience
var L *Logger

// NewLogger creates and returns a new Logger instance
func NewLogger(cfg *config.Configuration) (*Logger, error) {
	zc := zap.NewProductionConfig()

	if cfg.Logging.Level == types.LogLevelDebug {
		zc = zap.NewDevelopmentConfig()
	} else {
		level, err := zapcore.ParseLevel(string(cfg.Logging.Level))
		if err != nil {
			return nil, err
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}

	zc.EncoderConfig.TimeKey = "timestamp"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Disable stack traces for warnings to reduce log noise
	zc.DisableStacktrace = true

	// stderr by default so console prompts keep stdout to themselves
	if cfg.Deployment.Mode == types.ModeAPI {
		zc.OutputPaths = []string{"stdout"}
	}

	zapLogger, err := zc.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{
		SugaredLogger: zapLogger.Sugar(),
	}, nil
}

// NewNopLogger returns a logger that discards everything, for tests
func NewNopLogger() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// Initialize default logger and set it as global. Prefer injecting the
// logger; the global exists for entry points that run before wiring.
func init() {
	L, _ = NewLogger(config.GetDefaultConfig())
}

func GetLogger() *Logger {
	if L == nil {
		L, _ = NewLogger(config.GetDefaultConfig())
	}
	return L
}

func GetLoggerWithContext(ctx context.Context) *Logger {
	return GetLogger().WithContext(ctx)
}

// WithContext returns a logger annotated with the request and session ids found in ctx
func (l *Logger) WithContext(ctx context.Context) *Logger {
	fields := []interface{}{}
	if requestID := types.GetRequestID(ctx); requestID != "" {
		fields = append(fields, "request_id", requestID)
	}
	if sessionID := types.GetSessionID(ctx); sessionID != "" {
		fields = append(fields, "session_id", sessionID)
	}
	if len(fields) == 0 {
		return l
	}

	return &Logger{
		SugaredLogger: l.SugaredLogger.With(fields...),
	}
}

// ginLogger adapts our Logger to gin's logging interface
type ginLogger struct {
	logger *Logger
}

// GetGinLogger returns a gin-compatible logger
func (l *Logger) GetGinLogger() *ginLogger {
	return &ginLogger{logger: l}
}

// Write implements the io.Writer interface for gin
func (g *ginLogger) Write(p []byte) (n int, err error) {
	g.logger.Info(string(p))
	return len(p), nil
}
