// internal/logger/logger.go
//
// Structured JSON logger (Zap + Lumberjack), shaped by ServerConfig.
//
// Context
// -------
// The flight server writes lifecycle and error events to one JSON log
// per day under `<root>/logs/YYYY-MM-DD.log`.  When running in an
// interactive TTY the same events are teed, colorized, to stdout.
// Rotation, compression, and retention are handled by Lumberjack; no
// external log-rotate job is required.
//
// Two settings drive the output shape:
//
//   • log_event_key_name: the JSON key carrying the message text.
//   • log_trace_keys:     renames for the trace-correlation fields
//     (trace_id, span_id, parent_span_id) via TraceFields below.
//
// Usage
// -----
//
//	log, err := logger.New(cfg, root, runningInTTY())
//	if err != nil { … }
//	log.Infow("task finished", logger.TraceFields(cfg, tid, sid, "")...)
//
// Notes
// -----
// • Zap core uses ISO-8601 timestamps and lowercase levels.
// • Oxford commas, two spaces after periods.

package logger

import (
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gooddata/flight-server/internal/config"
)

// Logical trace-field names, the keys of cfg.LogTraceKeys.
const (
	TraceID      = "trace_id"
	SpanID       = "span_id"
	ParentSpanID = "parent_span_id"
)

// New returns a *zap.SugaredLogger that writes JSON to /logs/YYYY-MM-DD.log
// with the message key taken from cfg.LogEventKeyName.  When tee == true,
// a colored console core is also attached.  The logger is installed as
// the process-wide default via zap.ReplaceGlobals.
func New(cfg *config.ServerConfig, rootDir string, tee bool) (*zap.SugaredLogger, error) {
	logDir := filepath.Join(rootDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	fileName := time.Now().Format("2006-01-02") + ".log"
	fileSink := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, fileName),
		MaxSize:    50, // MB
		MaxBackups: 7,  // keep last seven files
		MaxAge:     14, // days
		Compress:   true,
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		MessageKey:   cfg.LogEventKeyName,
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}
	jsonCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(fileSink),
		zap.InfoLevel,
	)

	cores := []zapcore.Core{jsonCore}
	if tee {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.AddSync(os.Stdout),
			zap.InfoLevel,
		))
	}

	z := zap.New(
		zapcore.NewTee(cores...),
		zap.ErrorOutput(zapcore.AddSync(fileSink)),
	).Sugar()

	// Make this the global logger so zap.S() works everywhere after startup.
	zap.ReplaceGlobals(z.Desugar())

	z.Infow("logger online", "tee", tee, "event_key", cfg.LogEventKeyName)
	return z, nil
}

// TraceFields renders trace-correlation IDs as key/value pairs for the
// sugared `…w` logging methods, renaming each field through
// cfg.LogTraceKeys.  Empty IDs are omitted; an unmapped logical name
// falls back to itself.
func TraceFields(cfg *config.ServerConfig, traceID, spanID, parentSpanID string) []any {
	name := func(logical string) string {
		if mapped, ok := cfg.LogTraceKeys[logical]; ok && mapped != "" {
			return mapped
		}
		return logical
	}

	fields := make([]any, 0, 6)
	if traceID != "" {
		fields = append(fields, name(TraceID), traceID)
	}
	if spanID != "" {
		fields = append(fields, name(SpanID), spanID)
	}
	if parentSpanID != "" {
		fields = append(fields, name(ParentSpanID), parentSpanID)
	}
	return fields
}
