package temporal

import (
	"go.temporal.io/sdk/log"
	"go.uber.org/zap"
)

// zapAdapter exposes a zap.Logger through Temporal's keyval log.Logger interface
type zapAdapter struct {
	logger *zap.Logger
}

// NewZapLoggerAdapter wraps a zap logger for use as the Temporal client logger
func NewZapLoggerAdapter(logger *zap.Logger) log.Logger {
	return &zapAdapter{logger: logger}
}

func (z *zapAdapter) Debug(msg string, keyvals ...interface{}) {
	z.logger.Debug(msg, keyvalFields(keyvals...)...)
}

func (z *zapAdapter) Info(msg string, keyvals ...interface{}) {
	z.logger.Info(msg, keyvalFields(keyvals...)...)
}

func (z *zapAdapter) Warn(msg string, keyvals ...interface{}) {
	z.logger.Warn(msg, keyvalFields(keyvals...)...)
}

func (z *zapAdapter) Error(msg string, keyvals ...interface{}) {
	z.logger.Error(msg, keyvalFields(keyvals...)...)
}

// keyvalFields converts Temporal's alternating key/value list into zap fields.
// A trailing key without a value is dropped, as are non-string keys.
func keyvalFields(keyvals ...interface{}) []zap.Field {
	if len(keyvals)%2 != 0 {
		keyvals = keyvals[:len(keyvals)-1]
	}

	fields := make([]zap.Field, 0, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, zap.Any(key, keyvals[i+1]))
	}
	return fields
}
