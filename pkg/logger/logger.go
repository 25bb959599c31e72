package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop()

// Init builds the process-wide logger. Call once from main before anything
// else logs; until then all output is dropped.
func Init(environment string) {
	var cfg zap.Config
	if environment == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	built, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return
	}
	log = built
}

// Sync flushes buffered log entries. Safe to defer from main.
func Sync() {
	_ = log.Sync()
}

// toFields accepts alternating key/value pairs; a bare error anywhere in the
// list becomes the standard "error" field.
func toFields(args []any) []zap.Field {
	fields := make([]zap.Field, 0, len(args)/2+1)
	for i := 0; i < len(args); {
		if err, ok := args[i].(error); ok {
			fields = append(fields, zap.Error(err))
			i++
			continue
		}

		key, ok := args[i].(string)
		if !ok || i+1 >= len(args) {
			fields = append(fields, zap.Any("arg", args[i]))
			i++
			continue
		}

		fields = append(fields, zap.Any(key, args[i+1]))
		i += 2
	}
	return fields
}

func Debug(msg string, args ...any) {
	log.Debug(msg, toFields(args)...)
}

func Info(msg string, args ...any) {
	log.Info(msg, toFields(args)...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, toFields(args)...)
}

func Error(msg string, args ...any) {
	log.Error(msg, toFields(args)...)
}

func Fatal(msg string, args ...any) {
	log.Fatal(msg, toFields(args)...)
}
