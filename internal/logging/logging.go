// Package logging bootstraps the process-wide zap logger. Log files roll
// over via lumberjack; everything also goes to stderr for local runs.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger *zap.Logger

func init() {
	// Packages may log before InitLogger runs (and tests never run it).
	Logger = zap.NewNop()
}

// ensureLogsDir makes sure the ./logs folder exists
func ensureLogsDir() {
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		panic("Failed to create logs directory: " + err.Error())
	}
}

func InitLogger() {
	ensureLogsDir()

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	jsonEncoder := zapcore.NewJSONEncoder(encoderConfig)

	consoleConfig := zap.NewDevelopmentEncoderConfig()
	consoleEncoder := zapcore.NewConsoleEncoder(consoleConfig)

	core := zapcore.NewTee(
		zapcore.NewCore(jsonEncoder,
			zapcore.AddSync(&lumberjack.Logger{
				Filename: "./logs/app.log", MaxSize: 100, MaxAge: 28, Compress: true,
			}),
			zap.InfoLevel,
		),
		zapcore.NewCore(jsonEncoder,
			zapcore.AddSync(&lumberjack.Logger{
				Filename: "./logs/error.log", MaxSize: 100, MaxAge: 30, Compress: true,
			}),
			zap.ErrorLevel,
		),
		zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stderr), zap.InfoLevel),
	)

	Logger = zap.New(core)
}
