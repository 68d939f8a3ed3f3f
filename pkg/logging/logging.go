package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Debug selects zap's development config at
// debug level; otherwise the production JSON config at info level is used.
// Output always goes to stderr so stdout stays reserved for the argument echo.
// Fields are attached to every entry. The returned level can be raised after
// construction.
func New(debug bool, fields map[string]interface{}) (*zap.Logger, zap.AtomicLevel, error) {
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.InitialFields = fields

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop(), cfg.Level, err
	}
	return logger, cfg.Level, nil
}
