package logger

import (
	"go.uber.org/zap"
)

// Init builds the global zap logger. Handlers and stores log through zap.S().
func Init(mode string) error {
	var cfg zap.Config
	if mode == "prod" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stdout"}

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}
