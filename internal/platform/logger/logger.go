package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds a named zap logger: development config for "development",
// production JSON config otherwise.
func New(appEnv, name string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)

	if appEnv == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}

	return log.Named(name), nil
}
