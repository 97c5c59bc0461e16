package logger

import (
	"log"

	"go.uber.org/zap"
)

var Log *zap.Logger

// Init builds the process logger. Called once from main before anything that
// logs.
func Init(debug bool) {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	Log = l
}

func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
