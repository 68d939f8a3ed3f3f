package main

import (
	"log"
	"os"
	"strings"

	"srclist/cmd"
	"srclist/pkg/config"
	"srclist/pkg/logging"
	"srclist/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	cfg, cfgErr := config.Load()

	debug := cfg.Debug || cmd.DebugRequested(os.Args[1:])
	logger, level, err := logging.New(debug, version.Get().LogFields())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	if cfgErr != nil {
		logger.Warn("Ignoring .env file", zap.Error(cfgErr))
	}

	err = cmd.Execute(os.Args, cmd.Deps{
		Config: cfg,
		Logger: logger,
		Level:  level,
		Stdout: os.Stdout,
	})
	if err != nil {
		// Fatal flushes the core before exiting with status 1.
		logger.Fatal("srclist execution failed", zap.Error(err))
	}

	syncLogger(logger)
}

// syncLogger flushes the logger when stderr can actually be synced; pipes
// and character devices other than terminals report spurious errors.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if err := logger.Sync(); err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			log.Printf("Logger sync failed: %v", err)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
