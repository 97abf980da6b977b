package logging

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/fernandosanchezjr/gosampling/config"
	"github.com/fernandosanchezjr/gosampling/utils"
	"github.com/sirupsen/logrus"
)

const LogPath = "logs"

var logFile *os.File

func openLogFile() (*os.File, error) {
	logFolder := utils.GetSubFolder(LogPath)
	return os.OpenFile(path.Join(logFolder, "log.out"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}

func exitHandler() {
	if logFile != nil {
		_ = logFile.Close()
	}
}

// Setup configures the standard logrus logger from cfg.
func Setup(cfg config.Log) error {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	var output io.Writer = os.Stdout
	if cfg.File {
		if logFile == nil {
			if logFile, err = openLogFile(); err != nil {
				return fmt.Errorf("opening log file: %w", err)
			}
			logrus.RegisterExitHandler(exitHandler)
		}
		output = io.MultiWriter(logFile, os.Stdout)
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(parsed)
	logrus.SetOutput(output)
	return nil
}
