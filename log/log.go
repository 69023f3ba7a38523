package log

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/mrnim94/file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// InitLogger sets up the shared logger: human readable lines on stdout plus a
// JSON hook writing daily rotated files under ./logs. Pass true to skip the
// file hook (tests, local runs without a writable logs dir).
func InitLogger(consoleOnly bool) *logrus.Logger {
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if !consoleOnly {
		if hook := newRotateFileHook(); hook != nil {
			logger.AddHook(hook)
		}
	}
	return logger
}

func newRotateFileHook() logrus.Hook {
	appName := os.Getenv("APP_NAME")
	if appName == "" {
		appName = "app"
	}
	logPath := filepath.Join("logs", appName)
	writer, err := rotatelogs.New(
		logPath+".%Y%m%d.log",
		rotatelogs.WithLinkName(logPath+".log"),
		rotatelogs.WithRotationTime(24*time.Hour),
		rotatelogs.WithMaxAge(7*24*time.Hour),
	)
	if err != nil {
		logger.Errorf("Failed to initialize log file rotation: %v", err)
		return nil
	}
	return lfshook.NewHook(lfshook.WriterMap{
		logrus.DebugLevel: writer,
		logrus.InfoLevel:  writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
		logrus.PanicLevel: writer,
	}, &logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

// GetLogLevel reads a logrus level from the given environment variable.
// Unset or unrecognized values fall back to Info.
func GetLogLevel(envKey string) logrus.Level {
	level, err := logrus.ParseLevel(strings.ToLower(os.Getenv(envKey)))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func Debug(args ...interface{}) { logger.Debug(args...) }

func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }

func Info(args ...interface{}) { logger.Info(args...) }

func Infof(format string, args ...interface{}) { logger.Infof(format, args...) }

func Warn(args ...interface{}) { logger.Warn(args...) }

func Warnf(format string, args ...interface{}) { logger.Warnf(format, args...) }

func Error(args ...interface{}) { logger.Error(args...) }

func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }

func Fatal(args ...interface{}) { logger.Fatal(args...) }

func Fatalf(format string, args ...interface{}) { logger.Fatalf(format, args...) }
