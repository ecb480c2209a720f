package log

import (
	"os"

	"github.com/natefinch/lumberjack"
	tmlog "github.com/tendermint/tendermint/libs/log"
)

var (
	fileWriter *lumberjack.Logger
	logger     tmlog.Logger
)

func init() {
	logger = NewConsoleLogger()
}

// InitLogger replaces the package logger that keepers derive theirs from.
func InitLogger(l tmlog.Logger) {
	logger = l
}

func NewConsoleLogger() tmlog.Logger {
	return tmlog.NewTMLogger(tmlog.NewSyncWriter(os.Stdout))
}

// NewFileLogger writes to a size-rotated, compressed log file. maxSize is in megabytes.
func NewFileLogger(filePath string, maxSize, maxAge int) tmlog.Logger {
	if fileWriter != nil {
		_ = fileWriter.Close()
	}

	fileWriter = &lumberjack.Logger{
		Filename: filePath,
		MaxSize:  maxSize,
		MaxAge:   maxAge,
		Compress: true,
	}

	return tmlog.NewTMLogger(tmlog.NewSyncWriter(fileWriter))
}

// Close releases the rotating file, if one is open.
func Close() error {
	if fileWriter == nil {
		return nil
	}
	err := fileWriter.Close()
	fileWriter = nil
	return err
}

func With(keyvals ...interface{}) tmlog.Logger {
	return logger.With(keyvals...)
}
