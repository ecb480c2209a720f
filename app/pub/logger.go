package pub

import (
	"fmt"
	"strings"

	tmlog "github.com/tendermint/tendermint/libs/log"
)

// saramaLogger routes sarama.StdLogger output into the node logger at debug level.
type saramaLogger struct {
	tmlog.Logger
}

func (slogger saramaLogger) Print(v ...interface{}) {
	slogger.emit(fmt.Sprint(v...))
}

func (slogger saramaLogger) Printf(format string, v ...interface{}) {
	slogger.emit(fmt.Sprintf(format, v...))
}

func (slogger saramaLogger) Println(v ...interface{}) {
	slogger.emit(fmt.Sprintln(v...))
}

func (slogger saramaLogger) emit(line string) {
	slogger.Debug(strings.TrimRight(line, "\n"), "source", "sarama")
}
