package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// Output receives all Echo messages.
	Output io.Writer = os.Stderr
	exit             = os.Exit
)

// Fatal will Echo the message and exit the process with status code 1.
func Fatal(msg string, args ...any) {
	Echo(msg, args...)
	exit(1)
}

// Echo writes a newline terminated message to Output without any logging decoration.
func Echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(Output, msg, args...)
}
