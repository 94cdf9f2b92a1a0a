package console

import (
	"fmt"
	"io"
	"os"
)

const (
	black   = 30
	red     = 31
	green   = 32
	yellow  = 33
	blue    = 34
	fuchsia = 35
)

var (
	output io.Writer = os.Stdout
)

// SetOutput 替换输出目标，默认os.Stdout
func SetOutput(w io.Writer) {
	output = w
}

func Black(format string, args ...interface{}) {
	colorf(black, format, args...)
}

func Red(format string, args ...interface{}) {
	colorf(red, format, args...)
}

func Green(format string, args ...interface{}) {
	colorf(green, format, args...)
}

func Yellow(format string, args ...interface{}) {
	colorf(yellow, format, args...)
}

func Blue(format string, args ...interface{}) {
	colorf(blue, format, args...)
}

func Fuchsia(format string, args ...interface{}) {
	colorf(fuchsia, format, args...)
}

func colorf(color int, format string, args ...interface{}) {
	fmt.Fprintf(output, "\x1b[%dm%s\x1b[0m\n", color, fmt.Sprintf(format, args...))
}
