package logger

import (
	"bytes"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps a zap logger that writes colored console output into an
// in-memory buffer. The buffer is converted to HTML on demand so the demo
// page can show the build log next to the rendered graph.
type ZapLogger struct {
	log    *zap.Logger
	logBuf *bytes.Buffer
	Logs   []string
}

// New creates a logger capturing everything at or above the given level.
func New(level zapcore.Level) *ZapLogger {
	logBuf := &bytes.Buffer{}

	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     shortTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	encoder := zapcore.NewConsoleEncoder(config)
	core := zapcore.NewCore(encoder, zapcore.AddSync(logBuf), level)

	return &ZapLogger{
		log:    zap.New(core),
		logBuf: logBuf,
	}
}

// ParseLevel maps a config string to a zap level, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	var level zapcore.Level
	if err := level.Set(strings.ToLower(s)); err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func shortTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05.000"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colorCode string
	switch level {
	case zapcore.DebugLevel:
		colorCode = "\033[36m" // cyan
	case zapcore.InfoLevel:
		colorCode = "\033[32m" // green
	case zapcore.WarnLevel:
		colorCode = "\033[33m" // yellow
	case zapcore.ErrorLevel:
		colorCode = "\033[31m" // red
	default:
		colorCode = "\033[0m"
	}
	enc.AppendString(colorCode + level.String() + "\033[0m")
}

var ansiRe = regexp.MustCompile(`\033\[(\d+)m`)

var htmlColors = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"36": "cyan",
}

// ansiToHTML rewrites ANSI color escapes as span tags with inline styles,
// wrapping the whole log in a pre block.
func ansiToHTML(input string) string {
	var out strings.Builder
	out.WriteString("<pre>")

	open := false
	lastIndex := 0
	for _, match := range ansiRe.FindAllStringSubmatchIndex(input, -1) {
		out.WriteString(input[lastIndex:match[0]])
		lastIndex = match[1]

		if open {
			out.WriteString("</span>")
			open = false
		}
		if color, ok := htmlColors[input[match[2]:match[3]]]; ok {
			out.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		}
	}
	out.WriteString(input[lastIndex:])
	if open {
		out.WriteString("</span>")
	}

	out.WriteString("</pre>")
	return out.String()
}

// UpdateLogs refreshes the HTML snapshot of the captured log.
func (z *ZapLogger) UpdateLogs() {
	z.Logs = []string{ansiToHTML(z.logBuf.String())}
}

// ClearLogs drops everything captured so far.
func (z *ZapLogger) ClearLogs() {
	z.logBuf.Reset()
	z.Logs = nil
}

func (z *ZapLogger) Debug(msg string, fields ...zap.Field) {
	z.log.Debug(msg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Info(msg string, fields ...zap.Field) {
	z.log.Info(msg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Warn(msg string, fields ...zap.Field) {
	z.log.Warn(msg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Error(msg string, fields ...zap.Field) {
	z.log.Error(msg, fields...)
	z.UpdateLogs()
}
