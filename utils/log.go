package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

const (
	logMaxAge   = 7 * 24 * time.Hour
	logRotation = 24 * time.Hour
)

// Formatter 单行: 时间 [级别] 文件:行 函数 消息
type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	ts := entry.Time.Format(time.DateTime)
	level := strings.ToLower(entry.Level.String())

	file, funcName := "?", "?"
	line := 0
	if entry.Caller != nil {
		file = filepath.Base(entry.Caller.File)
		line = entry.Caller.Line
		parts := strings.Split(entry.Caller.Function, ".")
		funcName = parts[len(parts)-1]
	}
	return []byte(fmt.Sprintf("%s [%s] %s:%d %s %s\n", ts, level, file, line, funcName, entry.Message)), nil
}

// Logger 按天轮转的文件日志, 返回pitaya日志接口
func Logger(level logrus.Level, dir string) (interfaces.Logger, error) {
	writer, err := newRotateWriter(dir)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(writer)
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return logruswrapper.NewWithFieldLogger(l), nil
}

// rotateWriter 包装rotatelogs, 日志文件被清走后能重建
type rotateWriter struct {
	*rotatelogs.RotateLogs
	pattern string
}

func newRotateWriter(dir string) (*rotateWriter, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	program := filepath.Base(os.Args[0])
	pattern := filepath.Join(dir, fmt.Sprintf("%s-%%Y%%m%%d.log", program))

	rl, err := rotatelogs.New(
		pattern,
		rotatelogs.WithMaxAge(logMaxAge),
		rotatelogs.WithRotationTime(logRotation),
	)
	if err != nil {
		return nil, err
	}
	return &rotateWriter{RotateLogs: rl, pattern: pattern}, nil
}

func (w *rotateWriter) Write(p []byte) (int, error) {
	if _, err := os.Stat(w.RotateLogs.CurrentFileName()); os.IsNotExist(err) {
		rl, err := rotatelogs.New(
			w.pattern,
			rotatelogs.WithMaxAge(logMaxAge),
			rotatelogs.WithRotationTime(logRotation),
		)
		if err != nil {
			return 0, fmt.Errorf("recreate log writer: %w", err)
		}
		w.RotateLogs = rl
	}
	return w.RotateLogs.Write(p)
}
