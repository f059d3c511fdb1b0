package utils_test

import (
	"strings"
	"testing"

	"github.com/kevin-chtw/tw_riichi/utils"
	"github.com/sirupsen/logrus"
)

func TestFormatter(t *testing.T) {
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Level:   logrus.InfoLevel,
		Message: "hello",
	}
	out, err := (&utils.Formatter{}).Format(entry)
	if err != nil {
		t.Fatal(err)
	}
	line := string(out)
	if !strings.Contains(line, "[info]") || !strings.Contains(line, "hello") {
		t.Errorf("unexpected log line: %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("log line must end with newline: %q", line)
	}
}

func TestLogger(t *testing.T) {
	l, err := utils.Logger(logrus.DebugLevel, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	l.Info("started")
}
