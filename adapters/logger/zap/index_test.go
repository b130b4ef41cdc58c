package zap

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/andrewboy/see-me/adapters/logger"
)

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seeme.log")

	for _, msg := range []string{"first call", "second call"} {
		lg, err := NewFile(path)
		require.Nil(t, err)
		lg.Infow(msg)
		lg.Close()
	}

	raw, err := os.ReadFile(path)
	require.Nil(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)

	lineRe := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} - (.+)$`)
	for i, want := range []string{"first call", "second call"} {
		m := lineRe.FindStringSubmatch(lines[i])
		require.NotNil(t, m, lines[i])
		require.Equal(t, want, m[1])
	}
}

func TestNewFileFail(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "missing", "dir", "seeme.log"))
	require.NotNil(t, err)
}

func TestFatalw(t *testing.T) {
	buf := &bytes.Buffer{}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)

	var lg logger.Full = &St{l: zap.New(core, zap.WithFatalHook(zapcore.WriteThenPanic)).Sugar()}

	require.Panics(t, func() {
		lg.Fatalw("fatal failure", errors.New("boom"), "path", "/tmp/x")
	})

	require.Contains(t, buf.String(), `"msg":"fatal failure"`)
	require.Contains(t, buf.String(), `"error":"boom"`)
	require.Contains(t, buf.String(), `"path":"/tmp/x"`)
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	require.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	require.Equal(t, zapcore.InfoLevel, parseLevel(""))
}
