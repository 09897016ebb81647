package logger_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/adapters/logger"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(fn func()) (string, error) {
	originalStderr := os.Stderr

	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stderr = w

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	if err := w.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	output := <-done

	if err := r.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	os.Stderr = originalStderr

	return output, nil
}

func TestLogger_Info(t *testing.T) {
	output, err := captureStderr(func() {
		// Create the logger inside the capture function so it uses the redirected stderr
		lg := logger.New()
		lg.Info("configuring project", "generator", "Ninja")
	})
	if err != nil {
		t.Fatalf("Failed to capture stderr: %v", err)
	}

	if !strings.Contains(output, "configuring project") {
		t.Errorf("Expected output to contain 'configuring project', got: %s", output)
	}
	if !strings.Contains(output, "level=INFO") {
		t.Errorf("Expected output to contain 'level=INFO', got: %s", output)
	}
	if !strings.Contains(output, "generator=Ninja") {
		t.Errorf("Expected output to contain 'generator=Ninja', got: %s", output)
	}
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Error(zerr.Wrap(os.ErrPermission, "failed to clean build tree"))

	assert.Contains(t, buf.String(), "permission denied")
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Warn("some warning")

	assert.Contains(t, buf.String(), "some warning")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestLogger_DebugHiddenByDefault(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Debug("starting process", "command", "cmake --build build")
	assert.Empty(t, buf.String())

	lg.SetLevel(domain.LogLevelDebug)
	lg.Debug("starting process", "command", "cmake --build build")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), `command="cmake --build build"`)
}

func TestLogger_SetLevelError(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)
	lg.SetLevel(domain.LogLevelError)

	lg.Info("quiet")
	lg.Warn("quiet")
	assert.Empty(t, buf.String())
}

func TestLogger_SetOutputKeepsLevel(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first)
	lg.SetLevel(domain.LogLevelDebug)

	lg.SetOutput(&second)
	lg.Debug("moved")

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), "moved")
}

func TestNew(t *testing.T) {
	lg := logger.New()
	if lg == nil {
		t.Fatal("Expected New() to return a non-nil logger")
	}
}
