package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/conform/internal/adapters/logger"
)

func TestLogger_Levels(t *testing.T) {
	log := logger.New()
	buf := new(bytes.Buffer)
	log.SetOutput(buf)

	log.Info("checking workspace")
	log.Warn("unknown config version")
	log.Error(errors.New("manifest unreadable"))

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "checking workspace")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "manifest unreadable")
}
