package logger

import (
	"bytes"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T, fn func()) string {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	flags := log.Flags()
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})
	fn()
	return buf.String()
}

func TestFormatFieldsIsSorted(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("", formatFields(nil))
	assert.Equal("{a=1, b=two}", formatFields(Fields{"b": "two", "a": 1}))
}

func TestLevels(t *testing.T) {
	out := captureLog(t, func() {
		Info("chord built", Fields{"name": "C Major Triad"})
		Warn("slow", nil)
		Error("failed", errors.New("boom"), Fields{"request_id": "abc"})
	})

	assert := assert.New(t)
	assert.Contains(out, "[INFO] chord built {name=C Major Triad}")
	assert.Contains(out, "[WARN] slow")
	assert.Contains(out, "[ERROR] failed: boom {request_id=abc}")
}

func TestInitWithoutDSNIsANoop(t *testing.T) {
	flush := Init("", "test", "dev")
	assert.NotPanics(t, flush)
}
