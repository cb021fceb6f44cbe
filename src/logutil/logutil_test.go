package logutil

import (
	"io"
	"log"
	"os"
	"testing"
)

func TestSetupDisabledDiscards(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	Setup(false)
	if log.Writer() != io.Discard {
		t.Error("expected log output to be discarded when file logging is disabled")
	}
}

func TestArchiveName(t *testing.T) {
	if got := archiveName(1); got != "keychord_debug.log.1" {
		t.Errorf("archiveName(1) = %q", got)
	}
}
