package monitoring

import (
	"fmt"
	"testing"
)

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	var got string
	SetLogger(func(format string, v ...interface{}) {
		got = fmt.Sprintf(format, v...)
	})
	Logf("watching %s", "site.json")

	if got != "watching site.json" {
		t.Errorf("custom logger got %q", got)
	}

	// nil installs a no-op logger
	SetLogger(nil)
	Logf("dropped")
}

func TestDebugf(t *testing.T) {
	original := Logf
	defer func() {
		Logf = original
		SetVerbose(false)
	}()

	calls := 0
	SetLogger(func(string, ...interface{}) { calls++ })

	SetVerbose(false)
	Debugf("hidden")
	if calls != 0 {
		t.Errorf("Debugf logged while verbose disabled")
	}

	SetVerbose(true)
	Debugf("shown")
	if calls != 1 {
		t.Errorf("Debugf calls = %d, want 1", calls)
	}
}
