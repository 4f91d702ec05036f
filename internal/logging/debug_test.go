package logging

import (
	"testing"
)

func TestDebugEnabled(t *testing.T) {
	// Test with TASKBOARD_DEBUG set to empty string
	t.Setenv(DebugEnv, "")
	if DebugEnabled() {
		t.Error("DebugEnabled() should return false when TASKBOARD_DEBUG is empty")
	}

	// Test with TASKBOARD_DEBUG set to any value
	t.Setenv(DebugEnv, "1")
	if !DebugEnabled() {
		t.Error("DebugEnabled() should return true when TASKBOARD_DEBUG is set")
	}

	t.Setenv(DebugEnv, "true")
	if !DebugEnabled() {
		t.Error("DebugEnabled() should return true when TASKBOARD_DEBUG is 'true'")
	}
}

func TestDebugf(t *testing.T) {
	// Output goes to stderr; this only checks that neither mode panics
	t.Setenv(DebugEnv, "")
	Debugf("This should not appear: %s", "test")

	t.Setenv(DebugEnv, "1")
	Debugf("This should appear: %s\n", "test")
}

func TestDebugln(t *testing.T) {
	t.Setenv(DebugEnv, "")
	Debugln("This should not appear")

	t.Setenv(DebugEnv, "1")
	Debugln("This should appear")
}
