package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level     string
		infoShown bool
		v1Shown   bool
	}{
		{"debug", true, true},
		{"", true, false},
		{"info", true, false},
		{"WARN", false, false},
		{"error", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(tt.level, &buf)
			if err != nil {
				t.Fatalf("New(%q): %v", tt.level, err)
			}
			logger.Info("swipe committed", "direction", "left")
			logger.V(1).Info("phase", "to", "idle")

			out := buf.String()
			if got := strings.Contains(out, "swipe committed"); got != tt.infoShown {
				t.Errorf("info shown = %v, want %v\n%s", got, tt.infoShown, out)
			}
			if got := strings.Contains(out, "phase"); got != tt.v1Shown {
				t.Errorf("V(1) shown = %v, want %v\n%s", got, tt.v1Shown, out)
			}
		})
	}
}

func TestNew_UnknownLevel(t *testing.T) {
	if _, err := New("loud", &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNew_ErrorCarriesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("info", &buf)
	if err != nil {
		t.Fatal(err)
	}
	logger.WithName("stack").Error(nil, "callback panicked", "op", "cardstack.Stack.OnItemSwiped")

	out := buf.String()
	for _, want := range []string{"stack", "callback panicked", "cardstack.Stack.OnItemSwiped"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
