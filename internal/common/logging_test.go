package common

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		quiet     bool
		verbose   bool
		wantDebug bool
		wantInfo  bool
	}{
		{"default", false, false, false, true},
		{"quiet", true, false, false, false},
		{"verbose", false, true, true, true},
		{"quiet wins", true, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.quiet, tt.verbose)
			logger.Debug("debug line")
			logger.Info("info line")
			logger.Error("error line")

			out := buf.String()
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.wantDebug)
			}
			if got := strings.Contains(out, "info line"); got != tt.wantInfo {
				t.Errorf("info logged = %v, want %v", got, tt.wantInfo)
			}
			if !strings.Contains(out, `"msg":"error line"`) {
				t.Errorf("error line missing from JSON output: %s", out)
			}
		})
	}
}
