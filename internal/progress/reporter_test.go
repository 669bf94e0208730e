package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestLineReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &LineReporter{Out: &buf}

	r.Start(2)
	r.Update(1, "/intro")
	r.Update(2, "/guide/setup")
	r.Finish()

	out := buf.String()
	for _, want := range []string{"Rendering 2 pages", "[1/2] /intro", "[2/2] /guide/setup", "Site build complete"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*LineReporter); !ok {
		t.Error("expected LineReporter when CI is set")
	}
}
