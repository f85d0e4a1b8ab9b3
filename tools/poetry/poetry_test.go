package poetry

import (
	"testing"

	"github.com/WithIO/DOuze"
	"github.com/google/go-cmp/cmp"
)

func TestPublishArgs(t *testing.T) {
	want := []string{"publish", "--build", "-r", "pypitest"}
	if diff := cmp.Diff(want, PublishArgs(douze.PublishConfig{Registry: "pypitest"})); diff != "" {
		t.Errorf("PublishArgs() mismatch (-want +got):\n%s", diff)
	}
}
