package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNew_Singleton(t *testing.T) {
	a := New()
	b := New()
	assert.Same(t, a, b)

	before := testutil.ToFloat64(a.ComposeCommandsTotal.WithLabelValues("ls", "ok"))
	b.ComposeCommandsTotal.WithLabelValues("ls", "ok").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(a.ComposeCommandsTotal.WithLabelValues("ls", "ok")))
}
