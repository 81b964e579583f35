package plot2d

import (
	"testing"

	"github.com/gogpu/plot2d/text"
)

func TestWithMeasurerShares(t *testing.T) {
	m := text.NewMeasurer()
	pc := NewParallelCoordinatesActor(WithMeasurer(m))
	sb := NewScalarBarActor(WithMeasurer(m))

	if pc.measurer != m || sb.measurer != m {
		t.Error("WithMeasurer did not install the shared measurer")
	}
}

func TestDefaultMeasurer(t *testing.T) {
	a := NewParallelCoordinatesActor()
	if a.measurer == nil {
		t.Error("actor created without a measurer")
	}
}
