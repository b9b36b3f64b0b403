package style

import (
	"testing"

	"github.com/go-drift/embedui/pkg/graphics"
)

func TestCopy_Independent(t *testing.T) {
	src := Flat(graphics.ColorRed, 4)
	c := src.Copy()
	c.Body.Radius = RadiusCircle
	if src.Body.Radius != 4 {
		t.Errorf("source radius changed to %d", src.Body.Radius)
	}
	if c.Body.MainColor != graphics.ColorRed {
		t.Errorf("copy lost main color")
	}
}

func TestCopy_Nil(t *testing.T) {
	var s *Style
	if s.Copy() != nil {
		t.Error("copy of nil style should be nil")
	}
}
