package widgets

import (
	"github.com/go-drift/embedui/pkg/draw"
	"github.com/go-drift/embedui/pkg/graphics"
	"github.com/go-drift/embedui/pkg/object"
	"github.com/go-drift/embedui/pkg/style"
)

// Design implements object.Handler. Buttons never report covering the mask
// because their corners may be rounded or their body translucent.
func (b *Button) Design(obj *object.Object, s draw.Surface, mask graphics.Area, mode object.DesignMode) bool {
	switch mode {
	case object.DesignCoverCheck:
		return false

	case object.DesignDrawMain:
		b.base.Design(obj, s, mask, mode)
		frame, ok := b.ink.Frame(b)
		if !ok {
			s.Rect(obj.Coords(), mask, obj.Style(), graphics.OpaCover)
			return true
		}
		s.Rect(obj.Coords(), mask, b.styles[frame.Background], graphics.OpaCover)

		circle := b.styles[frame.Circle].Copy()
		circle.Body.Radius = style.RadiusCircle
		s.Rect(frame.Area(), mask, circle, graphics.OpaCover)

	case object.DesignDrawPost:
		b.base.Design(obj, s, mask, mode)
	}
	return true
}
