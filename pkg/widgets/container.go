package widgets

import (
	"github.com/go-drift/embedui/pkg/draw"
	"github.com/go-drift/embedui/pkg/graphics"
	"github.com/go-drift/embedui/pkg/object"
)

// Container is the handler of plain container objects and the base of
// every widget in this package.
type Container struct {
	base object.Handler
}

// NewContainer creates a container object on parent, copying geometry and
// style from copy when it is non-nil.
func NewContainer(parent, copy *object.Object) *object.Object {
	obj := object.New(parent, copy)
	obj.SetHandler(&Container{base: obj.Handler()})
	return obj
}

// Signal implements object.Handler.
func (c *Container) Signal(obj *object.Object, sig object.Signal, param any) object.Result {
	if res := c.base.Signal(obj, sig, param); res != object.ResOK {
		return res
	}
	if sig == object.SignalGetType {
		if info, ok := param.(*object.TypeInfo); ok {
			info.Types = append(info.Types, "container")
		}
	}
	return object.ResOK
}

// Design implements object.Handler.
func (c *Container) Design(obj *object.Object, s draw.Surface, mask graphics.Area, mode object.DesignMode) bool {
	return c.base.Design(obj, s, mask, mode)
}
