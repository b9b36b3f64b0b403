// Package focus routes keypad input to the focused member of an object group.
//
// A [Group] keeps an ordered list of objects. [KeyNext] and [KeyPrev] move
// focus linearly; every other key is delivered to the focused object as
// object.SignalControl with the [Key] as param.
package focus

import (
	"fmt"
	"math"

	"github.com/go-drift/embedui/pkg/graphics"
	"github.com/go-drift/embedui/pkg/object"
)

// Key is a navigation key code.
type Key uint32

const (
	KeyEnter Key = 10
	KeyNext  Key = 9
	KeyPrev  Key = 11
	KeyUp    Key = 17
	KeyDown  Key = 18
	KeyRight Key = 19
	KeyLeft  Key = 20
	KeyEsc   Key = 27
)

func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "enter"
	case KeyNext:
		return "next"
	case KeyPrev:
		return "prev"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyRight:
		return "right"
	case KeyLeft:
		return "left"
	case KeyEsc:
		return "esc"
	default:
		return fmt.Sprintf("Key(%d)", uint32(k))
	}
}

// ParseKey resolves a key name as printed by Key.String.
func ParseKey(name string) (Key, bool) {
	for _, k := range []Key{KeyEnter, KeyNext, KeyPrev, KeyUp, KeyDown, KeyRight, KeyLeft, KeyEsc} {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// Direction selects geometric focus traversal.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Group is an ordered set of focusable objects.
type Group struct {
	members  []*object.Object
	focused  *object.Object
	watching map[*object.Display]bool
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{watching: make(map[*object.Display]bool)}
}

// Add appends obj to the group. The first member added gets focus.
func (g *Group) Add(obj *object.Object) {
	for _, m := range g.members {
		if m == obj {
			return
		}
	}
	if d := obj.Display(); d != nil && !g.watching[d] {
		g.watching[d] = true
		d.OnDelete(g.Remove)
	}
	g.members = append(g.members, obj)
	if g.focused == nil {
		g.setFocus(obj)
	}
}

// Remove drops obj from the group, moving focus on if it was focused.
func (g *Group) Remove(obj *object.Object) {
	idx := g.indexOf(obj)
	if idx < 0 {
		return
	}
	if g.focused == obj {
		g.focused = nil
		if len(g.members) > 1 {
			next := g.members[wrapIndex(idx+1, len(g.members))]
			g.members = append(g.members[:idx], g.members[idx+1:]...)
			g.setFocus(next)
			return
		}
	}
	g.members = append(g.members[:idx], g.members[idx+1:]...)
}

// Members returns the group members in traversal order.
func (g *Group) Members() []*object.Object {
	return g.members
}

// Focused returns the focused object, or nil.
func (g *Group) Focused() *object.Object {
	return g.focused
}

// Focus gives focus to obj if it is a member.
func (g *Group) Focus(obj *object.Object) bool {
	if g.indexOf(obj) < 0 {
		return false
	}
	g.setFocus(obj)
	return true
}

// FocusNext moves focus to the next member, wrapping around.
func (g *Group) FocusNext() bool {
	return g.moveFocus(1)
}

// FocusPrev moves focus to the previous member, wrapping around.
func (g *Group) FocusPrev() bool {
	return g.moveFocus(-1)
}

// SendKey handles key. Next and Prev move focus; every other key is sent to
// the focused object. It returns the focused object's signal result.
func (g *Group) SendKey(key Key) object.Result {
	switch key {
	case KeyNext:
		g.FocusNext()
		return object.ResOK
	case KeyPrev:
		g.FocusPrev()
		return object.ResOK
	}
	if g.focused == nil {
		return object.ResOK
	}
	return g.focused.Signal(object.SignalControl, key)
}

// FocusInDirection moves focus to the member whose center lies in direction
// from the focused one, preferring aligned members. It falls back to linear
// traversal when no member lies that way.
func (g *Group) FocusInDirection(dir Direction) bool {
	current := g.focused
	if current == nil {
		return g.moveFocus(1)
	}
	from := current.Coords().Center()

	var best *object.Object
	bestScore := math.MaxFloat64
	for _, m := range g.members {
		if m == current {
			continue
		}
		to := m.Coords().Center()
		if !isInDirection(from, to, dir) {
			continue
		}
		if score := directionalScore(from, to, dir); score < bestScore {
			bestScore = score
			best = m
		}
	}
	if best == nil {
		if dir == DirectionUp || dir == DirectionLeft {
			return g.moveFocus(-1)
		}
		return g.moveFocus(1)
	}
	g.setFocus(best)
	return true
}

func isInDirection(from, to graphics.Point, dir Direction) bool {
	switch dir {
	case DirectionUp:
		return to.Y < from.Y
	case DirectionDown:
		return to.Y > from.Y
	case DirectionLeft:
		return to.X < from.X
	case DirectionRight:
		return to.X > from.X
	}
	return false
}

// directionalScore weights cross-axis distance twice to prefer aligned members.
func directionalScore(from, to graphics.Point, dir Direction) float64 {
	dx := math.Abs(float64(to.X - from.X))
	dy := math.Abs(float64(to.Y - from.Y))
	if dir == DirectionUp || dir == DirectionDown {
		return dy + dx*2
	}
	return dx + dy*2
}

func (g *Group) moveFocus(delta int) bool {
	count := len(g.members)
	if count == 0 {
		return false
	}
	next := g.members[wrapIndex(g.indexOf(g.focused)+delta, count)]
	if g.focused == nil && delta < 0 {
		next = g.members[count-1]
	}
	g.setFocus(next)
	return true
}

func (g *Group) indexOf(obj *object.Object) int {
	for i, m := range g.members {
		if m == obj {
			return i
		}
	}
	return -1
}

func wrapIndex(index, count int) int {
	index %= count
	if index < 0 {
		index += count
	}
	return index
}

func (g *Group) setFocus(obj *object.Object) {
	if g.focused == obj {
		return
	}
	if prev := g.focused; prev != nil && !prev.Deleted() {
		prev.Signal(object.SignalDefocus, nil)
	}
	g.focused = obj
	if obj != nil {
		obj.Signal(object.SignalFocus, nil)
		obj.Invalidate()
	}
}
