// Package widgets provides the object types built on pkg/object.
//
// # Construction
//
// Every widget is created on a parent object and may be cloned from an
// existing instance of the same type:
//
//	scr := disp.Screen()
//	btn := widgets.NewButton(scr, nil)
//	btn.SetAction(widgets.ActionClick, func(b *widgets.Button) object.Result {
//	    log.Info("clicked")
//	    return object.ResOK
//	})
//
//	twin := widgets.NewButton(scr, btn) // copies state, toggle, actions and styles
//
// # Handler Chain
//
// A widget's handler keeps its base type's handler and calls it first, so
// the generic object behavior always runs before the widget's own:
//
//	object.Base -> Container -> Button
//
// If the base handler reports [object.ResInvalid] the object was deleted and
// the widget stops touching it.
//
// # Button
//
// [Button] is a five state push or toggle button. Pointer signals from
// pkg/indev and keys from a pkg/focus group drive its state machine; user
// callbacks are attached per [ActionKind]. Presses start a ripple on the
// process-wide [InkEffect], which draws an expanding circle in the target
// state's style until the animation finishes or another button is pressed.
package widgets
