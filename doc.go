// Package radial interprets pointer, touch, and keyboard input for radial
// ("pie") selection menus on [Ebitengine].
//
// The heart of the package is the [Tracker], a state machine that classifies
// raw input into four interaction states and derives the geometry a menu
// needs to decide what the user is pointing at: the pointer position in
// absolute coordinates and relative to the active item, plus the distance
// and angle of that offset. Angles are measured in degrees with 0 pointing
// up and increasing clockwise, so a menu can map them straight onto item
// wedges.
//
// # Quick start
//
// Create a [Tracker], wrap it in a [Sampler], and pump the sampler from your
// game's Update function:
//
//	tracker := radial.NewTracker()
//	sampler := radial.NewSampler(tracker)
//
//	type Game struct{}
//
//	func (g *Game) Update() error {
//		sampler.Update()
//		if tracker.Dragging() {
//			// select the wedge under tracker.Angle()
//		}
//		return nil
//	}
//
// Tell the sampler where the active menu item sits with
// [Sampler.SetActiveItem]; the tracker's relative geometry follows it. When
// the menu surface (re)opens, call [Sampler.Reset] so stale motion
// coordinates reported by some platforms cannot disturb the first frames.
//
// # Interaction states
//
// A gesture is always in exactly one [State]:
//
//   - [StateReleased]: no gesture in progress.
//   - [StateClicked]: a button went down and the pointer has stayed within
//     the drag threshold.
//   - [StateMarking]: the pointer moved past the threshold with the button
//     held; the user is selecting by dragging.
//   - [StateTurbo]: the pointer is moving with a keyboard key or modifier
//     held; items are selected by hovering, no click needed.
//
// # Driving the tracker directly
//
// Hosts that deliver their own events, or tests that run without a window,
// can call the Tracker's Handle methods with [PointerSample] values, drive
// the Sampler with injected events ([Sampler.InjectDrag] and friends), or
// replay JSON gesture scripts ([LoadGestureScript]).
//
// Icon themes for menu renderers live in the icons subpackage.
//
// [Ebitengine]: https://ebitengine.org
package radial
