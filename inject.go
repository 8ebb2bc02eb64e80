package radial

// syntheticKind identifies a queued synthetic input event.
type syntheticKind uint8

const (
	synthPress syntheticKind = iota
	synthMove
	synthRelease
	synthKeyDown
	synthKeyUp
)

// syntheticEvent represents a single injected input event. Coordinates use
// the same space real device samples do.
type syntheticEvent struct {
	kind syntheticKind
	x, y float64
	mods KeyModifiers
}

// InjectPress queues a pointer press at the given coordinates (primary
// button). The event is consumed on the next Update call in place of device
// polling.
func (s *Sampler) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synthPress, x: x, y: y})
}

// InjectMove queues a pointer motion to the given coordinates. Between
// InjectPress and InjectRelease the motion reports the primary button held,
// so a queued sequence simulates a drag.
func (s *Sampler) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synthMove, x: x, y: y})
}

// InjectMoveModified queues a pointer motion carrying held modifier flags,
// the shape of sample that activates turbo mode.
func (s *Sampler) InjectMoveModified(x, y float64, mods KeyModifiers) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synthMove, x: x, y: y, mods: mods})
}

// InjectRelease queues a pointer release at the given coordinates.
func (s *Sampler) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synthRelease, x: x, y: y})
}

// InjectClick is a convenience that queues a press followed by a release at
// the same coordinates. Consumes two ticks.
func (s *Sampler) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate ticks, and release at
// (toX, toY). The total sequence consumes frames ticks. Minimum frames is 2
// (press + release).
func (s *Sampler) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.InjectMove(x, y)
	}
	s.InjectRelease(toX, toY)
}

// InjectKeyDown queues a key press, arming turbo mode at the pointer's
// current position.
func (s *Sampler) InjectKeyDown() {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synthKeyDown})
}

// InjectKeyUp queues a key release. mods is the set of modifier keys still
// held afterwards; pass 0 for a full release.
func (s *Sampler) InjectKeyUp(mods KeyModifiers) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synthKeyUp, mods: mods})
}

// processInjected pops one event from the inject queue and feeds it to the
// tracker in place of device polling. Returns true if an event was consumed.
// Synthetic pointer events keep the edge-detection state consistent so real
// polling can resume cleanly once the queue drains.
func (s *Sampler) processInjected() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	pos := Vec2{evt.x, evt.y}
	switch evt.kind {
	case synthPress:
		s.tracker.HandlePointerDown(PointerSample{
			Position:  pos,
			Buttons:   ButtonPrimary,
			Modifiers: evt.mods,
			Source:    Mouse,
		}, s.item())
		s.prevPressed = true
		s.prevPos = pos
		s.havePrev = true
	case synthMove:
		var buttons Buttons
		if s.prevPressed {
			buttons = ButtonPrimary
		}
		s.tracker.HandleMotion(PointerSample{
			Position:  pos,
			Buttons:   buttons,
			Modifiers: evt.mods,
			Source:    Mouse,
		}, s.item())
		s.prevPos = pos
		s.havePrev = true
	case synthRelease:
		s.tracker.HandlePointerUp()
		s.prevPressed = false
		s.prevPos = pos
		s.havePrev = true
	case synthKeyDown:
		s.tracker.HandleKeyDown()
	case synthKeyUp:
		s.tracker.HandleKeyUp(evt.mods)
	}
	return true
}
