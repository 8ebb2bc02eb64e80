package radial

// State classifies the current interaction phase of a pointer gesture.
// Exactly one state is active at any time; StateReleased is the initial
// state and the state between gestures.
type State uint8

const (
	StateReleased State = iota // no gesture in progress
	StateClicked               // button pressed, still within the drag threshold
	StateMarking               // drag selection: moved past the threshold with a button held
	StateTurbo                 // hover selection: moving with a key or modifier held
)

func (s State) String() string {
	switch s {
	case StateReleased:
		return "released"
	case StateClicked:
		return "clicked"
	case StateMarking:
		return "marking"
	case StateTurbo:
		return "turbo"
	default:
		panic("invalid State")
	}
}

const (
	defaultDragThreshold = 15.0 // pixels
	staleMotionCount     = 2    // motion samples swallowed after ResetIgnoredMotion
)

// --- Handler registry ---

type motionHandler struct {
	id uint32
	fn func(Vec2)
}

type handlerRegistry struct {
	motion []motionHandler
	nextID uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.motion = removeMotionHandler(h.reg.motion, h.id)
}

func removeMotionHandler(s []motionHandler, id uint32) []motionHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = motionHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Tracker ---

// Tracker interprets pointer, touch, and key events for a radial menu and
// classifies them into a State, deriving the geometric quantities downstream
// selection logic needs: the pointer position in absolute coordinates and
// relative to the active menu item, plus the distance and angle of that
// relative offset.
//
// A Tracker is owned by a single goroutine; all methods must be called from
// the host's input loop. It never blocks and never errors.
type Tracker struct {
	state State

	absolute Vec2
	relative Vec2
	distance float64
	angle    float64

	clickPos   Vec2
	clickValid bool // a press is active (down seen, no up yet)

	keyDownPos    Vec2
	anyKeyPressed bool
	deferredTurbo bool

	ignoreMotion int

	dragThreshold float64
	markingMode   bool
	turboMode     bool

	handlers handlerRegistry

	debug bool
}

// NewTracker returns a Tracker with the default configuration: a 15 pixel
// drag threshold, marking mode and turbo mode enabled, deferred turbo off.
func NewTracker() *Tracker {
	return &Tracker{
		dragThreshold: defaultDragThreshold,
		markingMode:   true,
		turboMode:     true,
	}
}

// --- Configuration ---

// SetDragThreshold sets the minimum movement in pixels before a press turns
// into a marking drag, and before motion with a key held activates turbo mode.
func (t *Tracker) SetDragThreshold(pixels float64) {
	t.dragThreshold = pixels
}

// SetMarkingModeEnabled controls whether dragging past the threshold enters
// StateMarking. When disabled, such a drag releases the gesture instead.
func (t *Tracker) SetMarkingModeEnabled(enabled bool) {
	t.markingMode = enabled
}

// SetTurboModeEnabled controls whether turbo mode can activate at all.
func (t *Tracker) SetTurboModeEnabled(enabled bool) {
	t.turboMode = enabled
}

// SetDeferredTurboMode sets or clears the deferred turbo flag. While the flag
// is set turbo mode can neither arm nor activate; it clears itself once all
// modifier keys are released. Hosts set it when the menu was opened with a
// modifier already held, so that same hold does not instantly start a
// hover selection.
func (t *Tracker) SetDeferredTurboMode(deferred bool) {
	t.deferredTurbo = deferred
}

// SetDebug enables state transition logging to stderr.
func (t *Tracker) SetDebug(enabled bool) {
	t.debug = enabled
}

// --- Accessors ---

// State returns the current interaction state.
func (t *Tracker) State() State {
	return t.state
}

// Dragging reports whether a selection gesture is in progress, meaning the
// state is StateMarking or StateTurbo.
func (t *Tracker) Dragging() bool {
	return t.state == StateMarking || t.state == StateTurbo
}

// AbsolutePosition returns the pointer position from the last processed
// motion sample, in the host's coordinate space.
func (t *Tracker) AbsolutePosition() Vec2 {
	return t.absolute
}

// RelativePosition returns the pointer position relative to the active item
// position supplied with the last processed motion sample.
func (t *Tracker) RelativePosition() Vec2 {
	return t.relative
}

// Distance returns the length of RelativePosition in pixels.
func (t *Tracker) Distance() float64 {
	return t.distance
}

// Angle returns the direction of RelativePosition in degrees in [0, 360),
// with 0 pointing up and angles increasing clockwise.
func (t *Tracker) Angle() float64 {
	return t.angle
}

// ClickPosition returns the position of the current press, and whether a
// press is active: a pointer-down was processed with no pointer-up since.
func (t *Tracker) ClickPosition() (Vec2, bool) {
	return t.clickPos, t.clickValid
}

// --- Event registration ---

// OnPointerMotion registers a callback fired after every processed motion
// sample with the new absolute position, whether or not the state changed.
// Callbacks run synchronously in registration order on the caller's
// goroutine.
func (t *Tracker) OnPointerMotion(fn func(Vec2)) CallbackHandle {
	t.handlers.nextID++
	id := t.handlers.nextID
	t.handlers.motion = append(t.handlers.motion, motionHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &t.handlers}
}

// --- Operations ---

// HandlePointerDown records a press at the sample position and enters
// StateClicked. activeItem is the position of the currently active menu item;
// nil means the item sits at the pointer, making the relative position zero.
// The sample is then processed as a motion update, so a press can advance
// the state further in the same call.
func (t *Tracker) HandlePointerDown(s PointerSample, activeItem *Vec2) {
	t.clickPos = s.Position
	t.clickValid = true
	t.setState(StateClicked, "pointer down at (%.0f, %.0f)", s.Position.X, s.Position.Y)
	t.HandleMotion(s, activeItem)
}

// HandlePointerUp ends the current gesture: the state becomes StateReleased
// and the click position is cleared. Geometry is left untouched.
func (t *Tracker) HandlePointerUp() {
	t.clickValid = false
	t.setState(StateReleased, "pointer up")
}

// HandleMotion processes a pointer motion sample against the active item
// position (nil means the item sits at the pointer). It recomputes the
// derived geometry, applies the state transitions the sample implies, and
// fires the pointer-motion callbacks.
//
// While the stale-motion countdown from ResetIgnoredMotion is active the
// sample is swallowed whole: no geometry update, no transitions, no
// callbacks.
func (t *Tracker) HandleMotion(s PointerSample, activeItem *Vec2) {
	if t.ignoreMotion > 0 {
		t.ignoreMotion--
		return
	}

	t.updateGeometry(s.Position, activeItem)

	// Click-to-drag promotion.
	if t.state == StateClicked {
		if d := s.Position.DistanceTo(t.clickPos); d > t.dragThreshold {
			if t.markingMode {
				t.setState(StateMarking, "moved %.1fpx from press, threshold %.1fpx", d, t.dragThreshold)
			} else {
				t.setState(StateReleased, "moved %.1fpx from press, marking mode disabled", d)
			}
		}
	}

	// Turbo entry. A held key arms at its press position; moving past the
	// threshold from there, or any modifier flag on the sample itself,
	// activates regardless of the click/drag state above.
	turbo := false
	if t.turboMode && !t.deferredTurbo && t.state != StateTurbo {
		if t.anyKeyPressed && s.Position.DistanceTo(t.keyDownPos) > t.dragThreshold {
			turbo = true
			t.setState(StateTurbo, "moved past threshold with a key held")
		} else if s.Modifiers != 0 {
			turbo = true
			t.setState(StateTurbo, "modifiers held: %v", s.Modifiers)
		}
	}

	// A marking drag with no buttons held means the host missed the release
	// event; fold the gesture here.
	if !turbo && t.state == StateMarking && s.Buttons == 0 {
		t.setState(StateReleased, "motion with no buttons held")
	}

	t.notifyMotion(t.absolute)
}

// HandleKeyDown records that a keyboard key went down at the current pointer
// position, arming turbo mode. While the deferred turbo flag is set the call
// does nothing: the flag only clears on a full modifier release, so turbo
// cannot arm until then.
func (t *Tracker) HandleKeyDown() {
	if t.deferredTurbo {
		return
	}
	t.anyKeyPressed = true
	t.keyDownPos = t.absolute
}

// HandleKeyUp processes a keyboard key release. mods is the set of modifier
// keys still held after the release. Any remaining modifier leaves the
// gesture unchanged; once all are up the turbo arming state and the deferred
// turbo flag are cleared, and an active turbo gesture falls back to
// StateMarking if a press is still active, StateReleased otherwise.
func (t *Tracker) HandleKeyUp(mods KeyModifiers) {
	if mods != 0 {
		return
	}
	t.anyKeyPressed = false
	t.deferredTurbo = false
	if t.state == StateTurbo {
		if t.clickValid {
			t.setState(StateMarking, "all keys released, press active")
		} else {
			t.setState(StateReleased, "all keys released")
		}
	}
}

// ResetIgnoredMotion arms the tracker to swallow the next two motion samples.
// Some platforms report stale pointer coordinates right after a new input
// surface appears; hosts call this when the menu window is shown so those
// samples do not disturb the gesture. Press, release, and key events are
// never suppressed.
func (t *Tracker) ResetIgnoredMotion() {
	t.ignoreMotion = staleMotionCount
}

// --- Internals ---

// updateGeometry recomputes all derived quantities from a new pointer
// position. They are always updated together so accessors never observe a
// mixed snapshot.
func (t *Tracker) updateGeometry(pos Vec2, activeItem *Vec2) {
	t.absolute = pos
	if activeItem != nil {
		t.relative = pos.Sub(*activeItem)
	} else {
		t.relative = Vec2{}
	}
	t.distance = t.relative.Length()
	t.angle = t.relative.Angle()
}

func (t *Tracker) setState(next State, format string, args ...any) {
	if t.state == next {
		return
	}
	if t.debug {
		logTransition(t.state, next, format, args...)
	}
	t.state = next
}

func (t *Tracker) notifyMotion(pos Vec2) {
	for _, h := range t.handlers.motion {
		h.fn(pos)
	}
}
