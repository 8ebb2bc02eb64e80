package radial

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Sampler polls Ebitengine input devices once per tick and feeds the presses,
// releases, motions, and key edges it detects into a Tracker as neutral
// samples. Touch input takes precedence over the mouse: while any touch is
// active the first contact is the pointer and reports ButtonPrimary.
//
// Call Update from the host's Update function every tick. A Sampler drives
// exactly one Tracker and, like the Tracker, belongs to a single goroutine.
type Sampler struct {
	tracker *Tracker

	itemPos Vec2
	itemSet bool

	prevPressed bool
	prevPos     Vec2
	havePrev    bool

	prevKeys []ebiten.Key
	keyBuf   []ebiten.Key
	touchIDs []ebiten.TouchID

	injectQueue []syntheticEvent
	runner      *ScriptRunner
}

// NewSampler returns a Sampler feeding the given tracker.
func NewSampler(t *Tracker) *Sampler {
	return &Sampler{tracker: t}
}

// SetActiveItem sets the active menu item position forwarded with every
// press and motion sample. The menu layer updates it as the selection moves
// through submenus.
func (s *Sampler) SetActiveItem(pos Vec2) {
	s.itemPos = pos
	s.itemSet = true
}

// ClearActiveItem unsets the active item position; samples are then
// processed as if the item sat at the pointer.
func (s *Sampler) ClearActiveItem() {
	s.itemSet = false
}

// Reset prepares the sampler for a fresh menu session: edge detection state
// is cleared and the tracker is armed to ignore stale motion samples.
// Pending injected events are kept.
func (s *Sampler) Reset() {
	s.prevPressed = false
	s.havePrev = false
	s.prevKeys = s.prevKeys[:0]
	s.tracker.ResetIgnoredMotion()
}

// Update advances the sampler by one tick. Synthetic input takes priority:
// while a gesture script is attached and unfinished, or injected events are
// queued, device polling is skipped entirely, which also makes scripted
// replay safe without a window.
func (s *Sampler) Update() {
	if s.runner != nil && !s.runner.Done() {
		s.runner.step(s)
		s.processInjected()
		return
	}
	if s.processInjected() {
		return
	}

	mods := readModifiers()
	s.processKeys(mods)
	sample, pressed := s.readDevice(mods)
	s.processDevice(sample, pressed)
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// processKeys diffs the pressed-key set against the previous tick and
// synthesizes key-down and key-up calls. Every key participates, modifier
// keys included.
func (s *Sampler) processKeys(mods KeyModifiers) {
	keys := inpututil.AppendPressedKeys(s.keyBuf[:0])
	s.keyBuf = keys

	for _, k := range keys {
		if !containsKey(s.prevKeys, k) {
			s.tracker.HandleKeyDown()
		}
	}
	for _, k := range s.prevKeys {
		if !containsKey(keys, k) {
			s.tracker.HandleKeyUp(mods)
		}
	}
	s.prevKeys = append(s.prevKeys[:0], keys...)
}

func containsKey(keys []ebiten.Key, k ebiten.Key) bool {
	for _, c := range keys {
		if c == k {
			return true
		}
	}
	return false
}

// readDevice builds the tick's pointer sample. The first active touch wins;
// otherwise the mouse cursor and button state are used.
func (s *Sampler) readDevice(mods KeyModifiers) (PointerSample, bool) {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(s.touchIDs[0])
		sample := PointerSample{
			Position:  Vec2{float64(tx), float64(ty)},
			Buttons:   ButtonPrimary,
			Modifiers: mods,
			Source:    Touch,
		}
		return sample, true
	}

	mx, my := ebiten.CursorPosition()
	var buttons Buttons
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		buttons |= ButtonPrimary
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		buttons |= ButtonSecondary
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		buttons |= ButtonTertiary
	}
	sample := PointerSample{
		Position:  Vec2{float64(mx), float64(my)},
		Buttons:   buttons,
		Modifiers: mods,
		Source:    Mouse,
	}
	return sample, buttons != 0
}

// processDevice turns the tick's sample into tracker calls: press and
// release edges, and a motion whenever the position changed. The first
// sample after construction or Reset always counts as a motion so the
// tracker gets an initial position fix.
func (s *Sampler) processDevice(sample PointerSample, pressed bool) {
	switch {
	case pressed && !s.prevPressed:
		s.tracker.HandlePointerDown(sample, s.item())
	case !pressed && s.prevPressed:
		s.tracker.HandlePointerUp()
	default:
		if !s.havePrev || sample.Position != s.prevPos {
			s.tracker.HandleMotion(sample, s.item())
		}
	}
	s.prevPressed = pressed
	s.prevPos = sample.Position
	s.havePrev = true
}

func (s *Sampler) item() *Vec2 {
	if !s.itemSet {
		return nil
	}
	return &s.itemPos
}
