package radial

import "strings"

// PointerSample is a device-neutral snapshot of pointer state: position,
// held buttons, keyboard modifiers, and the device class that produced it.
// The ingestion layer (Sampler, injected events, gesture scripts) builds
// samples so the Tracker never branches on device type.
type PointerSample struct {
	Position  Vec2
	Buttons   Buttons
	Modifiers KeyModifiers
	Source    Source
}

// Buttons is a bitmask of pointer buttons held during a sample.
// Values can be combined with bitwise OR. An active touch contact reports
// ButtonPrimary for as long as the finger is down.
type Buttons uint8

const (
	ButtonPrimary   Buttons = 1 << iota // left mouse button or touch contact
	ButtonSecondary                     // right mouse button
	ButtonTertiary                      // middle mouse button
)

// Contain reports whether all buttons in b are present in bs.
func (bs Buttons) Contain(b Buttons) bool {
	return bs&b == b
}

func (bs Buttons) String() string {
	if bs == 0 {
		return "none"
	}
	var parts []string
	if bs.Contain(ButtonPrimary) {
		parts = append(parts, "primary")
	}
	if bs.Contain(ButtonSecondary) {
		parts = append(parts, "secondary")
	}
	if bs.Contain(ButtonTertiary) {
		parts = append(parts, "tertiary")
	}
	return strings.Join(parts, "|")
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Contain reports whether all modifiers in m are present in ms.
func (ms KeyModifiers) Contain(m KeyModifiers) bool {
	return ms&m == m
}

func (ms KeyModifiers) String() string {
	if ms == 0 {
		return "none"
	}
	var parts []string
	if ms.Contain(ModShift) {
		parts = append(parts, "shift")
	}
	if ms.Contain(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if ms.Contain(ModAlt) {
		parts = append(parts, "alt")
	}
	if ms.Contain(ModMeta) {
		parts = append(parts, "meta")
	}
	return strings.Join(parts, "|")
}

// Source identifies the device class that produced a PointerSample.
type Source uint8

const (
	Mouse Source = iota // desktop pointer device
	Touch               // touch screen contact
)

func (s Source) String() string {
	switch s {
	case Mouse:
		return "mouse"
	case Touch:
		return "touch"
	default:
		panic("invalid Source")
	}
}
