package radial

import "testing"

func TestButtonsContain(t *testing.T) {
	bs := ButtonPrimary | ButtonTertiary

	if !bs.Contain(ButtonPrimary) {
		t.Error("should contain primary")
	}
	if !bs.Contain(ButtonPrimary | ButtonTertiary) {
		t.Error("should contain primary|tertiary")
	}
	if bs.Contain(ButtonSecondary) {
		t.Error("should not contain secondary")
	}
	if bs.Contain(ButtonPrimary | ButtonSecondary) {
		t.Error("should not contain primary|secondary")
	}
	if !bs.Contain(0) {
		t.Error("every mask contains the empty set")
	}
}

func TestButtonsString(t *testing.T) {
	cases := []struct {
		bs   Buttons
		want string
	}{
		{0, "none"},
		{ButtonPrimary, "primary"},
		{ButtonSecondary, "secondary"},
		{ButtonPrimary | ButtonTertiary, "primary|tertiary"},
		{ButtonPrimary | ButtonSecondary | ButtonTertiary, "primary|secondary|tertiary"},
	}
	for _, tc := range cases {
		if got := tc.bs.String(); got != tc.want {
			t.Errorf("Buttons(%d).String() = %q, want %q", tc.bs, got, tc.want)
		}
	}
}

func TestKeyModifiersContain(t *testing.T) {
	ms := ModShift | ModMeta

	if !ms.Contain(ModShift) {
		t.Error("should contain shift")
	}
	if !ms.Contain(ModShift | ModMeta) {
		t.Error("should contain shift|meta")
	}
	if ms.Contain(ModCtrl) {
		t.Error("should not contain ctrl")
	}
	if ms.Contain(ModShift | ModAlt) {
		t.Error("should not contain shift|alt")
	}
}

func TestKeyModifiersString(t *testing.T) {
	cases := []struct {
		ms   KeyModifiers
		want string
	}{
		{0, "none"},
		{ModShift, "shift"},
		{ModCtrl | ModAlt, "ctrl|alt"},
		{ModShift | ModCtrl | ModAlt | ModMeta, "shift|ctrl|alt|meta"},
	}
	for _, tc := range cases {
		if got := tc.ms.String(); got != tc.want {
			t.Errorf("KeyModifiers(%d).String() = %q, want %q", tc.ms, got, tc.want)
		}
	}
}

func TestSourceString(t *testing.T) {
	if got := Mouse.String(); got != "mouse" {
		t.Errorf("Mouse.String() = %q, want %q", got, "mouse")
	}
	if got := Touch.String(); got != "touch" {
		t.Errorf("Touch.String() = %q, want %q", got, "touch")
	}
}
