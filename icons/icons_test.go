package icons

import (
	"context"
	"errors"
	"image"
	"testing"
)

type stubProvider struct {
	name  string
	names []string
	err   error
}

func (p stubProvider) Name() string { return p.name }

func (p stubProvider) List(ctx context.Context) ([]string, error) { return p.names, p.err }

func (p stubProvider) Load(name string, size int) (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, size, size)), nil
}

func TestRegistryLookupFallsBack(t *testing.T) {
	r := NewRegistry()

	p := r.Lookup("missing")
	if p == nil {
		t.Fatal("lookup must never return nil")
	}
	if p.Name() != "builtin" {
		t.Errorf("fallback name = %q, want %q", p.Name(), "builtin")
	}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	r.Register("flat", stubProvider{name: "flat"})

	if got := r.Lookup("flat").Name(); got != "flat" {
		t.Errorf("lookup = %q, want %q", got, "flat")
	}

	// Re-registering replaces the provider.
	r.Register("flat", stubProvider{name: "flat-v2"})
	if got := r.Lookup("flat").Name(); got != "flat-v2" {
		t.Errorf("after replace: lookup = %q, want %q", got, "flat-v2")
	}
}

func TestRegistrySetFallback(t *testing.T) {
	r := NewRegistry()
	r.SetFallback(stubProvider{name: "custom"})

	if got := r.Lookup("nope").Name(); got != "custom" {
		t.Errorf("lookup = %q, want %q", got, "custom")
	}
}

func TestRegistryThemesSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("zebra", stubProvider{name: "zebra"})
	r.Register("acorn", stubProvider{name: "acorn"})
	r.Register("mango", stubProvider{name: "mango"})

	got := r.Themes()
	want := []string{"acorn", "mango", "zebra"}
	if len(got) != len(want) {
		t.Fatalf("themes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("themes = %v, want %v", got, want)
		}
	}
}

func TestRegistryListAsync(t *testing.T) {
	r := NewRegistry()
	r.Register("flat", stubProvider{name: "flat", names: []string{"a", "b"}})

	done := make(chan struct{})
	var names []string
	var err error
	r.ListAsync(context.Background(), "flat", func(n []string, e error) {
		names, err = n, e
		close(done)
	})
	<-done

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("names = %v, want [a b]", names)
	}
}

func TestRegistryListAsyncError(t *testing.T) {
	r := NewRegistry()
	wantErr := errors.New("walk failed")
	r.Register("broken", stubProvider{name: "broken", err: wantErr})

	done := make(chan struct{})
	var err error
	r.ListAsync(context.Background(), "broken", func(_ []string, e error) {
		err = e
		close(done)
	})
	<-done

	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}

func TestFallbackDisc(t *testing.T) {
	p := Fallback()

	names, err := p.List(context.Background())
	if err != nil || len(names) != 1 {
		t.Fatalf("List = %v, %v", names, err)
	}

	img, err := p.Load("anything", 32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("bounds = %v, want 32x32", b)
	}

	// Center filled, corner clear.
	if _, _, _, a := img.At(16, 16).RGBA(); a == 0 {
		t.Error("disc center should be opaque")
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Error("disc corner should be transparent")
	}
}

func TestFallbackInvalidSize(t *testing.T) {
	if _, err := Fallback().Load("dot", 0); err == nil {
		t.Error("expected error for size 0")
	}
}
