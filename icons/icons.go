// Package icons provides the icon theme registry used by radial menu
// renderers. Themes are pluggable: anything implementing Provider can be
// registered under a key, and lookups for unknown keys fall back to a
// built-in provider so a renderer always has something to draw.
package icons

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log"
	"sort"
	"sync"
)

// Provider supplies the glyphs of one icon theme.
type Provider interface {
	// Name returns a human-readable theme name.
	Name() string

	// List returns the sorted names of all glyphs the theme offers.
	// Enumeration may walk directories, so it honors ctx cancellation.
	List(ctx context.Context) ([]string, error)

	// Load renders the named glyph as a size x size pixel image.
	Load(name string, size int) (image.Image, error)
}

// Registry maps theme keys to providers. Create one with NewRegistry.
// Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	themes   map[string]Provider
	fallback Provider
	debug    bool
}

// NewRegistry returns a Registry whose fallback is the built-in disc
// provider.
func NewRegistry() *Registry {
	return &Registry{
		themes:   make(map[string]Provider),
		fallback: Fallback(),
	}
}

// SetDebug enables a warning log whenever a lookup falls back.
func (r *Registry) SetDebug(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.debug = enabled
}

// SetFallback replaces the provider returned for unknown theme keys.
func (r *Registry) SetFallback(p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = p
}

// Register adds or replaces the provider for a theme key.
func (r *Registry) Register(key string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.themes[key] = p
}

// Lookup returns the provider registered under key, or the fallback provider
// when the key is unknown. It never returns nil.
func (r *Registry) Lookup(key string) Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.themes[key]; ok {
		return p
	}
	if r.debug {
		log.Printf("radial/icons: theme %q not registered, using fallback", key)
	}
	return r.fallback
}

// Themes returns the sorted keys of all registered themes.
func (r *Registry) Themes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.themes))
	for k := range r.themes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ListAsync enumerates the glyphs of the theme under key on a new goroutine
// and delivers the result to fn exactly once. fn runs on that goroutine, so
// menus can fill icon pickers without blocking their input loop; fn must
// hand the result back to the loop itself.
func (r *Registry) ListAsync(ctx context.Context, key string, fn func([]string, error)) {
	p := r.Lookup(key)
	go func() {
		names, err := p.List(ctx)
		fn(names, err)
	}()
}

// Fallback returns the built-in provider used when no theme matches. It
// renders a plain filled disc for any glyph name.
func Fallback() Provider {
	return discProvider{}
}

type discProvider struct{}

func (discProvider) Name() string {
	return "builtin"
}

func (discProvider) List(ctx context.Context) ([]string, error) {
	return []string{"dot"}, nil
}

// Load renders a filled light-gray disc regardless of the glyph name.
func (discProvider) Load(name string, size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("radial/icons: invalid glyph size %d", size)
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := float64(size-1) / 2
	radius := float64(size) * 0.4
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			if dx*dx+dy*dy <= radius*radius {
				img.SetRGBA(x, y, color.RGBA{R: 230, G: 230, B: 230, A: 255})
			}
		}
	}
	return img, nil
}
