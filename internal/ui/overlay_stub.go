//go:build !ebiten

package ui

import "planetforge/internal/world"

// Overlay is a no-op placeholder for headless builds.
type Overlay struct{}

// NewOverlay returns nil in the headless build.
func NewOverlay() *Overlay { return nil }

// SetWorld is a no-op in the headless build.
func (o *Overlay) SetWorld(*world.World) {}

// Update is a no-op in the headless build.
func (o *Overlay) Update() {}

// Draw is a no-op in the headless build.
func (o *Overlay) Draw(any, float64) {}
