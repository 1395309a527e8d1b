//go:build !ebiten

package app

import "life-ca/pkg/core"

// Game is a no-op placeholder used when the ebiten build tag is absent.
type Game struct{}

// New returns a stub game for headless builds.
func New(core.Sim, int, int64) *Game { return &Game{} }

// Reset is a no-op in headless builds.
func (g *Game) Reset(int64) {}
