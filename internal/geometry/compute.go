// Package geometry maps a chosen preset ratio onto concrete window bounds.
// All functions are pure; nothing here touches the automation layer.
package geometry

import (
	"github.com/ryanthedev/cycle-cli/internal/catalog"
	"github.com/ryanthedev/cycle-cli/internal/types"
)

// Compute returns the window bounds for one alignment/ratio step on a
// monitor.
//
// Horizontal alignments (left/right/center) take the full monitor height
// and cycle the width. Vertical alignments (top/bottom) preserve the
// window's current x and width so they compose with a prior horizontal
// placement, cycling only height and y. Values are exact fractions; no
// rounding happens here.
func Compute(m catalog.Monitor, a types.Alignment, ratio float64, current types.Rect) types.Rect {
	switch a {
	case types.AlignLeft:
		return types.Rect{
			X:      m.OriginX,
			Y:      m.OriginY,
			Width:  m.Width * ratio,
			Height: m.Height,
		}
	case types.AlignRight:
		return types.Rect{
			X:      m.OriginX + m.Width*(1-ratio),
			Y:      m.OriginY,
			Width:  m.Width * ratio,
			Height: m.Height,
		}
	case types.AlignCenter:
		return types.Rect{
			X:      m.OriginX + m.Width*(1-ratio)/2,
			Y:      m.OriginY,
			Width:  m.Width * ratio,
			Height: m.Height,
		}
	case types.AlignTop:
		return types.Rect{
			X:      current.X,
			Y:      m.OriginY,
			Width:  current.Width,
			Height: m.Height * ratio,
		}
	case types.AlignBottom:
		return types.Rect{
			X:      current.X,
			Y:      m.OriginY + m.Height*(1-ratio),
			Width:  current.Width,
			Height: m.Height * ratio,
		}
	default:
		return current
	}
}

// Nudge shifts and resizes the current bounds by signed deltas
func Nudge(current types.Rect, dx, dy, dw, dh float64) types.Rect {
	return types.Rect{
		X:      current.X + dx,
		Y:      current.Y + dy,
		Width:  current.Width + dw,
		Height: current.Height + dh,
	}
}
