package eventstats

import (
	"math"

	"github.com/riskibarqy/match-analytics/internal/domain/match"
)

const (
	pitchHalfLength = 53.0
	pitchHalfWidth  = 34.5
	pitchLength     = 105.8
	pitchWidth      = 68.0
	pitchScale      = 100.0
)

// Normalize maps real pitch coordinates (origin at the centre spot) to the
// 0..100 render space. Second-half points are mirrored on both axes so both
// halves attack the same way.
func Normalize(x, y float64, half int) PitchPoint {
	p := PitchPoint{
		X: clip((x + pitchHalfLength) * pitchScale / pitchLength),
		Y: clip((y + pitchHalfWidth) * pitchScale / pitchWidth),
	}
	if half == match.HalfSecond {
		p.X = pitchScale - p.X
		p.Y = pitchScale - p.Y
	}
	return p
}

func clip(v float64) float64 {
	return math.Max(0, math.Min(pitchScale, v))
}
