package overlay

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/fireworks"
)

// statsInterval is how often the stats panel is redrawn, in milliseconds.
const statsInterval = 500

// stats is a small panel showing frame rate and particle counts. It redraws
// its image about twice a second.
type stats struct {
	img        *ebiten.Image
	lastUpdate int64
}

func newStats() *stats {
	// 140x64 fits four short lines of debug text.
	return &stats{img: ebiten.NewImage(140, 64), lastUpdate: -statsInterval}
}

func (s *stats) update(now int64, c fireworks.Counts) {
	if now-s.lastUpdate < statsInterval {
		return
	}
	s.lastUpdate = now

	s.img.Clear()
	s.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(s.img, statsText(ebiten.ActualFPS(), ebiten.ActualTPS(), c))
}

func (s *stats) draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(4, 4)
	screen.DrawImage(s.img, op)
}

func statsText(fps, tps float64, c fireworks.Counts) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nR/S/P: %d/%d/%d\nTotal: %d",
		fps, tps, c.Rockets, c.Stars, c.Poofs, c.Total())
}
