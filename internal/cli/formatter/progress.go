package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored by fill: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RankProgress renders the experience bar inside the current rank
// band. An unbounded band shows a full bar.
func RankProgress(experience, bandMin int, bandMax *int, width int) string {
	if bandMax == nil {
		return RenderProgress(1, width)
	}
	span := *bandMax - bandMin
	if span <= 0 {
		return RenderProgress(1, width)
	}
	return RenderProgress(float64(experience-bandMin)/float64(span), width)
}
