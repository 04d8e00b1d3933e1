package render

// Palette
var (
	RgbBackground = RGB{26, 27, 38} // Tokyo Night background
	RgbText       = RGB{233, 238, 252}
	RgbTextDim    = RGB{150, 155, 175}

	RgbWire     = RGB{240, 240, 255}
	RgbStartPad = RGB{60, 255, 154}
	RgbEndPad   = RGB{255, 107, 107}

	RgbRing    = RGB{167, 215, 255}
	RgbDanger  = RGB{255, 80, 80}
	RgbNearest = RGB{255, 255, 255}

	RgbHUDBg      = RGB{16, 17, 26}
	RgbStrikeOn   = RGB{255, 80, 80}
	RgbStrikeOff  = RGB{70, 72, 90}
	RgbRecatchBg  = RGB{255, 165, 0}
	RgbSabotageBg = RGB{128, 0, 128}
	RgbStatusText = RGB{0, 0, 0}
)

// Wire layer intensities over the background
const (
	wireCoreAlpha = 0.65
	wireGlowAlpha = 0.22
)

// ProgressColor returns the progress bar color for ratio in [0,1]
// Red to yellow to green; 0 or below is unfilled black
func ProgressColor(ratio float64) RGB {
	if ratio <= 0 {
		return RGB{}
	}
	if ratio > 1 {
		ratio = 1
	}

	red := RGB{200, 40, 40}
	yellow := RGB{240, 220, 40}
	green := RGB{60, 255, 154}
	if ratio < 0.5 {
		return red.Blend(yellow, ratio/0.5)
	}
	return yellow.Blend(green, (ratio-0.5)/0.5)
}

// DangerColor shifts the ring color toward red as distance approaches the tolerance
func DangerColor(distance, allowed float64) RGB {
	if allowed <= 0 {
		return RgbDanger
	}
	ratio := distance / allowed
	// Safe zone
	if ratio <= 0.5 {
		return RgbRing
	}
	return RgbRing.Blend(RgbDanger, (ratio-0.5)/0.5)
}
