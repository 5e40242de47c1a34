package game

// Easing is the shape an arc follows between its two end points.
type Easing uint8

const (
	Linear         Easing = iota // s
	CubicBezier                  // b
	EaseInQuarter                // si
	EaseOutQuarter               // so
	EaseInThenOut                // siso
	EaseOutThenIn                // sosi
	EaseSiSi                     // sisi
	EaseSoSo                     // soso
)

var easingTokens = [...]string{"s", "b", "si", "so", "siso", "sosi", "sisi", "soso"}

func (e Easing) Valid() bool {
	return int(e) < len(easingTokens)
}

// String returns the chart token of the easing.
func (e Easing) String() string {
	if !e.Valid() {
		return "invalid"
	}
	return easingTokens[e]
}

// EasingFromToken maps an already trimmed, lower case chart token.
func EasingFromToken(token string) (Easing, bool) {
	for i, t := range easingTokens {
		if t == token {
			return Easing(i), true
		}
	}
	return 0, false
}
