package report

import "fmt"

// Variation and sign tables, drawn with box characters that line up in a
// monospace font.

const (
	arrowDown = "↘"
	arrowUp   = "↗"
)

func variationTable(a float64) string {
	left, right := arrowDown, arrowUp
	if a < 0 {
		left, right = arrowUp, arrowDown
	}
	return fmt.Sprintf(` __________________________
|        |                 |
|   x    |  -∞    α    +∞  |
|________|_________________|
|        |                 |
|  f(x)  |     %s  β  %s     |
|________|_________________|`, left, right)
}

// signs returns the sign of f outside and between the roots.
func signs(a float64) (exterior, interior string) {
	if a < 0 {
		return "-", "+"
	}
	return "+", "-"
}

func signTable(a float64, roots int) string {
	ext, in := signs(a)
	switch roots {
	case 0:
		return fmt.Sprintf(` ______________________
|        |             |
|   x    |  -∞     +∞  |
|________|_____________|
|        |             |
|  f(x)  |      %s      |
|________|_____________|`, ext)
	case 1:
		return fmt.Sprintf(` ____________________________
|        |                   |
|   x    |  -∞     x1    +∞  |
|________|___________________|
|        |         |         |
|  f(x)  |     %s   0   %s     |
|________|_________|_________|`, ext, ext)
	default:
		return fmt.Sprintf(` ____________________________________
|        |                           |
|   x    |  -∞     x1      x2    +∞  |
|________|___________________________|
|        |         |       |         |
|  f(x)  |     %s   0   %s   0   %s     |
|________|_________|_______|_________|`, ext, in, ext)
	}
}
