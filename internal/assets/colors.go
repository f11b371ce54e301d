package assets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samdwyer/asciiquest/internal/entity"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tint.
func ParseHexColor(hex string) (entity.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return entity.Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	var channels [3]float64
	for i := range channels {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return entity.Color{}, fmt.Errorf("invalid color component in %s: %w", hex, err)
		}
		channels[i] = float64(v) / 255
	}

	return entity.RGB(channels[0], channels[1], channels[2]), nil
}
