package palette

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type RGB struct {
	R int
	G int
	B int
}

// Hex renders the colour as a lower-case #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

// ParseHex accepts #rrggbb, rrggbb and the #rgb shorthand.
func ParseHex(input string) (RGB, error) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(input), "#")
	if len(cleaned) == 3 {
		cleaned = string([]byte{cleaned[0], cleaned[0], cleaned[1], cleaned[1], cleaned[2], cleaned[2]})
	}
	if len(cleaned) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour %q", input)
	}

	value, err := strconv.ParseUint(cleaned, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", input, err)
	}

	return RGB{
		R: int(value>>16) & 0xff,
		G: int(value>>8) & 0xff,
		B: int(value) & 0xff,
	}, nil
}

// DistanceSq is a red-mean weighted squared distance that tracks perceived
// colour difference better than plain euclidean RGB distance.
func DistanceSq(a, b RGB) float64 {
	rMean := float64(a.R+b.R) / 2
	dr := float64(a.R - b.R)
	dg := float64(a.G - b.G)
	db := float64(a.B - b.B)

	weightR := 2 + rMean/256
	weightG := 4.0
	weightB := 2 + (255-rMean)/256

	return weightR*dr*dr + weightG*dg*dg + weightB*db*db
}

// Brightness is the YIQ luma of the colour, 0-255.
func Brightness(c RGB) float64 {
	return float64(c.R*299+c.G*587+c.B*114) / 1000
}

type Match struct {
	Record   Record
	Color    RGB
	Distance float64
}

// Nearest returns up to limit records ordered by distance to target.
// Records without a complete RGB triple are ignored; ties keep input order.
func Nearest(target RGB, records []Record, limit int) []Match {
	matches := make([]Match, 0, len(records))
	for _, record := range records {
		color, ok := record.Color()
		if !ok {
			continue
		}
		matches = append(matches, Match{Record: record, Color: color, Distance: DistanceSq(target, color)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func clampChannel(value int) int {
	if value < 0 {
		return 0
	}
	if value > 255 {
		return 255
	}
	return value
}
