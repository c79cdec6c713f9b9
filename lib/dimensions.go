package lib

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	cmValueRe  = regexp.MustCompile(`(\d+\.?\d*) cm`)
	numValueRe = regexp.MustCompile(`\d+\.?\d*`)
)

// FormatDimensions rounds every metric value in a dimensions string to whole
// centimeters ("226.06 cm x 96.52 cm" becomes "226 cm x 97 cm"). Imperial
// strings (feet/inches notation) are returned unchanged.
func FormatDimensions(dimensions string) string {
	if strings.Contains(dimensions, "cm") {
		return cmValueRe.ReplaceAllStringFunc(dimensions, func(match string) string {
			value, err := strconv.ParseFloat(strings.TrimSuffix(match, " cm"), 64)
			if err != nil {
				return match
			}
			return fmt.Sprintf("%d cm", int(math.Round(value)))
		})
	}

	if strings.ContainsAny(dimensions, `'"`) {
		return dimensions
	}

	return numValueRe.ReplaceAllStringFunc(dimensions, func(match string) string {
		value, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return match
		}
		return strconv.Itoa(int(math.Round(value)))
	})
}

// ConvertToInches annotates every metric value with its imperial equivalent,
// e.g. `226.06 cm` becomes `89" (226.06 cm)`.
func ConvertToInches(dimensions string) string {
	return cmValueRe.ReplaceAllStringFunc(dimensions, func(match string) string {
		value, err := strconv.ParseFloat(strings.TrimSuffix(match, " cm"), 64)
		if err != nil {
			return match
		}
		inches := int(math.Round(value / 2.54))
		return fmt.Sprintf("%d\" (%s)", inches, match)
	})
}
