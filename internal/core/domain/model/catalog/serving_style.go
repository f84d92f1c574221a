package catalog

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ServingStyle is the presentation tier of a dinner. Each style applies a
// fixed price multiplier; some dinners restrict which styles are available.
type ServingStyle int

const (
	// UnknownStyle represents an invalid or undefined serving style.
	UnknownStyle ServingStyle = iota

	// Simple is the base presentation with no surcharge.
	Simple

	// Grand applies a 1.3x multiplier to the dinner base price.
	Grand

	// Deluxe applies a 1.6x multiplier to the dinner base price.
	Deluxe
)

func getStyleStrings() map[ServingStyle]string {
	return map[ServingStyle]string{
		UnknownStyle: "unknown",
		Simple:       "simple",
		Grand:        "grand",
		Deluxe:       "deluxe",
	}
}

func getStyleMultipliers() map[ServingStyle]float64 {
	return map[ServingStyle]float64{
		Simple: 1.0,
		Grand:  1.3,
		Deluxe: 1.6,
	}
}

// ParseServingStyle converts a wire-level style name to a ServingStyle.
func ParseServingStyle(s string) (ServingStyle, error) {
	for style, name := range getStyleStrings() {
		if name == s && style != UnknownStyle {
			return style, nil
		}
	}
	return UnknownStyle, errs.NewValueIsInvalidErrorWithCause(
		"serving style",
		fmt.Errorf("%q is not a valid serving style", s),
	)
}

// AllServingStyles lists the valid styles in presentation order.
func AllServingStyles() []ServingStyle {
	return []ServingStyle{Simple, Grand, Deluxe}
}

// Multiplier returns the price multiplier for the style.
// Unknown styles carry no multiplier and return 0.
func (s ServingStyle) Multiplier() float64 {
	return getStyleMultipliers()[s]
}

// String returns the wire-level name of the style.
func (s ServingStyle) String() string {
	if str, ok := getStyleStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects UnknownStyle and out-of-range values.
func (s ServingStyle) Validate() error {
	if _, ok := getStyleMultipliers()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"serving style",
			fmt.Errorf("%d is not a valid serving style", s),
		)
	}
	return nil
}
