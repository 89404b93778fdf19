package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/price_dashboard/internal/apperrors"
)

// Scale is the value axis transform requested by the chart.
type Scale string

const (
	ScaleLinear     Scale = "linear"
	ScaleLog        Scale = "log"
	ScalePercentage Scale = "percentage"
)

// SupportedScales lists the scales in the order the dashboard offers them.
var SupportedScales = []Scale{ScaleLinear, ScaleLog, ScalePercentage}

// scaleAliases maps the labels used by the dashboard controls to scales.
var scaleAliases = map[string]Scale{
	"linear":     ScaleLinear,
	"lineer":     ScaleLinear,
	"log":        ScaleLog,
	"logaritmik": ScaleLog,
	"percentage": ScalePercentage,
	"percent":    ScalePercentage,
	"%":          ScalePercentage,
}

// ParseScale resolves a scale name or dashboard label. An empty string yields ScaleLinear.
func ParseScale(s string) (Scale, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return ScaleLinear, nil
	}
	scale, ok := scaleAliases[key]
	if !ok {
		return "", fmt.Errorf("%w: unsupported scale '%s'", apperrors.ErrValidation, s)
	}
	return scale, nil
}
