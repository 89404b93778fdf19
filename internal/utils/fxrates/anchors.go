package fxrates

import (
	"fmt"
	"io"
	"sort"

	"github.com/SscSPs/price_dashboard/internal/apperrors"
	"gopkg.in/yaml.v3"
)

// Anchors are known USD/TRY observations keyed by YYYY-MM.
type Anchors map[string]float64

// DefaultAnchors returns the calibration points used when no anchor file is configured.
func DefaultAnchors() Anchors {
	return Anchors{
		"2015-01": 2.33, "2016-01": 2.96, "2017-01": 3.77, "2018-01": 3.79,
		"2018-08": 6.55, "2019-01": 5.34, "2020-01": 5.95, "2020-11": 8.52,
		"2021-01": 7.37, "2021-12": 13.53, "2022-01": 13.43, "2022-12": 18.63,
		"2023-06": 23.60, "2024-01": 30.20, "2025-01": 36.50, "2025-09": 45.00,
	}
}

// SortedKeys returns the anchor months in ascending order.
func (a Anchors) SortedKeys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks every key is a YYYY-MM month and every rate is positive.
func (a Anchors) Validate() error {
	if len(a) == 0 {
		return fmt.Errorf("%w: at least one anchor is required", apperrors.ErrValidation)
	}
	for _, k := range a.SortedKeys() {
		if _, err := ParseMonth(k); err != nil {
			return err
		}
		if !(a[k] > 0) {
			return fmt.Errorf("%w: anchor %s must have a positive rate, got %v", apperrors.ErrValidation, k, a[k])
		}
	}
	return nil
}

// anchorFile is the YAML layout accepted by LoadAnchorsYAML:
//
//	anchors:
//	  "2015-01": 2.33
//	  "2016-01": 2.96
type anchorFile struct {
	Anchors map[string]float64 `yaml:"anchors"`
}

// LoadAnchorsYAML reads an anchor table from YAML and validates it.
func LoadAnchorsYAML(r io.Reader) (Anchors, error) {
	var f anchorFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: invalid anchor file: %v", apperrors.ErrValidation, err)
	}
	anchors := Anchors(f.Anchors)
	if err := anchors.Validate(); err != nil {
		return nil, err
	}
	return anchors, nil
}
