package config

import "fmt"

// Recognized bounds of the live "total feature count" parameter.
const (
	FeatureCountMin     = 500
	FeatureCountMax     = 10000
	FeatureCountStep    = 500
	FeatureCountDefault = 500
)

// ValidateFeatureCount checks a requested total feature count against
// the recognized range and step.
func ValidateFeatureCount(total int) error {
	if total < FeatureCountMin || total > FeatureCountMax {
		return fmt.Errorf("feature count %d outside recognized range [%d, %d]",
			total, FeatureCountMin, FeatureCountMax)
	}
	if total%FeatureCountStep != 0 {
		return fmt.Errorf("feature count %d is not a multiple of %d", total, FeatureCountStep)
	}
	return nil
}
