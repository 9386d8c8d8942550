package config

import "testing"

func TestValidateFeatureCount(t *testing.T) {
	tests := []struct {
		total   int
		wantErr bool
	}{
		{500, false},
		{1000, false},
		{10000, false},
		{0, true},
		{-500, true},
		{499, true},
		{450, true},
		{750, true},
		{10500, true},
		{9999, true},
	}

	for _, tt := range tests {
		err := ValidateFeatureCount(tt.total)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFeatureCount(%d): got err=%v, wantErr=%v", tt.total, err, tt.wantErr)
		}
	}
}
