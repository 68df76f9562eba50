package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/housebuilder/pkg/types"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		min     int
		max     int
		want    int
		wantErr bool
	}{
		{name: "in range", raw: "7", min: 1, max: 10, want: 7},
		{name: "lower bound inclusive", raw: "1", min: 1, max: 10, want: 1},
		{name: "upper bound inclusive", raw: "10", min: 1, max: 10, want: 10},
		{name: "surrounding whitespace", raw: " 7 ", min: 1, max: 10, want: 7},
		{name: "explicit plus sign", raw: "+3", min: 1, max: 10, want: 3},
		{name: "zero allowed when min is zero", raw: "0", min: 0, max: 5, want: 0},
		{name: "below range", raw: "0", min: 1, max: 10, wantErr: true},
		{name: "above range", raw: "11", min: 1, max: 10, wantErr: true},
		{name: "negative", raw: "-3", min: 1, max: 10, wantErr: true},
		{name: "not a number", raw: "abc", min: 1, max: 10, wantErr: true},
		{name: "numeric prefix", raw: "4abc", min: 1, max: 10, wantErr: true},
		{name: "decimal", raw: "4.5", min: 1, max: 10, wantErr: true},
		{name: "empty", raw: "", min: 1, max: 10, wantErr: true},
		{name: "inner space", raw: "1 0", min: 1, max: 10, wantErr: true},
		{name: "overflow", raw: "99999999999999999999999", min: 1, max: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Number(tt.raw, tt.min, tt.max)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, types.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumber_MessageNamesRange(t *testing.T) {
	_, err := Number("abc", 1, 10)

	var ve *types.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Please enter a number between 1 and 10", ve.Message)
	assert.Equal(t, "abc", ve.Input)
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		raw     string
		want    bool
		wantErr bool
	}{
		{raw: "y", want: true},
		{raw: "Y", want: true},
		{raw: "yes", want: true},
		{raw: " YES ", want: true},
		{raw: "n", want: false},
		{raw: "N", want: false},
		{raw: "no", want: false},
		{raw: "No\t", want: false},
		{raw: "maybe", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "yep", wantErr: true},
		{raw: "1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := YesNo(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, types.ErrValidation)
				assert.Equal(t, "Please enter y/yes or n/no", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInRange(t *testing.T) {
	r := types.Range{Min: 1, Max: 5}

	got, err := InRange("5", r)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	_, err = InRange("6", r)
	require.ErrorIs(t, err, types.ErrValidation)
	assert.EqualError(t, err, "Please enter a number between 1 and 5")
}
