package sampler

import (
	"testing"

	"github.com/conorfennell/wordrill/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"3", 3, false},
		{" 12 ", 12, false},
		{"0", 0, false},
		{"", 0, false},
		{"abc", 0, true},
		{"2.5", 0, true},
		{"-1", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCount(tt.in)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidNumericInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseQuota(t *testing.T) {
	q, err := ParseQuota("animals=2")
	assert.NoError(t, err)
	assert.Equal(t, Quota{Category: "animals", Count: 2}, q)

	q, err = ParseQuota("a=b=3")
	assert.NoError(t, err)
	assert.Equal(t, Quota{Category: "a=b", Count: 3}, q)

	q, err = ParseQuota("verbs=x")
	assert.ErrorIs(t, err, domain.ErrInvalidNumericInput)
	assert.Equal(t, Quota{Category: "verbs", Count: 0}, q)

	_, err = ParseQuota("verbs")
	assert.Error(t, err)

	_, err = ParseQuota("=3")
	assert.Error(t, err)
}
