package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    map[string]bool
		wantErr string
	}{
		{name: "empty", in: "", want: map[string]bool{}},
		{name: "numbers and words", in: "p1=1, p2 = false,p3=T", want: map[string]bool{"p1": true, "p2": false, "p3": true}},
		{name: "missing value", in: "p1", wantErr: "expected name=value"},
		{name: "bad value", in: "p1=maybe", wantErr: "invalid value for p1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEnv(tt.in)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
