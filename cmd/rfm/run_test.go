package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuffixPath(t *testing.T) {
	tests := []struct {
		path   string
		suffix string
		want   string
	}{
		{"enriched.csv", "_discrete", "enriched_discrete.csv"},
		{"out/enriched.csv", "_continuous", "out/enriched_continuous.csv"},
		{"enriched", "_discrete", "enriched_discrete"},
		{"data.backup.csv", "_discrete", "data.backup_discrete.csv"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, suffixPath(tt.path, tt.suffix))
	}
}
