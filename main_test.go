package main

import (
	"path/filepath"
	"testing"

	"github.com/ecopia-map/volume_index/internal/dedup"
	"github.com/stretchr/testify/assert"
)

func TestValidateOptions(t *testing.T) {
	input := t.TempDir()

	valid := func() *dedup.Options {
		return &dedup.Options{
			Input:     input,
			Output:    filepath.Join(input, "out.xyz"),
			MaxLevel:  8,
			Precision: 6,
		}
	}

	tests := []struct {
		name   string
		modify func(opts *dedup.Options)
		errMsg string
	}{
		{"Valid", func(opts *dedup.Options) {}, ""},
		{"MaxLevelAtLimit", func(opts *dedup.Options) { opts.MaxLevel = maxLevelLimit }, ""},
		{"MissingInput", func(opts *dedup.Options) { opts.Input = filepath.Join(input, "missing") }, "not found"},
		{"EmptyOutput", func(opts *dedup.Options) { opts.Output = "" }, "output must be specified"},
		{"NegativeMaxLevel", func(opts *dedup.Options) { opts.MaxLevel = -1 }, "max-level cannot be negative"},
		{"MaxLevelTooDeep", func(opts *dedup.Options) { opts.MaxLevel = maxLevelLimit + 1 }, "max-level cannot exceed 32"},
		{"NegativePrecision", func(opts *dedup.Options) { opts.Precision = -2 }, "precision cannot be negative"},
		{"NegativeMergeDistance", func(opts *dedup.Options) {
			opts.DedupOptions = &dedup.DedupOptions{MergeDistance: -0.5}
		}, "merge-distance cannot be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid()
			tt.modify(opts)

			err := validateOptions(opts)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}
