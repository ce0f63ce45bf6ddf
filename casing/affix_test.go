package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddSuffix(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		suffix    string
		separator string
		want      string
	}{
		{name: "camelizes both sides", text: "name", suffix: "Suffix", separator: "_", want: "name_suffix"},
		{name: "strips stray delimiters", text: "name_", suffix: "_suffix", separator: "_", want: "name_suffix"},
		{name: "numeric suffix", text: "name", suffix: "123", separator: "_", want: "name_123"},
		{name: "empty suffix keeps separator", text: "name", suffix: "", separator: "_", want: "name_"},
		{name: "multi word sides", text: "left_arm", suffix: "ctrl_main", separator: "_", want: "leftArm_ctrlMain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddSuffix(tt.text, tt.suffix, tt.separator)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddPrefix(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		prefix    string
		separator string
		want      string
	}{
		{name: "camelizes both sides", text: "name", prefix: "Prefix", separator: "_", want: "prefix_name"},
		{name: "strips stray delimiters", text: "name_", prefix: "_prefix", separator: "_", want: "prefix_name"},
		{name: "numeric prefix", text: "name", prefix: "123", separator: "_", want: "123_name"},
		{name: "empty prefix keeps separator", text: "name", prefix: "", separator: "_", want: "_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddPrefix(tt.text, tt.prefix, tt.separator)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppendText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		extra string
		want  string
	}{
		{name: "pascalizes the addition", text: "name", extra: "suffix", want: "nameSuffix"},
		{name: "multi word addition", text: "name", extra: "suffix_prefix", want: "nameSuffixPrefix"},
		{name: "numeric addition", text: "name", extra: "123", want: "name123"},
		{name: "empty addition", text: "name", extra: "", want: "name"},
		{name: "base text untouched", text: "name_", extra: "_suffix", want: "name_Suffix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendText(tt.text, tt.extra)
			assert.Equal(t, tt.want, got)
		})
	}
}
