package utils

import (
	"reflect"
	"testing"
)

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name string
		in   string
		sep  string
		want []string
	}{
		{"simple", "a,b,c", ",", []string{"a", "b", "c"}},
		{"with spaces", " alice , bob ", ",", []string{"alice", "bob"}},
		{"empty parts dropped", "a,,b,", ",", []string{"a", "b"}},
		{"empty input", "", ",", []string{}},
		{"only separators", ",,,", ",", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitAndTrim(tt.in, tt.sep)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitAndTrim(%q, %q) = %v, want %v", tt.in, tt.sep, got, tt.want)
			}
		})
	}
}
