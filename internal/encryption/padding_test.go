package encryption

import (
	"bytes"
	"testing"
)

func TestTrimFinalBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		data  []byte
		width int
		want  []byte
	}{
		{name: "empty", data: nil, width: 8, want: nil},
		{name: "no zeros", data: []byte("abcdefgh"), width: 8, want: []byte("abcdefgh")},
		{name: "padding", data: []byte("abc\x00\x00\x00\x00\x00"), width: 8, want: []byte("abc")},
		{name: "all zero block", data: []byte("abcdefgh\x00\x00\x00\x00\x00\x00\x00\x00"), width: 8, want: []byte("abcdefgh")},
		{name: "earlier block untouched", data: []byte("ab\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00"), width: 8, want: []byte("ab\x00\x00\x00\x00\x00\x00")},
		{name: "shorter than width", data: []byte("a\x00"), width: 8, want: []byte("a\x00")},
	}

	for _, tc := range tests {
		if got := trimFinalBlock(tc.data, tc.width); !bytes.Equal(got, tc.want) {
			t.Errorf("%s: trimFinalBlock() = %q, want %q", tc.name, got, tc.want)
		}
	}
}
