package text

import (
	"testing"
)

func TestDecodeCodepoint(t *testing.T) {
	tests := []struct {
		name     string
		buf      []byte
		off      int
		wantRune rune
		wantSize int
	}{
		{"ascii", []byte("A"), 0, 'A', 1},
		{"second byte", []byte("AB"), 1, 'B', 1},
		{"two byte", []byte("é"), 0, 'é', 2},
		{"three byte", []byte("€"), 0, '€', 3},
		{"four byte", []byte("😀"), 0, '😀', 4},
		{"replacement char is valid", []byte("�"), 0, '�', 3},
		{"truncated two byte at end", []byte{'A', 0xC3}, 1, '?', 1},
		{"truncated three byte at end", []byte{0xE2, 0x82}, 0, '?', 1},
		{"truncated four byte at end", []byte{0xF0, 0x9F, 0x98}, 0, '?', 1},
		{"lone continuation", []byte{0x80, 'A'}, 0, '?', 1},
		{"overlong", []byte{0xC0, 0xAF}, 0, '?', 1},
		{"surrogate", []byte{0xED, 0xA0, 0x80}, 0, '?', 1},
		{"above max", []byte{0xF4, 0x90, 0x80, 0x80}, 0, '?', 1},
		{"invalid lead", []byte{0xFF}, 0, '?', 1},
		{"offset at end", []byte("AB"), 2, '?', 1},
		{"negative offset", []byte("AB"), -1, '?', 1},
		{"empty", nil, 0, '?', 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, size := DecodeCodepoint(tt.buf, tt.off)
			if r != tt.wantRune || size != tt.wantSize {
				t.Errorf("DecodeCodepoint = (%q, %d), want (%q, %d)", r, size, tt.wantRune, tt.wantSize)
			}
			r, size = DecodeCodepointString(string(tt.buf), tt.off)
			if r != tt.wantRune || size != tt.wantSize {
				t.Errorf("DecodeCodepointString = (%q, %d), want (%q, %d)", r, size, tt.wantRune, tt.wantSize)
			}
		})
	}
}

func TestDecodeCodepoint_AlwaysAdvances(t *testing.T) {
	buf := make([]byte, 256)
	for i := range buf {
		buf[i] = byte(i)
	}
	steps := 0
	for off := 0; off < len(buf); {
		_, size := DecodeCodepoint(buf, off)
		if size < 1 || off+size > len(buf) {
			t.Fatalf("offset %d: size %d out of bounds", off, size)
		}
		off += size
		steps++
	}
	if steps > len(buf) {
		t.Errorf("steps = %d, more than buffer length", steps)
	}
}

func TestCodepoints(t *testing.T) {
	s := "a\xC3é\n"

	type pair struct {
		off int
		r   rune
	}
	var got []pair
	for off, r := range Codepoints(s) {
		got = append(got, pair{off, r})
	}
	want := []pair{{0, 'a'}, {1, '?'}, {2, 'é'}, {4, '\n'}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCodepoints_EarlyBreak(t *testing.T) {
	n := 0
	for range Codepoints("hello") {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
}
