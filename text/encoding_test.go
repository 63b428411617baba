package text

import (
	"errors"
	"testing"
)

func TestTranscode(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		charset string
		want    string
	}{
		{"empty label", []byte("abc"), "", "abc"},
		{"utf-8", []byte("é"), "utf-8", "é"},
		{"utf8 alias", []byte("é"), "UTF8", "é"},
		{"latin1", []byte{'c', 'a', 'f', 0xE9}, "latin1", "café"},
		{"windows-1252 euro", []byte{0x80}, "windows-1252", "€"},
		{"shift_jis", []byte{0x82, 0xA0}, "shift_jis", "あ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transcode(tt.in, tt.charset)
			if err != nil {
				t.Fatalf("Transcode: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Transcode = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranscode_UnknownCharset(t *testing.T) {
	_, err := Transcode([]byte("abc"), "klingon-8")
	if !errors.Is(err, ErrUnknownCharset) {
		t.Errorf("err = %v, want ErrUnknownCharset", err)
	}
}

func TestTranscode_ThenMeasure(t *testing.T) {
	f := newTestFont(t, 0)
	utf, err := Transcode([]byte{0xE9}, "latin1")
	if err != nil {
		t.Fatalf("Transcode: %v", err)
	}
	// Raw latin1 0xE9 is malformed UTF-8 and measures as '?'.
	raw := Measure(f, string([]byte{0xE9}), DefaultOptions(16))
	dec := Measure(f, string(utf), DefaultOptions(16))
	if !approx(raw.Width, 8.0/16) || !approx(dec.Width, 10.0/16) {
		t.Errorf("raw/decoded width = %v/%v, want %v/%v", raw.Width, dec.Width, 8.0/16, 10.0/16)
	}
}
