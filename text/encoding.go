package text

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// Transcode converts b from the named legacy charset to UTF-8 so it can be
// passed to Layout or Measure. Any WHATWG encoding label is accepted
// ("latin1", "windows-1252", "shift_jis", ...). An empty label or "utf-8"
// returns b unchanged.
//
// Bytes that cannot be decoded are replaced with U+FFFD by the decoder.
func Transcode(b []byte, charset string) ([]byte, error) {
	label := strings.TrimSpace(charset)
	if label == "" {
		return b, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrUnknownCharset, charset, err)
	}
	if name, _ := htmlindex.Name(enc); name == "utf-8" {
		return b, nil
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return nil, fmt.Errorf("text: transcode from %s: %w", label, err)
	}
	return out, nil
}
