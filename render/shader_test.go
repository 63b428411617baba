package render

import (
	"strings"
	"testing"
)

const spirvMagic = 0x07230203

func TestShaderSource(t *testing.T) {
	for _, name := range []string{"text", "line", "mesh"} {
		src, err := ShaderSource(name)
		if err != nil {
			t.Fatalf("ShaderSource(%q): %v", name, err)
		}
		if !strings.Contains(src, "struct Scene") {
			t.Errorf("%s source lacks the Scene block", name)
		}
		if !strings.Contains(src, EntryVertex) {
			t.Errorf("%s source lacks %s", name, EntryVertex)
		}
	}
	if _, err := ShaderSource("bloom"); err == nil {
		t.Error("ShaderSource(bloom) succeeded")
	}
}

func TestCompileShaders(t *testing.T) {
	s, err := CompileShaders()
	if err != nil {
		t.Fatalf("CompileShaders: %v", err)
	}
	for name, words := range map[string][]uint32{"text": s.Text, "line": s.Line, "mesh": s.Mesh} {
		if len(words) < 5 {
			t.Errorf("%s: %d words", name, len(words))
			continue
		}
		if words[0] != spirvMagic {
			t.Errorf("%s magic = %#x, want %#x", name, words[0], spirvMagic)
		}
	}

	again, err := CompileShaders()
	if err != nil || again != s {
		t.Error("CompileShaders did not return the memoized result")
	}
}
