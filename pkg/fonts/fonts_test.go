package fonts

import (
	"strings"
	"testing"
)

func TestFace(t *testing.T) {
	for _, b := range []bool{false, true} {
		face, err := Face(22, b)
		if err != nil {
			t.Fatalf("Face(22, %v) error: %v", b, err)
		}
		if face.Metrics().Height <= 0 {
			t.Errorf("Face(22, %v) has no height", b)
		}
		face.Close()
	}
}

func TestWidth(t *testing.T) {
	short := Width("Ana", 22, true)
	long := Width("Ana Beatriz", 22, true)
	if short <= 0 {
		t.Fatalf("Width should be positive, got %f", short)
	}
	if long <= short {
		t.Errorf("longer text should be wider: %f <= %f", long, short)
	}
	if big := Width("Ana", 30, true); big <= short {
		t.Errorf("larger size should be wider: %f <= %f", big, short)
	}
	if Width("", 22, false) != 0 {
		t.Error("empty string should have zero width")
	}
}

func TestFontFaceCSS(t *testing.T) {
	css := FontFaceCSS()
	if strings.Count(css, "@font-face") != 2 {
		t.Errorf("expected two @font-face rules")
	}
	if !strings.Contains(css, "font-family: 'Go'") {
		t.Error("missing family name")
	}
	if RegularBase64() == BoldBase64() {
		t.Error("regular and bold data should differ")
	}
}
