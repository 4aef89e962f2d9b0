package media

import "testing"

func testClassifier() Classifier {
	return Classifier{
		ManagedPrefix: "https://storage.googleapis.com/portfolio-images/",
		LocalPrefix:   "/images/",
	}
}

func TestClassify(t *testing.T) {
	c := testClassifier()

	cases := []struct {
		name string
		ref  string
		want Kind
	}{
		{"empty", "", KindEmpty},
		{"whitespace only", "   ", KindEmpty},
		{"bundled asset", "/images/profile.jpg", KindLocal},
		{"managed blob", "https://storage.googleapis.com/portfolio-images/abc-hero.jpg", KindManaged},
		{"external https", "https://example.com/photo.png", KindExternal},
		{"external http", "http://example.com/photo.png", KindExternal},
		{"other bucket is not managed", "https://storage.googleapis.com/other-bucket/x.jpg", KindExternal},
		{"unknown shape falls back to external", "some-relative-path.jpg", KindExternal},
	}

	for _, tc := range cases {
		got := c.Classify(tc.ref)
		if got.Kind != tc.want {
			t.Fatalf("%s: Classify(%q).Kind = %q, want %q", tc.name, tc.ref, got.Kind, tc.want)
		}
	}
}

func TestEditable(t *testing.T) {
	c := testClassifier()

	if c.Classify("/images/bundled.png").Editable() {
		t.Fatalf("local reference must not be editable")
	}
	if !c.Classify("").Editable() {
		t.Fatalf("empty reference should be editable")
	}
	if !c.Classify("https://example.com/a.jpg").Editable() {
		t.Fatalf("external reference should be editable")
	}
	if !c.Classify("https://storage.googleapis.com/portfolio-images/a.jpg").Editable() {
		t.Fatalf("managed reference should be editable")
	}
}

func TestObjectKey(t *testing.T) {
	c := testClassifier()

	ref := c.Classify("https://storage.googleapis.com/portfolio-images/abc-hero.jpg")
	if key := c.ObjectKey(ref); key != "abc-hero.jpg" {
		t.Fatalf("ObjectKey = %q, want %q", key, "abc-hero.jpg")
	}

	ext := c.Classify("https://example.com/photo.jpg")
	if key := c.ObjectKey(ext); key != "" {
		t.Fatalf("ObjectKey for external ref = %q, want empty", key)
	}
}

func TestParseOwnerKind(t *testing.T) {
	for _, s := range []string{"hero", "about", "certificate", "project"} {
		if _, ok := ParseOwnerKind(s); !ok {
			t.Fatalf("ParseOwnerKind(%q) rejected a valid kind", s)
		}
	}
	if _, ok := ParseOwnerKind("banner"); ok {
		t.Fatalf("ParseOwnerKind accepted an unknown kind")
	}
}
