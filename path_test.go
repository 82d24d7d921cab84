package router

import "testing"

func Test_isValidPath(t *testing.T) {
	valid := []string{
		"foo",
		"foo/",
		"foo/bar",
		"foo/bar/",
		"a",
		"_",
		"v1/users/profile",
		"a1_b2/C3",
	}

	for _, path := range valid {
		if !isValidPath(path) {
			t.Errorf("path %q must be valid", path)
		}
	}

	invalid := []string{
		"",
		"/",
		"/foo",
		"/foo/",
		"foo//bar",
		"foo//",
		"foo-bar",
		"foo bar",
		"foo.bar",
		"foo/bar?",
		"-",
		" ",
	}

	for _, path := range invalid {
		if isValidPath(path) {
			t.Errorf("path %q must be invalid", path)
		}
	}
}

func Test_normalizePath(t *testing.T) {
	cases := map[string]string{
		"foo":     "foo/",
		"foo/":    "foo/",
		"foo/bar": "foo/bar/",
		"a":       "a/",
	}

	for path, want := range cases {
		if got := normalizePath(path); got != want {
			t.Errorf("normalizePath(%q) == %q, want %q", path, got, want)
		}

		// normalization is idempotent
		if got := normalizePath(normalizePath(path)); got != want {
			t.Errorf("normalizePath(normalizePath(%q)) == %q, want %q", path, got, want)
		}
	}
}
