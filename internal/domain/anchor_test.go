package domain

import "testing"

func TestAnchor(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"punctuation stripped", "Hello, World!!", "hello-world"},
		{"simple title", "Installation", "installation"},
		{"multiple spaces collapse", "Too   Many   Spaces", "too-many-spaces"},
		{"hyphens preserved and collapsed", "Set-up -- Guide", "set-up-guide"},
		{"underscores preserved", "snake_case name", "snake_case-name"},
		{"digits preserved", "Step 2 of 3", "step-2-of-3"},
		{"leading and trailing junk", "  !Weird Title?  ", "weird-title"},
		{"only punctuation", "!!!", ""},
		{"empty title", "", ""},
		{"unicode letters survive", "Café Menü", "café-menü"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Anchor(tt.title); got != tt.want {
				t.Errorf("Anchor(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestAnchorIdempotent(t *testing.T) {
	titles := []string{"Hello, World!!", "Set-up -- Guide", "Step 2 of 3", "Café Menü"}

	for _, title := range titles {
		once := Anchor(title)
		twice := Anchor(once)
		if once != twice {
			t.Errorf("Anchor not idempotent for %q: %q != %q", title, once, twice)
		}
	}
}
