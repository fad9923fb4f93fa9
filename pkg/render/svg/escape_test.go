package svg

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"mixed", "A&B<C>", "A&amp;B&lt;C&gt;"},
		{"ampersand", "&", "&amp;"},
		{"less than", "<", "&lt;"},
		{"greater than", ">", "&gt;"},
		{"double quote", `"`, "&quot;"},
		{"single quote", "'", "&apos;"},
		{"plain text unchanged", "VOL+ N/Gui —", "VOL+ N/Gui —"},
		{"empty", "", ""},
		{"single pass", "&lt;", "&amp;lt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Escaping must be injective over the reserved characters: no two distinct
// inputs built from them may collide.
func TestEscapeInjective(t *testing.T) {
	inputs := []string{"&", "<", ">", `"`, "'", "&<", "<&", "&&", "<<"}
	seen := make(map[string]string)
	for _, in := range inputs {
		out := Escape(in)
		if prev, ok := seen[out]; ok {
			t.Errorf("Escape collision: %q and %q both map to %q", prev, in, out)
		}
		seen[out] = in
	}
}
