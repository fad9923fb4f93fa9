// Package label converts raw key-action tokens into short display labels.
//
// A token is one entry of a layer's key matrix: a plain key name ("tab", "a"),
// a mod-tap wrapper ("MT(N, LGui)"), a shifted-symbol wrapper ("SHIFTED(9)"),
// or a transparent marker ("_", "KC_TRNS"). Format resolves a token through a
// fixed precedence order and never fails; unrecognized tokens degrade to an
// uppercased copy of the raw text so that a best-effort label is always
// rendered.
//
// The lookup tables live in tables.go as package data rather than conditional
// chains, which keeps the precedence order explicit and testable on its own.
package label

import "strings"

// TransparentGlyph is the label shown on keys with no action of their own.
const TransparentGlyph = "—"

// smallFontThreshold is the label length above which the renderer should
// switch to the small font to keep the text inside the key shape.
const smallFontThreshold = 3

// Label is the display form of one key action.
type Label struct {
	Text        string // Short text to render on the key
	Transparent bool   // Key has no action on this layer
	SmallFont   bool   // Text is too long for the regular font
}

// Format resolves a raw key-action token to its display label.
//
// Matching precedence, first match wins:
//  1. Transparent marker ("_", "KC_TRNS") → TransparentGlyph
//  2. Mod-tap wrapper MT(tap, hold) → "<tap>/<hold>" with both sides resolved
//     recursively; the hold side drops a leading L/R hand qualifier
//  3. SHIFTED(base) → literal shifted character, or "S-<BASE>" for bases
//     outside the shift table
//  4. Case-insensitive abbreviation table lookup
//  5. Uppercased copy of the raw token
//
// Format is deterministic and total: it never returns an error.
func Format(raw string) Label {
	tok := strings.TrimSpace(raw)
	if isTransparent(tok) {
		return Label{Text: TransparentGlyph, Transparent: true}
	}
	text := resolve(tok)
	return Label{Text: text, SmallFont: len(text) > smallFontThreshold}
}

// isTransparent reports whether tok is a no-op marker.
func isTransparent(tok string) bool {
	return tok == "" || tok == "_" || strings.EqualFold(tok, "KC_TRNS")
}

// resolve applies steps 2-5 of the precedence order. It is the single
// recursive entry point, so nested forms (a SHIFTED base inside a mod-tap
// tap slot, for instance) resolve the same way at any depth.
func resolve(tok string) string {
	if inner, ok := unwrap(tok, "MT("); ok {
		if tap, hold, split := splitPair(inner); split {
			return resolve(tap) + "/" + resolveHold(hold)
		}
		// Malformed mod-tap, fall through to the uppercase default.
	}

	if inner, ok := unwrap(tok, "SHIFTED("); ok {
		if sym, found := shiftSymbols[inner]; found {
			return sym
		}
		return "S-" + resolve(inner)
	}

	if abbr, found := abbreviations[strings.ToLower(tok)]; found {
		return abbr
	}

	return strings.ToUpper(tok)
}

// resolveHold formats the hold side of a mod-tap. A leading hand qualifier
// (L or R) is dropped from modifier names before abbreviation, so both LGui
// and RGui display as Gui.
func resolveHold(tok string) string {
	name := strings.ToLower(tok)
	if len(name) > 1 && (name[0] == 'l' || name[0] == 'r') {
		if short, found := modShort[name[1:]]; found {
			return short
		}
	}
	if short, found := modShort[name]; found {
		return short
	}
	return resolve(tok)
}

// unwrap strips prefix and a trailing ")" from tok, returning the inner text.
// The second return is false when tok is not wrapped in that form.
func unwrap(tok, prefix string) (string, bool) {
	if !strings.HasPrefix(tok, prefix) || !strings.HasSuffix(tok, ")") {
		return "", false
	}
	return strings.TrimSpace(tok[len(prefix) : len(tok)-1]), true
}

// splitPair splits "tap, hold" on the first comma. It returns false when the
// inner text does not contain exactly one comma-separated pair.
func splitPair(inner string) (tap, hold string, ok bool) {
	parts := strings.Split(inner, ",")
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}
