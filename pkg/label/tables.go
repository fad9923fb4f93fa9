package label

// shiftSymbols maps a base key to the literal character produced when it is
// pressed with shift held. Tokens wrapped in SHIFTED(...) resolve through this
// table; bases without an entry render as "S-<BASE>".
var shiftSymbols = map[string]string{
	"1":  "!",
	"2":  "@",
	"3":  "#",
	"4":  "$",
	"5":  "%",
	"6":  "^",
	"7":  "&",
	"8":  "*",
	"9":  "(",
	"0":  ")",
	"[":  "{",
	"]":  "}",
	"-":  "_",
	"=":  "+",
	";":  ":",
	"'":  `"`,
	",":  "<",
	".":  ">",
	"/":  "?",
	"`":  "~",
	"\\": "|",
}

// abbreviations maps common key names to their short display forms. Keys are
// lowercase; lookups are case-insensitive. Values that are not fully uppercase
// (PgUp, Left, ...) are chosen so that re-formatting a display form resolves
// back to itself through this same table.
var abbreviations = map[string]string{
	// Editing and whitespace
	"tab":   "TAB",
	"esc":   "ESC",
	"bspc":  "BSPC",
	"ent":   "ENT",
	"enter": "ENT",
	"spc":   "SPC",
	"space": "SPC",
	"del":   "DEL",
	"ins":   "INS",
	"caps":  "CAPS",

	// Punctuation key names
	"comm": ",",
	"dot":  ".",
	"scln": ";",
	"quot": "'",
	"grv":  "`",
	"slsh": "/",
	"mins": "-",
	"eql":  "=",
	"lbrc": "[",
	"rbrc": "]",
	"bsls": "\\",

	// Modifiers
	"lsft": "LSFT",
	"rsft": "RSFT",
	"lctl": "LCTL",
	"rctl": "RCTL",

	// Navigation
	"pgup":  "PgUp",
	"pgdn":  "PgDn",
	"left":  "Left",
	"right": "Right",
	"up":    "Up",
	"down":  "Down",
	"home":  "HOME",
	"end":   "END",

	// Media
	"mprv": "PREV",
	"mnxt": "NEXT",
	"volu": "VOL+",
	"vold": "VOL-",
	"mute": "MUTE",
	"mply": "PLAY",
}

// modShort maps a modifier name (hand qualifier already stripped) to the
// short form used on the hold side of a mod-tap label.
var modShort = map[string]string{
	"gui":   "Gui",
	"alt":   "Alt",
	"shift": "Sft",
	"sft":   "Sft",
	"ctrl":  "Ctl",
	"ctl":   "Ctl",
}
