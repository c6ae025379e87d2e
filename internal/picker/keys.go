package picker

import "unicode/utf8"

// filterPunctuation is the punctuation that re-runs the filter: the keypad
// operators, the comma-to-quote keys of a US layout and what those keys and
// the digit row produce with shift held.
const filterPunctuation = "*+-./,`[]\\'" + `<_>?~{|}"` + "!@#$%^&()"

// Filterable reports whether a key press should re-run the filter. Keys use
// bubbletea's KeyMsg.String form.
func Filterable(key string) bool {
	switch key {
	case "backspace", "delete":
		return true
	}
	r, size := utf8.DecodeRuneInString(key)
	if size != len(key) || r == utf8.RuneError {
		return false
	}
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	for _, p := range filterPunctuation {
		if r == p {
			return true
		}
	}
	return false
}
