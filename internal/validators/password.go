package validators

import "unicode"

// IsPasswordValid exige mínimo 8 caracteres con al menos una letra y un
// número.
func IsPasswordValid(pw string) bool {
	if len(pw) < 8 {
		return false
	}

	var hasLetter, hasDigit bool
	for _, r := range pw {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
