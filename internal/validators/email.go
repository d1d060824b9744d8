package validators

import "regexp"

// Misma forma local@dominio.tld que valida el cliente; la unicidad la
// garantiza el índice de la base de datos, no este chequeo.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsEmailValid(email string) bool {
	return emailRegex.MatchString(email)
}
