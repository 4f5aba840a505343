package handlers

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// validateAirportCode checks for a 3-letter IATA-style code.
func validateAirportCode(field, code string) error {
	code = strings.TrimSpace(code)
	if len(code) != 3 {
		return fmt.Errorf("%s must be a 3-letter airport code", field)
	}
	for _, r := range code {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("%s must be a 3-letter airport code", field)
		}
	}
	return nil
}

// validateSlashDate checks dd/mm/yyyy, the format the fare provider expects.
func validateSlashDate(field, value string) error {
	if _, err := time.Parse("02/01/2006", value); err != nil {
		return fmt.Errorf("%s must be a valid dd/mm/yyyy date", field)
	}
	return nil
}

// validateISODate checks yyyy-mm-dd, the format the stay provider expects.
func validateISODate(field, value string) error {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%s must be a valid yyyy-mm-dd date", field)
	}
	return nil
}
