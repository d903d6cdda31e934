package account

import (
	"strconv"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ShegaID derives the customer-facing id from the name and door number as
// entered at sign-up, untrimmed. Upper-casing uses full case mapping, so
// "ß" becomes "SS". The hash is DJB2 over UTF-16 code units where only the
// shifted term is truncated to 32 bits, and the result is the decimal
// absolute value.
func ShegaID(firstName, lastName, doorNumber string) string {
	if doorNumber == "" {
		doorNumber = "0"
	}
	seed := cases.Upper(language.Und).String(firstName + lastName + doorNumber)

	var h int64 = 5381
	for _, c := range utf16.Encode([]rune(seed)) {
		h = int64(int32(h)<<5) + h + int64(c)
	}
	if h < 0 {
		h = -h
	}
	return strconv.FormatInt(h, 10)
}
