package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

const currencySymbol = "₹"

// FormatCurrency renders an amount with the rupee symbol, two fixed
// decimals and Indian digit grouping (12,34,567.00 not 1,234,567.00).
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)

	intPart := fixed
	fracPart := "00"
	if idx := strings.Index(fixed, "."); idx >= 0 {
		intPart = fixed[:idx]
		fracPart = fixed[idx+1:]
	}

	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}

	return sign + currencySymbol + groupIndian(intPart) + "." + fracPart
}

// groupIndian inserts commas per the Indian numbering system: the last
// three digits form one group, everything before that groups in twos.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

var wordsBelowTwenty = []string{
	"", "One ", "Two ", "Three ", "Four ", "Five ", "Six ", "Seven ",
	"Eight ", "Nine ", "Ten ", "Eleven ", "Twelve ", "Thirteen ",
	"Fourteen ", "Fifteen ", "Sixteen ", "Seventeen ", "Eighteen ",
	"Nineteen ",
}

var wordsTens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// twoDigitWords spells 1..99, always with a trailing space.
func twoDigitWords(n int64) string {
	if n < 20 {
		return wordsBelowTwenty[n]
	}
	return wordsTens[n/10] + " " + wordsBelowTwenty[n%10]
}

// NumberToWords converts a non-negative integer amount into English
// words on the Indian scale (Crore, Lakh, Thousand, Hundred).
//
// The output contract matches the shop's printed bills exactly:
// zero is empty, exact scale multiples carry no "only" suffix, any
// sub-100 remainder is joined with "and" and suffixed "only", and the
// result always ends with a trailing space.
//
//	NumberToWords(0)      == ""
//	NumberToWords(100)    == "One Hundred "
//	NumberToWords(101)    == "One Hundred and One only "
//	NumberToWords(123456) == "One Lakh Twenty Three Thousand Four Hundred and Fifty Six only "
func NumberToWords(n int64) string {
	if n <= 0 || n >= 1_000_000_000 {
		// Negative amounts never reach printed bills; ten crore and
		// above overflows the nine-digit bill layout.
		return ""
	}

	crore := n / 1e7 % 100
	lakh := n / 1e5 % 100
	thousand := n / 1e3 % 100
	hundred := n / 100 % 10
	rest := n % 100

	var b strings.Builder
	if crore != 0 {
		b.WriteString(twoDigitWords(crore) + "Crore ")
	}
	if lakh != 0 {
		b.WriteString(twoDigitWords(lakh) + "Lakh ")
	}
	if thousand != 0 {
		b.WriteString(twoDigitWords(thousand) + "Thousand ")
	}
	if hundred != 0 {
		b.WriteString(wordsBelowTwenty[hundred] + "Hundred ")
	}
	if rest != 0 {
		if b.Len() > 0 {
			b.WriteString("and ")
		}
		b.WriteString(twoDigitWords(rest) + "only ")
	}
	return b.String()
}
