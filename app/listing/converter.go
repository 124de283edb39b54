package listing

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fixed SEK to USD rate the upstream prices are converted against.
const sekToUSDRate = 0.095

var numberRunPattern = regexp.MustCompile(`[0-9\s]+`)

type Converter struct {
	printer *message.Printer
}

func NewConverter() *Converter {
	return &Converter{
		printer: message.NewPrinter(language.English),
	}
}

// Convert extracts the numeric magnitude from a SEK display string (digit
// runs may be grouped with spaces, e.g. "1 500 000 kr") and renders it as
// whole US dollars with thousands separators. Any input that yields no
// parsable magnitude is returned unchanged.
func (c *Converter) Convert(priceText string) string {
	if priceText == "" {
		return priceText
	}

	runs := numberRunPattern.FindAllString(priceText, -1)
	if runs == nil {
		return priceText
	}

	digits := strings.Join(strings.Fields(strings.Join(runs, "")), "")
	amount, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return priceText
	}

	converted := int64(math.Round(float64(amount) * sekToUSDRate))
	return c.printer.Sprintf("$%d", converted)
}
