package dtformat

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const latinDigits = "latn"

// digitFormatter renders zero-padded integers in a numbering system.
type digitFormatter struct {
	system  string
	printer *message.Printer
}

func newDigitFormatter(tag language.Tag, system string) digitFormatter {
	if system == "" || system == latinDigits {
		return digitFormatter{system: latinDigits}
	}

	withSystem, err := tag.SetTypeForKey("nu", system)
	if err != nil {
		return digitFormatter{system: latinDigits}
	}
	return digitFormatter{
		system:  system,
		printer: message.NewPrinter(withSystem),
	}
}

// format pads value to at least minDigits digits.
func (d digitFormatter) format(value, minDigits int) string {
	if minDigits < 1 {
		minDigits = 1
	}
	if d.printer == nil {
		return padLatin(value, minDigits)
	}
	return d.printer.Sprintf("%v", number.Decimal(value, number.MinIntegerDigits(minDigits), number.NoSeparator()))
}

func padLatin(value, minDigits int) string {
	negative := value < 0
	if negative {
		value = -value
	}
	digits := strconv.Itoa(value)
	if len(digits) < minDigits {
		digits = strings.Repeat("0", minDigits-len(digits)) + digits
	}
	if negative {
		return "-" + digits
	}
	return digits
}
