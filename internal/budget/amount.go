package budget

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/theirongolddev/spendit/internal/kv"
)

type amountKind uint8

const (
	kindAbsent amountKind = iota
	kindNull
	kindNumber
	kindText
)

// Amount is a loosely typed money value as it appears in persisted state: a JSON
// number, the raw text typed into an input (persisted as a JSON string), or null.
// Null counts as 0. The zero value is an absent field: it counts as NaN and is
// left out when encoded as a struct field tagged omitzero.
type Amount struct {
	kind    amountKind
	num     float64
	literal string // verbatim JSON number literal, or the raw input text
}

// Number returns a numeric Amount. NaN and infinities are kept in memory but
// persist as null.
func Number(f float64) Amount {
	return Amount{kind: kindNumber, num: f}
}

// Text returns an Amount holding raw input text.
func Text(s string) Amount {
	return Amount{kind: kindText, literal: s}
}

// Null returns a JSON null Amount.
func Null() Amount { return Amount{kind: kindNull} }

// IsZero reports whether the amount is absent.
func (a Amount) IsZero() bool { return a.kind == kindAbsent }

// IsNumber reports whether the amount holds a JSON number.
func (a Amount) IsNumber() bool { return a.kind == kindNumber }

// IsText reports whether the amount holds raw input text.
func (a Amount) IsText() bool { return a.kind == kindText }

// Float returns the numeric value used in arithmetic.
func (a Amount) Float() float64 {
	switch a.kind {
	case kindNumber:
		return a.num
	case kindText:
		return ToNumber(a.literal)
	case kindNull:
		return 0
	default:
		return math.NaN()
	}
}

// String returns the value as an input field would display it.
func (a Amount) String() string {
	switch a.kind {
	case kindNumber:
		if math.IsNaN(a.num) {
			return ""
		}
		if a.literal != "" {
			return a.literal
		}
		return FormatNumber(a.num)
	case kindText:
		return a.literal
	default:
		return ""
	}
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case kindNumber:
		if math.IsNaN(a.num) || math.IsInf(a.num, 0) {
			return []byte("null"), nil
		}
		if a.literal != "" {
			return []byte(a.literal), nil
		}
		return []byte(FormatNumber(a.num)), nil
	case kindText:
		s, err := kv.Encode(a.literal)
		return []byte(s), err
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler. Number literals are kept verbatim
// so that re-encoding an unmodified value reproduces the stored bytes.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = Null()
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Text(s)
	case bytes.Equal(data, []byte("true")):
		*a = Number(1)
	case bytes.Equal(data, []byte("false")):
		*a = Number(0)
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		*a = Amount{kind: kindNumber, num: f, literal: string(data)}
	}
	return nil
}

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ToNumber converts input text to a number the way a numeric input's value is
// coerced in arithmetic: surrounding whitespace is ignored, empty text is 0, and
// anything that is not a complete numeric literal is NaN.
func ToNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}

	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

// ParseInt reads a leading base-10 integer from s, ignoring leading whitespace
// and any trailing garbage ("12abc" is 12, "1.9" is 1). A "0x" prefix switches to
// hexadecimal. Text with no leading digits is NaN.
func ParseInt(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base, isDigit := 10, isDecimalDigit
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit = 16, isHexDigit
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return math.NaN()
	}

	var f float64
	for _, c := range []byte(s[:end]) {
		f = f*float64(base) + float64(digitValue(c))
	}
	if neg {
		f = -f
	}
	return f
}

// FormatNumber renders f the way it would print in a text field:
// integers without a fractional part, very large or small values in exponent form.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func isDecimalDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDecimalDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}
