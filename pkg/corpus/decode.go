package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// DecodePolicy controls how malformed bytes in the corpus tables are
// handled. The raw Cornell files are not valid UTF-8 throughout, so the
// policy is explicit configuration rather than silent behavior.
type DecodePolicy int

const (
	// DecodeLenient drops malformed UTF-8 bytes and keeps going.
	DecodeLenient DecodePolicy = iota
	// DecodeStrict fails the load on the first malformed byte.
	DecodeStrict
	// DecodeWindows1252 transcodes from the corpus's legacy single-byte
	// encoding, in which every byte sequence is valid.
	DecodeWindows1252
)

func (p DecodePolicy) String() string {
	switch p {
	case DecodeLenient:
		return "lenient"
	case DecodeStrict:
		return "strict"
	case DecodeWindows1252:
		return "windows-1252"
	default:
		return fmt.Sprintf("decodepolicy(%d)", int(p))
	}
}

// ParseDecodePolicy maps a config string to a policy.
func ParseDecodePolicy(s string) (DecodePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lenient":
		return DecodeLenient, nil
	case "strict":
		return DecodeStrict, nil
	case "windows-1252", "windows1252", "cp1252":
		return DecodeWindows1252, nil
	default:
		return DecodeLenient, fmt.Errorf("unknown decode policy %q", s)
	}
}

// newScanner wraps r according to the policy and returns a line scanner.
// Utterances are well under the default token limit, but the buffer is
// raised so a pathological row cannot abort a load.
func newScanner(r io.Reader, policy DecodePolicy) *bufio.Scanner {
	if policy == DecodeWindows1252 {
		r = transform.NewReader(r, charmap.Windows1252.NewDecoder())
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return sc
}

// decodeLine applies the policy to one scanned line. name and lineno are
// used only for the strict-mode error message.
func decodeLine(s string, policy DecodePolicy, name string, lineno int) (string, error) {
	switch policy {
	case DecodeStrict:
		if !utf8.ValidString(s) {
			return "", fmt.Errorf("%s:%d: %w", name, lineno, ErrMalformedText)
		}
		return s, nil
	case DecodeLenient:
		if !utf8.ValidString(s) {
			return strings.ToValidUTF8(s, ""), nil
		}
		return s, nil
	default:
		// Windows-1252 input was transcoded at the reader; nothing to fix.
		return s, nil
	}
}
