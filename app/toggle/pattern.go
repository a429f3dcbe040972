package toggle

import (
	"regexp"
	"strings"

	"github.com/umputun/dbgtoggle/app/enum"
)

// Marker is the token tagging a debug-log statement.
const Marker = "LOG_DEBUG"

// space is the whitespace class used around the marker: ASCII whitespace plus \v,
// Unicode separators (category Z) and the \x1c-\x1f and \x85 control characters.
const space = `[\s\v\p{Z}\x1c-\x1f\x85]`

var (
	enableRe  = regexp.MustCompile(`^` + space + `*?//` + space + `*` + Marker)
	disableRe = regexp.MustCompile(`^` + space + `*?` + Marker)
)

// Pattern selects the lines to rewrite and the literal substitution applied to them.
type Pattern struct {
	Match   *regexp.Regexp
	Find    string
	Replace string
}

// PatternFor returns the pattern for the given mode. Anything but ModeDisable is treated as enable.
func PatternFor(mode enum.Mode) Pattern {
	if mode == enum.ModeDisable {
		return Pattern{Match: disableRe, Find: Marker, Replace: "// " + Marker}
	}
	return Pattern{Match: enableRe, Find: "// " + Marker, Replace: Marker}
}

// Apply rewrites a single line if it matches. The bool reports a match, the returned
// line may still equal the input when Find is not present, e.g. "//LOG_DEBUG".
// Every occurrence of Find on a matching line is replaced, not only the leading one.
func (p Pattern) Apply(line string) (string, bool) {
	if !p.Match.MatchString(line) {
		return line, false
	}
	return strings.ReplaceAll(line, p.Find, p.Replace), true
}

// Transform applies the pattern to every line and returns the new lines along with
// the number of lines whose text changed. The result always has len(lines) elements.
func Transform(lines []string, p Pattern) (out []string, changed int) {
	out = make([]string, len(lines))
	for i, line := range lines {
		res, _ := p.Apply(line)
		if res != line {
			changed++
		}
		out[i] = res
	}
	return out, changed
}

// ModeFromArgs picks the mode from the arguments following the file name.
// Disable is selected only by exactly one extra argument equal to "--disable" or "-d".
func ModeFromArgs(rest []string) enum.Mode {
	if len(rest) == 1 && (rest[0] == "--disable" || rest[0] == "-d") {
		return enum.ModeDisable
	}
	return enum.ModeEnable
}
