package machine

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/xdg/flotilla/internal/stream"
)

// SentinelVar is the marker variable docker-machine emits for every shell
// it renders env output for. Its line anchors the parser.
const SentinelVar = "DOCKER_MACHINE_NAME"

// ErrNoSentinel indicates env output with no sentinel line, which means
// the query failed or returned something other than an env listing.
var ErrNoSentinel = errors.New("env output has no " + SentinelVar + " line")

// ParseEnv extracts variable assignments from `docker-machine env` output
// for the named host.
//
// Rather than hard-coding each shell's export syntax, the parser derives
// it from the sentinel line: the sentinel variable name and the host name
// are located on that line, everything around them is treated as literal
// text, and the two spans become capture groups (an identifier and an
// arbitrary value). The derived pattern is then applied to every line;
// each match contributes one mapping entry, with later duplicates
// overwriting earlier ones.
//
// Output with no sentinel line fails with ErrNoSentinel rather than
// returning an empty mapping, since a missing sentinel means the query
// itself did not produce an env listing.
func ParseEnv(out, name string) (map[string]string, error) {
	lines := splitLines(out)

	pattern, err := deriveLinePattern(lines, name)
	if err != nil {
		return nil, fmt.Errorf("parse env output for %q: %w", name, err)
	}

	env := make(map[string]string)
	for _, line := range lines {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		env[m[1]] = m[2]
	}
	return env, nil
}

// deriveLinePattern builds the single-line assignment pattern from the
// sentinel line's layout. The line must contain both the sentinel
// variable and the queried host name to serve as a template.
func deriveLinePattern(lines []string, name string) (*regexp.Regexp, error) {
	for _, line := range lines {
		si := strings.Index(line, SentinelVar)
		if si < 0 {
			continue
		}
		ni := strings.Index(line[si+len(SentinelVar):], name)
		if ni < 0 {
			continue
		}
		ni += si + len(SentinelVar)

		expr := "^" +
			regexp.QuoteMeta(line[:si]) +
			"([A-Za-z_]+)" +
			regexp.QuoteMeta(line[si+len(SentinelVar):ni]) +
			"(.*)" +
			regexp.QuoteMeta(line[ni+len(name):]) +
			"$"

		pattern, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("derive assignment pattern: %w", err)
		}
		return pattern, nil
	}
	return nil, ErrNoSentinel
}

// splitLines splits env output into lines, tolerating CRLF and a missing
// final newline.
func splitLines(out string) []string {
	var d stream.LineDecoder
	lines := d.Feed([]byte(out))
	if rest := d.Rest(); rest != "" {
		lines = append(lines, rest)
	}
	return lines
}
