// Package ignore implements gitignore-style exclusion patterns for source
// list generation. Paths are matched relative to the scan root using forward
// slashes.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Pattern is a single compiled exclusion rule.
type Pattern struct {
	Line    string         // Original pattern line.
	Source  string         // File the pattern came from, or "flag".
	LineNo  int            // Line number in the source (1-based).
	Negate  bool           // Pattern started with '!'.
	DirOnly bool           // Pattern ended with '/'.
	exact   *regexp.Regexp // Matches the path itself.
	beneath *regexp.Regexp // Matches any path below a matching directory.
}

// Matcher holds an ordered set of patterns. The last matching pattern decides.
type Matcher struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// NewMatcher returns an empty Matcher. A nil logger is replaced with a no-op one.
func NewMatcher(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{logger: logger}
}

// Load builds a Matcher from an optional ignore file followed by extra patterns.
// A missing ignore file is an error, since it was named explicitly.
func Load(ignoreFile string, extra []string, logger *zap.Logger) (*Matcher, error) {
	m := NewMatcher(logger)

	if ignoreFile != "" {
		if err := m.CompileFile(ignoreFile); err != nil {
			return nil, fmt.Errorf("failed to load ignore file %s: %w", ignoreFile, err)
		}
	}
	if len(extra) > 0 {
		m.CompileLines("flag", extra...)
	}

	m.logger.Debug("Loaded exclusion patterns", zap.Int("totalPatterns", len(m.patterns)))
	return m, nil
}

// Len reports the number of compiled patterns.
func (m *Matcher) Len() int {
	return len(m.patterns)
}

// CompileLines compiles pattern lines; blank lines and comments are skipped.
func (m *Matcher) CompileLines(source string, lines ...string) {
	for i, line := range lines {
		p, err := parsePatternLine(line)
		if err != nil {
			m.logger.Warn("Invalid exclusion pattern",
				zap.String("source", source),
				zap.Int("lineNo", i+1),
				zap.String("pattern", line),
				zap.Error(err))
			continue
		}
		if p == nil {
			continue
		}
		p.Source = source
		p.LineNo = i + 1
		m.patterns = append(m.patterns, p)
		m.logger.Debug("Compiled exclusion pattern",
			zap.String("source", source),
			zap.Int("lineNo", p.LineNo),
			zap.String("pattern", p.Line),
			zap.Bool("negate", p.Negate))
	}
}

// CompileFile reads an ignore file and compiles each of its lines.
func (m *Matcher) CompileFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		m.logger.Error("Failed to read ignore file", zap.String("filePath", path), zap.Error(err))
		return err
	}

	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	m.CompileLines(path, lines...)
	m.logger.Debug("Compiled ignore file", zap.String("filePath", path), zap.Int("lineCount", len(lines)))
	return nil
}

// Matches reports whether relPath is excluded.
func (m *Matcher) Matches(relPath string, isDir bool) bool {
	matched, _ := m.MatchesWithPattern(relPath, isDir)
	return matched
}

// MatchesWithPattern is like Matches but also returns the deciding pattern.
func (m *Matcher) MatchesWithPattern(relPath string, isDir bool) (bool, *Pattern) {
	path := filepath.ToSlash(relPath)

	matched := false
	var decider *Pattern
	for _, p := range m.patterns {
		if !p.match(path, isDir) {
			continue
		}
		matched = !p.Negate
		decider = p
	}

	if decider != nil {
		m.logger.Debug("Path matched exclusion pattern",
			zap.String("path", path),
			zap.String("pattern", decider.Line),
			zap.Bool("excluded", matched))
	}
	return matched, decider
}

func (p *Pattern) match(path string, isDir bool) bool {
	if p.exact.MatchString(path) && (isDir || !p.DirOnly) {
		return true
	}
	return p.beneath.MatchString(path)
}

// parsePatternLine turns one ignore line into a Pattern. It returns nil for
// blank lines and comments.
func parsePatternLine(line string) (*Pattern, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}

	p := &Pattern{Line: line}
	if strings.HasPrefix(trimmed, "!") {
		p.Negate = true
		trimmed = trimmed[1:]
	}
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	rooted := strings.HasPrefix(trimmed, "/")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if strings.HasSuffix(trimmed, "/") {
		p.DirOnly = true
		trimmed = strings.TrimRight(trimmed, "/")
	}
	if trimmed == "" {
		return nil, nil
	}

	prefix := "^(?:.*/)?"
	if rooted {
		prefix = "^"
	}
	body := globToRegex(trimmed)

	var err error
	if p.exact, err = regexp.Compile(prefix + body + "$"); err != nil {
		return nil, err
	}
	if p.beneath, err = regexp.Compile(prefix + body + "/"); err != nil {
		return nil, err
	}
	return p, nil
}

// globToRegex converts '*', '?' and '**' wildcards to a regular expression
// body. Everything else is matched literally.
func globToRegex(glob string) string {
	var b strings.Builder
	for i := 0; i < len(glob); i++ {
		c := glob[i]
		switch c {
		case '*':
			if i+1 < len(glob) && glob[i+1] == '*' {
				i++
				if i+1 < len(glob) && glob[i+1] == '/' {
					i++
					b.WriteString("(?:.*/)?")
				} else {
					b.WriteString(".*")
				}
				continue
			}
			b.WriteString("[^/]*")
		case '?':
			b.WriteString("[^/]")
		default:
			b.WriteString(regexp.QuoteMeta(glob[i : i+1]))
		}
	}
	return b.String()
}
