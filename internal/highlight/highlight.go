package highlight

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is used when no style is configured or the name is unknown
const DefaultStyle = "algol"

const ansiReset = "\x1b[0m"

// Syntax colors single lines of source with ANSI escapes
type Syntax struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter
}

// New returns a Syntax for a chroma language name or a filename.
// It returns nil when language is empty or matches no lexer, and a nil
// Syntax leaves lines untouched.
func New(language, styleName string) *Syntax {
	if language == "" {
		return nil
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Match(language)
	}
	if lexer == nil {
		return nil
	}

	if styleName == "" {
		styleName = DefaultStyle
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	return &Syntax{
		lexer:     chroma.Coalesce(lexer),
		style:     style,
		formatter: formatter,
	}
}

// Language returns the name of the lexer in use
func (s *Syntax) Language() string {
	if s == nil {
		return ""
	}
	return s.lexer.Config().Name
}

// Line highlights one line. On any chroma error the line comes back as is.
func (s *Syntax) Line(line string) string {
	if s == nil || line == "" {
		return line
	}

	iterator, err := s.lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var buf bytes.Buffer
	if err := s.formatter.Format(&buf, s.style, iterator); err != nil {
		return line
	}

	result := strings.ReplaceAll(buf.String(), "\n", "")
	if !strings.HasSuffix(result, ansiReset) {
		result += ansiReset
	}
	return result
}
