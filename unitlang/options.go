package unitlang

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// OptionsParseError reports a failure to parse a bracketed option list.
type OptionsParseError struct {
	Input string
	Err   error
}

func (e *OptionsParseError) Error() string {
	return fmt.Sprintf("unitlang: cannot parse options %q: %v", e.Input, e.Err)
}

func (e *OptionsParseError) Unwrap() error { return e.Err }

// Option is one entry of a bracketed option list: a key, made of one or
// more whitespace-joined words, and an optional value.
type Option struct {
	Key   string
	Value string
}

var optionsLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "LBracket", Pattern: `\[`},
	{Name: "RBracket", Pattern: `\]`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Equals", Pattern: `=`},
	{Name: "Item", Pattern: `[^,\[\]=\s]+`},
})

// optionEntry captures a key as a run of Item tokens (so multi-word keys
// like "standalone key" parse as several Items joined with a single
// space) and an optional '=' value.
type optionEntry struct {
	KeyWords []string `parser:"@Item+"`
	Value    *string  `parser:"( '=' @Item )?"`
}

type optionsGrammar struct {
	Entries []*optionEntry `parser:"'[' ( @@ (',' @@)* )? ']'"`
}

var optionsParser = participle.MustBuild[optionsGrammar](
	participle.Lexer(optionsLexer),
	participle.Elide("Whitespace"),
)

// ParseOptions parses a bracketed, comma-separated option list such as
// "[standalone key, a=b, width=10pt]" into an ordered slice of Options.
// A key made of several space-separated words (no internal commas or
// equals signs) is preserved as a single space-joined string.
func ParseOptions(input string) ([]Option, error) {
	g, err := optionsParser.ParseString("", input)
	if err != nil {
		return nil, &OptionsParseError{Input: input, Err: err}
	}
	out := make([]Option, 0, len(g.Entries))
	for _, e := range g.Entries {
		opt := Option{Key: strings.Join(e.KeyWords, " ")}
		if e.Value != nil {
			opt.Value = *e.Value
		}
		out = append(out, opt)
	}
	return out, nil
}
