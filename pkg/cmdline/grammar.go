package cmdline

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// argLexer splits one command line argument. Text swallows anything the
// other rules do not start on, so values keep dots, digits and spaces.
var argLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Dash", Pattern: `-`},
	{Name: "Slash", Pattern: `/`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Name", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Text", Pattern: `[^-/:A-Za-z_]+`},
})

// Argument is one parsed argument: either the -selector or a /switch.
type Argument struct {
	Selector *Item `parser:"  Dash @@"`
	Switch   *Item `parser:"| Slash @@"`
}

// Item is a name with an optional value after the first colon.
type Item struct {
	Name  string  `parser:"@Name"`
	Value *string `parser:"( Colon @( Name | Text | Dash | Slash | Colon )+ )?"`
}

// Key is the lower-cased name.
func (i *Item) Key() string {
	return strings.ToLower(i.Name)
}

// HasValue reports whether a value was given.
func (i *Item) HasValue() bool {
	return i.Value != nil
}

// String returns the value, or "" when there is none.
func (i *Item) String() string {
	if i.Value == nil {
		return ""
	}
	return *i.Value
}

var argParser = participle.MustBuild[Argument](
	participle.Lexer(argLexer),
)

// ParseArgument parses a single argument.
func ParseArgument(arg string) (*Argument, error) {
	return argParser.ParseString("", arg)
}
