package grammar

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
)

var parser = buildParser()

func buildParser() *participle.Parser[grammarFile] {
	p, err := participle.Build[grammarFile](
		participle.Lexer(GrammarLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(3),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build grammar parser: %w", err))
	}

	return p
}

// ParseError reports malformed grammar text: unbalanced groups, stray
// operators, truncated definitions.
type ParseError struct {
	Message  string
	Position Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Position.Filename, e.Position.Line, e.Position.Column, e.Message)
}

// ParseFile reads and parses one grammar file.
func ParseFile(path string) (*Grammar, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grammar file: %w", err)
	}

	return Parse(path, string(source))
}

// Parse turns grammar text into the rule model. The only failure mode is a
// *ParseError; reference resolution and shape checks happen later, in the
// compiler.
func Parse(sourceName string, source string) (*Grammar, error) {
	file, err := parser.ParseString(sourceName, source)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, &ParseError{
				Message:  perr.Message(),
				Position: lowerPos(perr.Position()),
			}
		}
		return nil, &ParseError{Message: err.Error()}
	}

	return lowerFile(file), nil
}
