package ucum

import "fmt"

// tokenize runs the deterministic finite state machine of spec.md §4.4 over
// the raw input, isolating maximal runs between the grammar's structural
// delimiters ('.', '/', '(', ')', '{...}'). It does not classify the
// contents of a chunk itself — prefix/atom/exponent disambiguation needs
// the atom registry and happens in the parser (spec.md §4.1's tokenizer
// note).
func tokenize(input string) ([]Token, error) {
	var toks []Token
	i, n := 0, len(input)

	for i < n {
		c := input[i]
		switch {
		case isSpace(c):
			i++
		case c == '.':
			toks = append(toks, Token{Kind: TokenDot, Value: ".", Pos: i})
			i++
		case c == '/':
			toks = append(toks, Token{Kind: TokenSlash, Value: "/", Pos: i})
			i++
		case c == '(':
			toks = append(toks, Token{Kind: TokenLParen, Value: "(", Pos: i})
			i++
		case c == ')':
			toks = append(toks, Token{Kind: TokenRParen, Value: ")", Pos: i})
			i++
		case c == '{':
			start := i + 1
			j := start
			for j < n && input[j] != '}' {
				j++
			}
			if j >= n {
				return nil, fmt.Errorf("ucum: unterminated annotation starting at byte %d", i)
			}
			toks = append(toks, Token{Kind: TokenAnnotation, Value: input[start:j], Pos: i})
			i = j + 1
		case c == '}':
			return nil, fmt.Errorf("ucum: unexpected '}' at byte %d", i)
		default:
			start := i
			for i < n && !isDelimiter(input[i]) {
				i++
			}
			toks = append(toks, Token{Kind: TokenChunk, Value: input[start:i], Pos: start})
		}
	}

	toks = append(toks, Token{Kind: TokenEOF, Pos: n})
	return toks, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDelimiter(c byte) bool {
	return c == '.' || c == '/' || c == '(' || c == ')' || c == '{' || c == '}' || isSpace(c)
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// tokenStream is a cursor over a fully-tokenized input; the grammar needs
// only single-token lookahead (spec.md §4.4).
type tokenStream struct {
	toks []Token
	pos  int
}

func (s *tokenStream) peek() Token {
	return s.toks[s.pos]
}

func (s *tokenStream) next() Token {
	t := s.toks[s.pos]
	if s.pos < len(s.toks)-1 {
		s.pos++
	}
	return t
}
