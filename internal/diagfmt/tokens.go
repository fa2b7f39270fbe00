package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"lsys/internal/token"
)

// TokenOutput — одна запись JSON-вывода токенизации.
type TokenOutput struct {
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		fmt.Fprintf(w, "%3d: %-12s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d-%d\n", tok.Span.Start, tok.Span.End)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Start: tok.Span.Start,
			End:   tok.Span.End,
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
