package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nonibytes/searchbox/internal/cliutil"
	"github.com/nonibytes/searchbox/searchbox"
	"github.com/nonibytes/searchbox/searchbox/query"
)

type tokenView struct {
	Type     string      `json:"type"`
	Offset   int         `json:"offset"`
	End      int         `json:"end"`
	Content  string      `json:"content,omitempty"`
	Key      *query.Node `json:"key,omitempty"`
	Operator *query.Node `json:"operator,omitempty"`
	Value    *query.Node `json:"value,omitempty"`
}

func viewToken(t query.Token) tokenView {
	switch tok := t.(type) {
	case query.Pair:
		return tokenView{Type: "Pair", Offset: tok.Offset, End: tok.End, Key: &tok.Key, Operator: &tok.Operator, Value: &tok.Value}
	case query.Query:
		return tokenView{Type: "Query", Offset: tok.Offset, End: tok.End, Content: tok.Content}
	default:
		b := t.Bounds()
		return tokenView{Type: "?", Offset: b.Offset, End: b.End}
	}
}

func printTokenPretty(w io.Writer, t query.Token) {
	b := t.Bounds()
	span := cliutil.DimStyle.Render(fmt.Sprintf("[%d,%d)", b.Offset, b.End))
	switch tok := t.(type) {
	case query.Pair:
		fmt.Fprintf(w, "%s %s%s%s\n", span,
			cliutil.KeyStyle.Render(tok.Key.Content),
			cliutil.OperatorStyle.Render(tok.Operator.Content),
			cliutil.ValueStyle.Render(fmt.Sprintf("%q", tok.Value.Content)))
	case query.Query:
		fmt.Fprintf(w, "%s %s\n", span, tok.Content)
	}
}

func NewTokensCommand(app *App) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "tokens <query>",
		Short: "Show how a search box query is tokenized",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := searchbox.NewEngine(nil, app.engineOptions())
			tokens, err := e.Parse(args[0])
			if err != nil {
				return searchbox.Wrap(searchbox.ErrQueryParse, "tokenize", err)
			}

			w := cmd.OutOrStdout()
			if cliutil.ParseOutputFormat(format) == cliutil.FormatJSON {
				views := make([]tokenView, len(tokens))
				for i, t := range tokens {
					views[i] = viewToken(t)
				}
				cliutil.PrintJSON(w, views)
				return nil
			}
			for _, t := range tokens {
				printTokenPretty(w, t)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "pretty", "output format: pretty|json")
	return cmd
}
