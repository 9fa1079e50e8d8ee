package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"calctools/expr"
)

var evalVars []string

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate an expression locally",
	Example: `  calctools eval "sin(pi/4)^2"
  calctools eval "2*x + y" --var x=3 --var y=4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := expr.Parse(args[0])
		if err != nil {
			return err
		}
		binding, err := parseBindings(evalVars)
		if err != nil {
			return err
		}
		v, err := e.Eval(binding)
		if err != nil {
			if free := expr.Vars(e); len(free) > 0 {
				return errors.Wrapf(err, "free variables: %s", strings.Join(free, ", "))
			}
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))
		return nil
	},
}

func parseBindings(pairs []string) (expr.Binding, error) {
	b := make(expr.Binding, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, errors.Errorf("binding %q is not name=value", pair)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "binding %q", pair)
		}
		b[name] = v
	}
	return b, nil
}

func init() {
	evalCmd.Flags().StringArrayVar(&evalVars, "var", nil, "variable binding name=value (repeatable)")
	rootCmd.AddCommand(evalCmd)
}
