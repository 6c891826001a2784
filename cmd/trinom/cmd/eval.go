package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/trinom/internal/shell"
	"github.com/msto63/trinom/internal/trinomial"
)

var (
	evalA, evalB, evalC string
	evalAlpha, evalBeta string
	evalX1, evalX2      string
	evalXs              []string
)

var evalCmd = &cobra.Command{
	Use:   "eval <developed|canonical|factored>",
	Short: "Image de réels par une fonction trinôme",
	Long: `Calcule f(x) pour chaque valeur de -x, la fonction étant donnée sous
sa forme développée (a, b, c), canonique (a, α, β) ou factorisée (a, x1, x2).

Exemples :
  trinom eval developed -a 1 -b -3 -c 2 -x 0 -x 1,5
  trinom eval canonical -a 2 --alpha 1 --beta 3 -x 1
  trinom eval factored -a 2 --x1 1 --x2 3 -x 5`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"developed", "canonical", "factored"},
	RunE:      runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVarP(&evalA, "a", "a", "", "Coefficient a")
	evalCmd.Flags().StringVarP(&evalB, "b", "b", "", "Coefficient b (forme développée)")
	evalCmd.Flags().StringVarP(&evalC, "c", "c", "", "Coefficient c (forme développée)")
	evalCmd.Flags().StringVar(&evalAlpha, "alpha", "", "α (forme canonique)")
	evalCmd.Flags().StringVar(&evalBeta, "beta", "", "β (forme canonique)")
	evalCmd.Flags().StringVar(&evalX1, "x1", "", "x1 (forme factorisée)")
	evalCmd.Flags().StringVar(&evalX2, "x2", "", "x2 (forme factorisée)")
	evalCmd.Flags().StringArrayVarP(&evalXs, "x", "x", nil, "Valeur de x (répétable)")
	_ = evalCmd.MarkFlagRequired("a")
	_ = evalCmd.MarkFlagRequired("x")
}

func runEval(cmd *cobra.Command, args []string) error {
	form, err := shell.ParseForm(args[0])
	if err != nil {
		return env.fail(err)
	}

	texts := [3]string{evalA, evalB, evalC}
	switch form {
	case shell.FormCanonical:
		texts = [3]string{evalA, evalAlpha, evalBeta}
	case shell.FormFactored:
		texts = [3]string{evalA, evalX1, evalX2}
	}
	params, err := parseNumbers(texts[:]...)
	if err != nil {
		return env.fail(err)
	}

	session := env.session()
	fn, err := session.Function(form, params)
	if err != nil {
		return env.fail(err)
	}

	var out strings.Builder
	out.WriteString(session.Header(fn.Expr) + "\n")
	for _, text := range evalXs {
		x, err := trinomial.ParseNumber(text)
		if err != nil {
			return env.fail(err)
		}
		out.WriteString(session.Result(x, fn.Eval(x)) + "\n")
	}
	fmt.Print(out.String())
	return nil
}
