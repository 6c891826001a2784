package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/trinom/internal/plot"
	"github.com/msto63/trinom/internal/plot/window"
)

var (
	plotCoef     coefficientFlags
	plotBounds   boundFlags
	plotTerminal bool
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Courbe représentative d'une fonction trinôme",
	Long: `Trace f(x)=ax²+bx+c avec ses axes dans une fenêtre à part. Le programme
reprend une fois la fenêtre fermée (Échap ou fermeture de la fenêtre).

Exemples :
  trinom plot -a 1 -b 0 -c -4 --xmin -3 --xmax 3
  trinom plot -a 1 -b 0 -c -4 --terminal`,
	Args: cobra.NoArgs,
	RunE: runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)

	plotCoef.register(plotCmd)
	plotBounds.register(plotCmd)
	plotCmd.Flags().BoolVar(&plotTerminal, "terminal", false, "Tracer dans le terminal")
}

func runPlot(cmd *cobra.Command, args []string) error {
	t, err := plotCoef.trinomial()
	if err != nil {
		return env.fail(err)
	}
	bounds, err := plotBounds.bounds()
	if err != nil {
		return env.fail(err)
	}

	fig, err := plot.NewFigure(t, bounds)
	if err != nil {
		return env.fail(err)
	}

	if plotTerminal {
		fmt.Println(env.session().Graph(fig))
		return nil
	}
	g := env.cfg.Graph
	if err := window.Show(fig, window.Options{Width: g.WindowWidth, Height: g.WindowHeight}); err != nil {
		return env.fail(err)
	}
	return nil
}
