package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/trinom/internal/export"
	"github.com/msto63/trinom/internal/plot/window"
)

var (
	studyCoef   coefficientFlags
	studyBounds boundFlags
	studyPDF    string
	studyXLSX   string
	studyWindow bool
	studyNoPlot bool
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Étude complète d'une fonction trinôme",
	Long: `Affiche l'étude complète de f(x)=ax²+bx+c puis sa courbe représentative.

Exemples :
  trinom study -a 1 -b -3 -c 2
  trinom study -a 1 -b -3 -c 2 --xmin -5 --xmax 5 --points 1001 --window
  trinom study -a -2 -b 0 -c 8 --pdf etude.pdf --xlsx etude.xlsx --no-graph`,
	Args: cobra.NoArgs,
	RunE: runStudy,
}

func init() {
	rootCmd.AddCommand(studyCmd)

	studyCoef.register(studyCmd)
	studyBounds.register(studyCmd)
	studyCmd.Flags().StringVar(&studyPDF, "pdf", "", "Exporter l'étude et la courbe en PDF")
	studyCmd.Flags().StringVar(&studyXLSX, "xlsx", "", "Exporter l'étude et les points en XLSX")
	studyCmd.Flags().BoolVar(&studyWindow, "window", false, "Tracer la courbe dans une fenêtre à part")
	studyCmd.Flags().BoolVar(&studyNoPlot, "no-graph", false, "Ne pas tracer la courbe")
}

func runStudy(cmd *cobra.Command, args []string) error {
	t, err := studyCoef.trinomial()
	if err != nil {
		return env.fail(err)
	}
	bounds, err := studyBounds.bounds()
	if err != nil {
		return env.fail(err)
	}

	session := env.session()
	r, fig, err := session.Study(t, bounds)
	if err != nil {
		return env.fail(err)
	}
	if _, err := r.WriteTo(os.Stdout); err != nil {
		return err
	}

	if studyPDF != "" {
		err := writeFile(exportPath(studyPDF), func(w io.Writer) error {
			return export.WritePDF(w, r, fig, env.msgs)
		})
		if err != nil {
			return env.fail(err)
		}
	}
	if studyXLSX != "" {
		err := writeFile(exportPath(studyXLSX), func(w io.Writer) error {
			return export.WriteXLSX(w, r, fig, env.msgs)
		})
		if err != nil {
			return env.fail(err)
		}
	}

	switch {
	case studyNoPlot:
	case studyWindow:
		g := env.cfg.Graph
		if err := window.Show(fig, window.Options{Width: g.WindowWidth, Height: g.WindowHeight}); err != nil {
			return env.fail(err)
		}
	default:
		fmt.Println()
		fmt.Println(session.Graph(fig))
	}
	return nil
}
