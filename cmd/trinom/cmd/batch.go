package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	qerr "github.com/msto63/trinom/pkg/core/error"

	"github.com/msto63/trinom/internal/export"
)

var batchOutput string

var batchCmd = &cobra.Command{
	Use:   "batch <classeur.xlsx>",
	Short: "Étude de chaque ligne d'un classeur",
	Long: `Lit les coefficients a, b et c dans les trois premières colonnes de la
première feuille du classeur et écrit un classeur récapitulatif : degré,
discriminant, racines, α, β et parité de chaque fonction. Une première ligne
non numérique est ignorée comme en-tête.

Exemple :
  trinom batch fonctions.xlsx -o resultats.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Classeur récapitulatif (défaut : <classeur>-etude.xlsx)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return env.fail(qerr.Wrap(err, "cannot open workbook").
			WithCode(qerr.CodeImportFailed).
			WithDetail("path", args[0]))
	}
	defer in.Close()

	result, err := export.ReadBatch(in, env.logger)
	if err != nil {
		return env.fail(err)
	}

	out := batchOutput
	if out == "" {
		base := filepath.Base(args[0])
		out = strings.TrimSuffix(base, filepath.Ext(base)) + "-etude.xlsx"
	}
	out = exportPath(out)

	err = writeFile(out, func(w io.Writer) error {
		return export.WriteBatch(w, result)
	})
	if err != nil {
		return env.fail(err)
	}

	fmt.Printf("%d ligne(s) étudiée(s), %d rejetée(s) : %s\n", len(result.Rows)-result.Failed, result.Failed, out)
	return nil
}
