package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/msto63/trinom/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Menu interactif en mode ligne",
	Long: `Affiche le menu principal et lit les réponses ligne par ligne sur
l'entrée standard. Convient aussi aux réponses redirigées depuis un fichier.

Exemple :
  printf '4\n2\n1\n3\n5\n0\n0\n' | trinom shell`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return shell.New(env.session(), os.Stdin, os.Stdout).Run(ctx)
}
