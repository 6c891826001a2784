package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/trinom/pkg/core/config"
	"github.com/msto63/trinom/pkg/core/i18n"
	qlog "github.com/msto63/trinom/pkg/core/log"
	"github.com/msto63/trinom/pkg/core/logging"

	"github.com/msto63/trinom/internal/sampler"
	"github.com/msto63/trinom/internal/shell"
	"github.com/msto63/trinom/locales"
)

var (
	cfgFile string
	locale  string
	verbose bool
)

// app holds what every command needs once flags and configuration are read
type app struct {
	cfg      *config.Config
	logger   *qlog.Logger
	msgs     *i18n.Manager
	closeLog func() error
}

var env *app

var rootCmd = &cobra.Command{
	Use:   "trinom",
	Short: "trinom - Études de fonctions trinômes du second degré",
	Long: `trinom étudie les fonctions trinômes f(x)=ax²+bx+c : discriminant,
racines, formes factorisée et canonique, variations, signe, parité et
courbe représentative.

Sans sous-commande, le menu interactif s'ouvre dans le terminal.

Commandes :
  shell    - Menu en mode ligne (entrée standard)
  study    - Étude complète, export PDF/XLSX
  eval     - Image de réels sous forme développée, canonique ou factorisée
  plot     - Courbe représentative
  batch    - Étude de chaque ligne d'un classeur XLSX`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runTUI,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Fichier de configuration (défaut : ./trinom.toml)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "Langue des messages (fr, en)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Journal détaillé sur la sortie d'erreur")
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromEnv(cfgFile)
	if err != nil {
		printError("configuration", err)
		return err
	}
	if locale != "" {
		cfg.General.Locale = locale
	}

	logger, closeLog, err := logging.NewLogger(logging.LoggerConfig{
		Name:    "trinom",
		Level:   cfg.General.LogLevel,
		Format:  cfg.General.LogFormat,
		File:    cfg.General.LogFile,
		Verbose: verbose,
		Stderr:  os.Stderr,
	})
	if err != nil {
		printError("journal", err)
		return err
	}

	msgs, err := i18n.New(i18n.Options{DefaultLocale: "fr", FS: locales.FS})
	if err != nil {
		closeLog()
		return err
	}
	if err := msgs.SetLocale(cfg.General.Locale); err != nil {
		closeLog()
		printError("langue", err)
		return err
	}

	env = &app{cfg: cfg, logger: logger, msgs: msgs, closeLog: closeLog}
	logger.Debug("configuration loaded",
		qlog.String("source", cfg.Source()),
		qlog.String("locale", cfg.General.Locale),
		qlog.String("command", cmd.Name()))
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if env == nil {
		return nil
	}
	return env.closeLog()
}

// bounds returns the configured plotting window.
func (a *app) bounds() sampler.Bounds {
	g := a.cfg.Graph
	return sampler.Bounds{XMin: g.XMin, XMax: g.XMax, Points: g.Points}
}

func (a *app) session() *shell.Session {
	g := a.cfg.Graph
	return shell.NewSession(a.msgs, a.logger, shell.Options{
		Defaults:       a.bounds(),
		TerminalWidth:  g.TerminalWidth,
		TerminalHeight: g.TerminalHeight,
	})
}

// fail prints the localized message of err, logs it and returns it.
func (a *app) fail(err error) error {
	fmt.Fprintln(os.Stderr, a.session().Fail(err))
	return err
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Erreur : %s : %v\n", msg, err)
}
