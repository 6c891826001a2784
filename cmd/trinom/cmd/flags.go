package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	qerr "github.com/msto63/trinom/pkg/core/error"
	qlog "github.com/msto63/trinom/pkg/core/log"

	"github.com/msto63/trinom/internal/sampler"
	"github.com/msto63/trinom/internal/shell"
	"github.com/msto63/trinom/internal/trinomial"
)

// Numbers are read as strings so that "1,5" is accepted like in the menu
// and a malformed value reports an invalid input error.

type coefficientFlags struct {
	a, b, c string
}

func (f *coefficientFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.a, "a", "a", "", "Coefficient a")
	cmd.Flags().StringVarP(&f.b, "b", "b", "", "Coefficient b")
	cmd.Flags().StringVarP(&f.c, "c", "c", "", "Coefficient c")
	for _, name := range []string{"a", "b", "c"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

func (f *coefficientFlags) trinomial() (trinomial.Trinomial, error) {
	nums, err := parseNumbers(f.a, f.b, f.c)
	if err != nil {
		return trinomial.Trinomial{}, err
	}
	return trinomial.New(nums[0], nums[1], nums[2]), nil
}

type boundFlags struct {
	xmin, xmax, points string
}

func (f *boundFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.xmin, "xmin", "", "Borne inférieure du tracé (défaut : configuration)")
	cmd.Flags().StringVar(&f.xmax, "xmax", "", "Borne supérieure du tracé (défaut : configuration)")
	cmd.Flags().StringVar(&f.points, "points", "", "Nombre de points tracés (défaut : configuration)")
}

func (f *boundFlags) bounds() (sampler.Bounds, error) {
	return shell.ParseBounds(f.xmin, f.xmax, f.points, env.bounds())
}

func parseNumbers(texts ...string) ([3]float64, error) {
	var out [3]float64
	for i, text := range texts {
		v, err := trinomial.ParseNumber(text)
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

// exportPath places relative paths in the configured export directory.
func exportPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(env.cfg.Export.Dir, path)
}

// writeFile creates path and fills it with write. The file is removed when
// write fails.
func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return qerr.Wrap(err, "cannot create export directory").
			WithCode(qerr.CodeExportFailed).
			WithDetail("path", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return qerr.Wrap(err, "cannot create file").
			WithCode(qerr.CodeExportFailed).
			WithDetail("path", path)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return qerr.Wrap(err, "cannot close file").
			WithCode(qerr.CodeExportFailed).
			WithDetail("path", path)
	}
	env.logger.Info("file written", qlog.String("path", path))
	return nil
}
