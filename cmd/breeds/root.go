package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"dog-breeds-dashboard/internal/adapters/dogapi"
	"dog-breeds-dashboard/internal/domain/breeds"
	"dog-breeds-dashboard/internal/domain/dashboard"
	"dog-breeds-dashboard/internal/platform/charts"
	"dog-breeds-dashboard/internal/platform/config"
	"dog-breeds-dashboard/internal/platform/logger"

	"github.com/spf13/cobra"
)

type globalOptions struct {
	output       string
	baseURL      string
	apiKey       string
	apiKeyHeader string
	timeout      time.Duration
	verbose      bool
}

type filterOptions struct {
	search string
	group  string
}

// sourceFactory permite inyectar una fuente falsa en los tests.
type sourceFactory func(opts globalOptions, log logger.Logger) (breeds.Source, error)

func defaultSource(opts globalOptions, log logger.Logger) (breeds.Source, error) {
	return dogapi.NewClient(dogapi.Config{
		BaseURL:      opts.baseURL,
		APIKey:       opts.apiKey,
		APIKeyHeader: opts.apiKeyHeader,
		Timeout:      opts.timeout,
		Logger:       log,
	})
}

func newRootCmd(newSource sourceFactory) *cobra.Command {
	opts := globalOptions{}

	// los defaults de los flags salen del mismo entorno que lee el server
	env, envErr := config.LoadDogAPI()
	if envErr != nil {
		env = config.DogAPI{
			BaseURL:   dogapi.DefaultBaseURL,
			KeyHeader: dogapi.DefaultAPIKeyHeader,
			Timeout:   dogapi.DefaultTimeout,
		}
	}

	root := &cobra.Command{
		Use:           "breeds",
		Short:         "Consulta razas de The Dog API: listado, estadísticas y gráficos",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if envErr != nil {
				return envErr
			}
			if _, err := parseFormat(opts.output); err != nil {
				return err
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.output, "output", "o", string(formatText), "formato de salida: text|json|yaml")
	pf.StringVar(&opts.baseURL, "base-url", env.BaseURL, "URL base de la API (DOG_API_BASE_URL)")
	pf.StringVar(&opts.apiKey, "api-key", env.APIKey, "API key, opcional (DOG_API_KEY)")
	pf.StringVar(&opts.apiKeyHeader, "api-key-header", env.KeyHeader, "header de la API key (DOG_API_KEY_HEADER)")
	pf.DurationVar(&opts.timeout, "timeout", env.Timeout, "timeout por request (DOG_API_TIMEOUT)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log de debug a stderr")

	source := func(cmd *cobra.Command) (breeds.Source, error) {
		lvl := logger.Warn
		if opts.verbose {
			lvl = logger.Debug
		}
		log := logger.New(logger.Options{Level: lvl, App: "breeds", Out: cmd.ErrOrStderr()})
		return newSource(opts, log)
	}

	root.AddCommand(
		newListCmd(&opts, source),
		newStatsCmd(&opts, source),
		newGroupsCmd(&opts, source),
		newShowCmd(&opts, source),
		newChartCmd(source),
	)
	return root
}

type sourceFn func(cmd *cobra.Command) (breeds.Source, error)

func addFilterFlags(cmd *cobra.Command, f *filterOptions) {
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "substring del nombre")
	cmd.Flags().StringVarP(&f.group, "group", "g", breeds.GroupAll, "grupo exacto (All = todos)")
}

// fetchFiltered trae el listado una vez y aplica el filtro.
func fetchFiltered(cmd *cobra.Command, source sourceFn, f filterOptions) (all, filtered []breeds.Breed, err error) {
	src, err := source(cmd)
	if err != nil {
		return nil, nil, err
	}
	all, err = src.ListBreeds(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	return all, breeds.Filter(all, f.search, f.group), nil
}

func newListCmd(opts *globalOptions, source sourceFn) *cobra.Command {
	f := filterOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista razas (con búsqueda y filtro de grupo)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, filtered, err := fetchFiltered(cmd, source, f)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, breeds.ToResponses(filtered), func(w io.Writer) error {
				return writeBreedTable(w, filtered)
			})
		},
	}
	addFilterFlags(cmd, &f)
	return cmd
}

type statsOutput struct {
	Search         string `json:"search" yaml:"search"`
	Group          string `json:"group" yaml:"group"`
	breeds.Summary `yaml:",inline"`
}

func newStatsCmd(opts *globalOptions, source sourceFn) *cobra.Command {
	f := filterOptions{}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Estadísticas: total, lifespan promedio, rango y grupo más común",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, filtered, err := fetchFiltered(cmd, source, f)
			if err != nil {
				return err
			}
			out := statsOutput{Search: f.search, Group: f.group, Summary: breeds.Summarize(filtered)}
			return render(cmd.OutOrStdout(), opts.output, out, func(w io.Writer) error {
				return writeStats(w, out.Summary)
			})
		},
	}
	addFilterFlags(cmd, &f)
	return cmd
}

func newGroupsCmd(opts *globalOptions, source sourceFn) *cobra.Command {
	f := filterOptions{}
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Cantidad de razas por grupo (top 10)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, filtered, err := fetchFiltered(cmd, source, f)
			if err != nil {
				return err
			}
			counts := breeds.GroupCounts(filtered)
			return render(cmd.OutOrStdout(), opts.output, counts, func(w io.Writer) error {
				return writeGroupTable(w, counts)
			})
		},
	}
	addFilterFlags(cmd, &f)
	return cmd
}

func newShowCmd(opts *globalOptions, source sourceFn) *cobra.Command {
	return &cobra.Command{
		Use:   "show <breed-id>",
		Short: "Detalle de una raza",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := source(cmd)
			if err != nil {
				return err
			}
			b, err := breeds.NewService(src).Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			detail := breeds.ToDetailResponse(b)
			return render(cmd.OutOrStdout(), opts.output, detail, func(w io.Writer) error {
				return writeDetail(w, detail)
			})
		},
	}
}

func newChartCmd(source sourceFn) *cobra.Command {
	f := filterOptions{}
	var (
		out    string
		width  int
		height int
	)
	cmd := &cobra.Command{
		Use:       "chart <groups|height-weight>",
		Short:     "Renderiza un gráfico PNG",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"groups", "height-weight"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(out) == "" {
				return errors.New("--out is required")
			}
			_, filtered, err := fetchFiltered(cmd, source, f)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			opts := charts.Options{Width: width, Height: height}
			switch args[0] {
			case "groups":
				opts.Title = "Breeds per Group (Top 10)"
				opts.YName = "Breeds"
				err = charts.BarPNG(&buf, dashboard.GroupBars(breeds.GroupCounts(filtered)), opts)
			default:
				opts.Title = "Height vs Weight"
				opts.XName = "Weight (kg)"
				opts.YName = "Height (cm)"
				err = charts.ScatterPNG(&buf, "Breeds", dashboard.HeightWeightPoints(breeds.HeightWeightPairs(filtered)), opts)
			}
			if err != nil {
				return err
			}

			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, buf.Len())
			return err
		},
	}
	addFilterFlags(cmd, &f)
	cmd.Flags().StringVar(&out, "out", "", "archivo PNG de salida")
	cmd.Flags().IntVar(&width, "width", charts.DefaultWidth, "ancho en px")
	cmd.Flags().IntVar(&height, "height", charts.DefaultHeight, "alto en px")
	return cmd
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(defaultSource)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
