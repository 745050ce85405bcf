package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"rf-heatmap.klederson.com/internal/app"
	"rf-heatmap.klederson.com/internal/config"
	"rf-heatmap.klederson.com/internal/coverage"
	"rf-heatmap.klederson.com/internal/emitter"
	"rf-heatmap.klederson.com/internal/export"
	"rf-heatmap.klederson.com/internal/scene"
	"rf-heatmap.klederson.com/internal/server"
	"rf-heatmap.klederson.com/internal/store"
)

var (
	flagScene     string
	flagSceneDB   string
	flagPrefix    string
	flagParams    string
	flagMaxRange  float64
	flagMinRange  float64
	flagPoints    int
	flagPointSize float64

	flagHTML   string
	flagOut    string
	flagRunsDB string
	flagListen string
)

var log = logrus.New()

func main() {
	rootCmd := &cobra.Command{
		Use:   "rf-heatmap",
		Short: "RF Heatmap - deterministic signal coverage maps around scene towers",
		Long: `RF Heatmap discovers tower emitters in a scene description, samples
omnidirectional coverage points in concentric rings around each one, scores
them with a linear signal falloff model and colors them red (weak) through
yellow to green (strong).

The root command opens an interactive terminal heatmap with live-tunable
parameters. Use "report" for a one-shot textual summary or "serve" to
expose the engine over HTTP. Without --scene or --scene-db a built-in demo
scene is used.`,
		RunE: runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagScene, "scene", "", "Path to a JSON scene file")
	pf.StringVar(&flagSceneDB, "scene-db", "", "Path to a SQLite scene inventory")
	pf.StringVar(&flagPrefix, "prefix", emitter.DefaultPrefix, "Emitter name prefix (case-insensitive)")
	pf.StringVar(&flagParams, "params", "", "Path to a JSON sample parameters file")
	pf.Float64Var(&flagMaxRange, "max-range", coverage.DefaultMaxRange, "Maximum signal range in meters")
	pf.Float64Var(&flagMinRange, "min-range", coverage.DefaultMinRange, "Minimum signal range in meters")
	pf.IntVar(&flagPoints, "points", coverage.DefaultPointsPerEmitter, "Sample points per emitter")
	pf.Float64Var(&flagPointSize, "point-size", coverage.DefaultPointSize, "Point size hint for renderers")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Run one coverage pass and print the statistics summary",
		RunE:  runReport,
	}
	reportCmd.Flags().StringVar(&flagHTML, "html", "", "Write an HTML scatter heatmap to this path")
	reportCmd.Flags().StringVar(&flagOut, "out", "", "Write the point/color/size stream JSON to this path")
	reportCmd.Flags().StringVar(&flagRunsDB, "db", "", "Record the run in this SQLite history database")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve coverage runs over HTTP",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&flagListen, "listen", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&flagRunsDB, "db", "", "Record runs in this SQLite history database")

	rootCmd.AddCommand(reportCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// sceneSource picks the scene backend from flags; the demo layout is the
// fallback when neither a file nor a database is configured.
func sceneSource() (scene.Source, string, func(), error) {
	switch {
	case flagScene != "":
		return scene.NewFileSource(flagScene), flagScene, func() {}, nil
	case flagSceneDB != "":
		src, err := scene.OpenSQLite(flagSceneDB)
		if err != nil {
			return nil, "", nil, err
		}
		return src, flagSceneDB, func() { src.Close() }, nil
	default:
		return scene.NewDemoSource(), "demo", func() {}, nil
	}
}

// params merges the optional params file with command-line overrides.
func params(cmd *cobra.Command) (coverage.Params, error) {
	p := coverage.DefaultParams()
	if flagParams != "" {
		loaded, err := config.LoadParams(flagParams)
		if err != nil {
			return p, err
		}
		p = loaded
	}
	if cmd.Flags().Changed("max-range") {
		p.MaxRange = flagMaxRange
	}
	if cmd.Flags().Changed("min-range") {
		p.MinRange = flagMinRange
	}
	if cmd.Flags().Changed("points") {
		p.PointsPerEmitter = flagPoints
	}
	if cmd.Flags().Changed("point-size") {
		p.PointSize = flagPointSize
	}
	return p, p.Validate()
}

func buildEngine() (*coverage.Engine, string, func(), error) {
	src, name, cleanup, err := sceneSource()
	if err != nil {
		return nil, "", nil, err
	}
	directory := emitter.NewDirectory(src, flagPrefix)
	return coverage.NewEngine(directory), name, cleanup, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	p, err := params(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	engine, name, cleanup, err := buildEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	defer cleanup()

	program := tea.NewProgram(
		app.New(engine, p, name),
		tea.WithAltScreen(),
	)
	_, err = program.Run()
	return err
}

func runReport(cmd *cobra.Command, args []string) error {
	p, err := params(cmd)
	if err != nil {
		return err
	}

	engine, name, cleanup, err := buildEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	log.WithFields(logrus.Fields{
		"scene":     name,
		"min_range": p.MinRange,
		"max_range": p.MaxRange,
		"points":    p.PointsPerEmitter,
	}).Info("running coverage pass")

	res, err := engine.Run(p)
	if err != nil {
		return err
	}

	for _, em := range res.Emitters {
		log.WithFields(logrus.Fields{
			"emitter": em.Name,
			"x":       em.Position.X,
			"y":       em.Position.Y,
			"z":       em.Position.Z,
		}).Info("found emitter")
	}
	if len(res.Emitters) == 0 {
		log.Warn("no visible emitters found; coverage map is empty")
	}

	fmt.Print(export.Summary(res))

	if flagOut != "" {
		f, err := os.Create(flagOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		if err := export.WriteJSON(f, res); err != nil {
			return err
		}
		log.WithField("path", flagOut).Info("wrote point stream")
	}

	if flagHTML != "" {
		f, err := os.Create(flagHTML)
		if err != nil {
			return fmt.Errorf("failed to create HTML file: %w", err)
		}
		defer f.Close()
		if err := export.WriteHTML(f, res); err != nil {
			return err
		}
		log.WithField("path", flagHTML).Info("wrote HTML heatmap")
	}

	if flagRunsDB != "" {
		runs, err := store.Open(flagRunsDB)
		if err != nil {
			return err
		}
		defer runs.Close()
		id, err := runs.Record(res)
		if err != nil {
			return err
		}
		log.WithField("run_id", id).Info("recorded run")
	}

	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	p, err := params(cmd)
	if err != nil {
		return err
	}

	engine, name, cleanup, err := buildEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	var runs *store.RunStore
	if flagRunsDB != "" {
		runs, err = store.Open(flagRunsDB)
		if err != nil {
			return err
		}
		defer runs.Close()
	}

	srv := server.New(engine, runs, p, log)
	log.WithFields(logrus.Fields{
		"listen": flagListen,
		"scene":  name,
	}).Info("starting coverage server")
	return srv.Router().Run(flagListen)
}
