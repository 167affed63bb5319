package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/dutch-casa/uav-swarm-simulator/internal/config"
	"github.com/dutch-casa/uav-swarm-simulator/internal/export"
	"github.com/dutch-casa/uav-swarm-simulator/internal/gridmap"
	"github.com/dutch-casa/uav-swarm-simulator/internal/metrics"
	"github.com/dutch-casa/uav-swarm-simulator/internal/pipeline"
	"github.com/dutch-casa/uav-swarm-simulator/internal/render"
	"github.com/dutch-casa/uav-swarm-simulator/internal/storage"
	"github.com/dutch-casa/uav-swarm-simulator/internal/trace"
	"github.com/dutch-casa/uav-swarm-simulator/internal/viz"
)

var (
	dataDir    string
	animate    bool
	mapFile    string
	configFile string
	themeName  string
	frameRate  int
)

// main is the entry point for the swarmviz CLI. The root command takes
// the trace, metrics and output paths and renders the figures; it
// exits with status 1 when the trace cannot be loaded or rendering
// fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "swarmviz [trace.csv] [metrics.json] [output.png]",
		Short: "render swarm simulation traces",
		Args:  cobra.ExactArgs(3),
		RunE:  runRender,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".swarmviz", "data directory for render reports")
	rootCmd.Flags().BoolVar(&animate, "animate", false, "also write an animated gif")
	rootCmd.Flags().StringVar(&mapFile, "map", "", "obstacle map file to overlay")
	rootCmd.Flags().StringVar(&configFile, "config", "", "render config file path (yaml)")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "color theme (dark, light, paper)")

	previewCmd := &cobra.Command{
		Use:   "preview [trace.csv]",
		Short: "draw final paths inline in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().StringVar(&mapFile, "map", "", "obstacle map file to overlay")

	playCmd := &cobra.Command{
		Use:   "play [trace.csv]",
		Short: "interactive tick-by-tick playback",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlay,
	}
	playCmd.Flags().StringVar(&mapFile, "map", "", "obstacle map file to overlay")
	playCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "playback frame rate")

	statsCmd := &cobra.Command{
		Use:   "stats [trace.csv] [metrics.json]",
		Short: "print the metrics summary and activity graph",
		Args:  cobra.ExactArgs(2),
		RunE:  runStats,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [trace.csv] [output.svg]",
		Short: "export final paths as svg",
		Args:  cobra.ExactArgs(2),
		RunE:  runExportSVG,
	}
	exportSVGCmd.Flags().StringVar(&mapFile, "map", "", "obstacle map file to overlay")
	exportSVGCmd.Flags().StringVar(&themeName, "theme", "", "color theme (dark, light, paper)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list past renders",
		RunE:  listReports,
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list available themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range render.ThemeNames() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(previewCmd, playCmd, statsCmd, exportSVGCmd, listCmd, themesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if themeName != "" {
		cfg.Theme = themeName
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = frameRate
	}
	return cfg, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	res, err := pipeline.Run(pipeline.Options{
		TracePath:   args[0],
		MetricsPath: args[1],
		MapPath:     mapFile,
		OutPath:     args[2],
		Animate:     animate,
		Config:      cfg,
	})
	if err != nil {
		return err
	}

	for _, w := range res.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	fmt.Printf("loaded %d trace records (%d agents, %d ticks)\n",
		res.Trace.Rows, res.Trace.NumAgents(), res.Trace.MaxTick+1)
	if res.Map != nil {
		fmt.Printf("loaded map: %dx%d with %d obstacles\n",
			res.Map.Width, res.Map.Height, len(res.Map.Obstacles))
	}
	for _, out := range res.Outputs {
		fmt.Printf("saved %s\n", out)
	}

	saveReport(res, args[0])
	return nil
}

// saveReport records the render in the history ledger; failures only
// warn since the figures are already on disk.
func saveReport(res *pipeline.Result, tracePath string) {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		fmt.Printf("warning: could not init data dir: %v\n", err)
		return
	}

	report := storage.Report{
		TracePath: tracePath,
		Agents:    res.Trace.NumAgents(),
		Ticks:     res.Trace.MaxTick + 1,
		Outputs:   res.Outputs,
	}
	if res.Summary != nil {
		report.Score = res.Summary.Score()
		report.HasScore = true
	}
	if _, err := st.Save(report); err != nil {
		fmt.Printf("warning: could not save report: %v\n", err)
	}
}

func loadMapIfSet() *gridmap.Map {
	if mapFile == "" {
		return nil
	}
	m, err := gridmap.Load(mapFile)
	if err != nil {
		fmt.Printf("warning: could not load map %s: %v\n", mapFile, err)
		return nil
	}
	return m
}

func runPreview(cmd *cobra.Command, args []string) error {
	tr, err := trace.Load(args[0])
	if err != nil {
		return fmt.Errorf("load trace %s: %w", args[0], err)
	}
	fmt.Print(viz.Preview(tr, loadMapIfSet()))
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	tr, err := trace.Load(args[0])
	if err != nil {
		return fmt.Errorf("load trace %s: %w", args[0], err)
	}

	cfg := config.DefaultConfig()
	if cmd.Flags().Changed("fps") {
		cfg.FPS = frameRate
	}
	return viz.Play(tr, loadMapIfSet(), cfg)
}

func runStats(cmd *cobra.Command, args []string) error {
	tr, err := trace.Load(args[0])
	if err != nil {
		return fmt.Errorf("load trace %s: %w", args[0], err)
	}

	sum, err := metrics.Load(args[1])
	if err != nil {
		fmt.Printf("warning: could not load metrics %s: %v\n", args[1], err)
	}

	if sum != nil {
		for _, line := range sum.Report(tr.NumAgents()) {
			fmt.Println(line)
		}
		fmt.Println()
		fmt.Println(sum.ScoreLine())
	} else {
		fmt.Println("no metrics available")
	}

	// Active agent count over time
	data := make([]float64, tr.MaxTick+1)
	for tick := 0; tick <= tr.MaxTick; tick++ {
		data[tick] = float64(tr.ActiveAt(tick))
	}
	fmt.Println()
	graph := asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption("active agents per tick"))
	fmt.Println(graph)

	return nil
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	tr, err := trace.Load(args[0])
	if err != nil {
		return fmt.Errorf("load trace %s: %w", args[0], err)
	}

	theme := render.ThemeByName(themeName)
	svg := export.PathsToSVG(tr, loadMapIfSet(), theme)
	if svg == "" {
		return fmt.Errorf("nothing to export: trace is empty")
	}

	if err := os.WriteFile(args[1], []byte(svg), 0644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	fmt.Printf("saved %s\n", args[1])
	return nil
}

func listReports(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	reports, err := st.List()
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Println("no renders found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tAGENTS\tTICKS\tSCORE\tOUTPUTS")
	for _, r := range reports {
		score := "-"
		if r.HasScore {
			score = fmt.Sprintf("%.0f", r.Score)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n",
			r.ID,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Agents,
			r.Ticks,
			score,
			strings.Join(r.Outputs, ","),
		)
	}
	return w.Flush()
}
