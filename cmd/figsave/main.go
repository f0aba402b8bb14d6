package main

import (
	"fmt"
	"os"

	figsave "github.com/hellenic-development/figsave"
	"github.com/hellenic-development/figsave/pkg/chartcsv"
	"github.com/hellenic-development/figsave/pkg/export"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	inputFile   string
	outputPath  string
	formats     string
	dpi         int
	quality     int
	transparent bool
	bboxMode    string
	padding     float64
	background  string
	width       int
	height      int
	title       string
	withLegend  bool
	legendPath  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "figsave",
		Short: "Render CSV data to chart files in multiple formats",
		Long:  "A tool to plot CSV data with go-chart and save the figure (and optionally its legend) as png, jpeg, pdf, svg, tiff or bmp in one run",
		Run:   run,
	}

	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input CSV file: header row, x column first, one series per further column (required)")
	rootCmd.Flags().StringVarP(&outputPath, "path", "p", "figure", "Output path without extension")
	rootCmd.Flags().StringVarP(&formats, "formats", "f", "png", "Comma-separated output formats (e.g. \"png,pdf,svg\")")
	rootCmd.Flags().IntVar(&dpi, "dpi", 300, "Resolution in dots per inch")
	rootCmd.Flags().IntVar(&quality, "quality", 0, "JPEG quality 1-100 (0 uses the encoder default)")
	rootCmd.Flags().BoolVar(&transparent, "transparent", false, "Transparent background for formats that support it")
	rootCmd.Flags().StringVar(&bboxMode, "bbox", "tight", "Bounding box mode: tight or fixed")
	rootCmd.Flags().Float64Var(&padding, "padding", 0.1, "Margin in inches around tight bounding boxes")
	rootCmd.Flags().StringVar(&background, "background", "", "Background color as hex (e.g. \"#ffffff\")")
	rootCmd.Flags().IntVar(&width, "width", 0, "Canvas width in pixels (0 uses the chart default)")
	rootCmd.Flags().IntVar(&height, "height", 0, "Canvas height in pixels (0 uses the chart default)")
	rootCmd.Flags().StringVarP(&title, "title", "t", "", "Chart title")
	rootCmd.Flags().BoolVar(&withLegend, "legend", false, "Also export the legend block to its own file")
	rootCmd.Flags().StringVar(&legendPath, "legend-path", "", "Output path for the legend, without extension (default <path>_legend)")

	rootCmd.MarkFlagRequired("input")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("figsave version %s\n", figsave.Version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n📈 figsave")
	cyan.Println("==========")
	cyan.Println()

	var bbox export.BBoxMode
	switch bboxMode {
	case "tight":
		bbox = export.BBoxTight
	case "fixed":
		bbox = export.BBoxFixed
	default:
		red.Printf("Error: invalid bbox mode %q (must be tight or fixed)\n", bboxMode)
		os.Exit(1)
	}

	opts := figsave.Options{
		Path:        outputPath,
		Formats:     figsave.ParseFormats(formats),
		DPI:         dpi,
		Quality:     quality,
		Transparent: transparent,
		BBoxMode:    bbox,
		Padding:     padding,
		Logger:      &cliLogger{},
	}

	if background != "" {
		bg, err := figsave.ParseColor(background)
		if err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		opts.Background = bg
	}

	if width > 0 || height > 0 {
		opts.Extra = map[string]any{}
		if width > 0 {
			opts.Extra[export.OptionWidth] = width
		}
		if height > 0 {
			opts.Extra[export.OptionHeight] = height
		}
	}

	graph, err := chartcsv.LoadFile(inputFile)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	graph.Title = title

	opts.Source = graph
	paths, err := figsave.SaveFigure(opts)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cyan.Println("\n📊 Export Summary:")
	fmt.Printf("  • Series: %d\n", len(graph.Series))
	for _, p := range paths {
		fmt.Printf("  • %s\n", p)
	}

	if withLegend {
		lp := legendPath
		if lp == "" {
			lp = outputPath + "_legend"
		}

		legendOpts := opts
		legendOpts.Source = nil
		legendOpts.Path = lp

		legendPaths, err := figsave.SaveLegend(graph, legendOpts)
		if err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		for _, p := range legendPaths {
			fmt.Printf("  • %s\n", p)
		}
	}

	green.Printf("\n✨ Successfully exported %s\n\n", inputFile)
}

// cliLogger implements figsave.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
