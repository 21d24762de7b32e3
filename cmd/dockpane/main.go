package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/dockpane/internal/config"
	"github.com/bnema/dockpane/internal/domain/entity"
	"github.com/bnema/dockpane/internal/logging"
	"github.com/bnema/dockpane/internal/ui/dock"
	"github.com/bnema/dockpane/internal/ui/windowing"
)

var (
	configPath string
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "dockpane",
	Short: "Docking window layout engine",
	Long: `dockpane drives the docking engine against an in-memory windowing
backend: it builds a layout, floats and re-docks nodes, and prints the
resulting content tree. Toolkit integrations embed the engine instead.`,
	RunE: runDemo,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: XDG config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (console|json)")
}

func runDemo(cmd *cobra.Command, _ []string) error {
	mgr, err := config.NewManager(configPath)
	if err != nil {
		return fmt.Errorf("config manager: %w", err)
	}
	cfg, err := mgr.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: logging.DefaultConfig().TimeFormat,
	}
	if logLevel != "" {
		logCfg.Level = logging.ParseLevel(logLevel)
	}
	if logFormat != "" {
		logCfg.Format = logFormat
	}
	logger := logging.New(logCfg)
	ctx := logging.WithContext(cmd.Context(), logger)

	svc := windowing.NewStubService()
	host := svc.CreateWindow(windowing.StyleDecorated)
	host.SetBounds(entity.Rect{X: 100, Y: 100, W: 1280, H: 800})
	host.SetTitle("dockpane demo")
	host.Show()

	pane := dock.NewDockPane(ctx, svc,
		dock.WithHostWindow(host),
		dock.WithConfig(cfg),
		dock.WithBounds(entity.Rect{W: 1280, H: 800}),
	)

	editor := newDemoNode(ctx, svc, "editor", "Editor", 600, 500)
	files := newDemoNode(ctx, svc, "files", "Files", 220, 500)
	output := newDemoNode(ctx, svc, "output", "Output", 600, 180)
	search := newDemoNode(ctx, svc, "search", "Search", 600, 180)

	pane.DockAt(editor, entity.DockLeft)
	files.Dock(pane, entity.DockLeft, editor)
	output.Dock(pane, entity.DockBottom, editor)
	search.Dock(pane, entity.DockCenter, output)

	logger.Info().Msg("initial layout")
	printTree(cmd, pane.Root(), 0)

	// Tear one node out and bring it back.
	output.Float()
	logger.Info().
		Interface("bounds", output.FloatingWindow().Bounds()).
		Msg("output floated")
	printTree(cmd, pane.Root(), 0)

	output.DockBack()
	logger.Info().Msg("output docked back")
	printTree(cmd, pane.Root(), 0)

	return nil
}

func newDemoNode(ctx context.Context, svc windowing.Service, name, title string, w, h float64) *dock.DockNode {
	content := dock.LoadContent(ctx, func() (dock.Content, error) {
		return dock.SizedContent{Width: w, Height: h}, nil
	})
	return dock.NewDockNode(ctx, svc, content, name, title)
}

func printTree(cmd *cobra.Command, n dock.TreeNode, depth int) {
	indent := strings.Repeat("  ", depth)
	switch t := n.(type) {
	case *dock.SplitContainer:
		cmd.Printf("%ssplit[%s] dividers=%v\n", indent, t.Orientation(), t.Dividers())
		for _, child := range t.ChildNodes() {
			printTree(cmd, child, depth+1)
		}
	case *dock.TabContainer:
		cmd.Printf("%stabs selected=%d\n", indent, t.SelectedIndex())
		for _, child := range t.ChildNodes() {
			printTree(cmd, child, depth+1)
		}
	case *dock.DockNode:
		cmd.Printf("%snode %q\n", indent, t.Title())
	case nil:
		cmd.Printf("%s(empty)\n", indent)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
