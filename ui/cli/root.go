// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.

// root.go sets up the cobra root command: configuration loading, logging and
// i18n in PersistentPreRunE, and the interactive editor as the default action.

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/toeirei/keyeditor/core/panel"
	"github.com/toeirei/keyeditor/core/registry"
	"github.com/toeirei/keyeditor/core/render"
	"github.com/toeirei/keyeditor/internal/config"
	"github.com/toeirei/keyeditor/internal/i18n"
	"github.com/toeirei/keyeditor/internal/logging"
	"github.com/toeirei/keyeditor/ui/tui"
	"github.com/toeirei/keyeditor/ui/tui/models/views/popover"
)

// app carries the state shared by the commands of one root command.
type app struct {
	cfg        config.Config
	configPath string
	logFile    io.Closer
}

// isTerminal reports whether w is an interactive terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// runTUI starts the interactive editor; replaced in tests.
var runTUI = tui.Run

// Execute runs the CLI entrypoint. The cmd/keyeditor main package should
// call this function and handle process exit.
func Execute() error {
	return runRoot(newRootCmd())
}

// runRoot executes cmd and releases the resources setup acquired, also when
// a command fails.
func runRoot(cmd *cobra.Command, a *app) error {
	defer a.teardown()
	return cmd.Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

func (a *app) setup(cmd *cobra.Command, interactive bool) error {
	explicitPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	a.cfg, a.configPath, err = config.LoadConfig[config.Config](cmd, config.Defaults(), explicitPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	var w io.Writer = cmd.ErrOrStderr()
	logPath := a.cfg.Log.File
	if logPath == "" && interactive && a.cfg.Log.Level == "debug" {
		logPath = "keyeditor.log"
	}
	switch {
	case logPath != "":
		f, err := logging.OpenFile(logPath)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logFile, w = f, f
	case interactive:
		// the alt screen owns the terminal
		w = io.Discard
	}
	if err := logging.Setup(a.cfg.Log.Level, w); err != nil {
		return err
	}

	i18n.Init(a.cfg.Language)
	logging.Debugf("config loaded from %q, language %s", a.configPath, i18n.Lang())
	return nil
}

func (a *app) teardown() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

// newController builds the panel for the configured images directory.
func (a *app) newController() (*panel.Controller, error) {
	renderer, err := render.New(render.WithImagesDir(a.cfg.Images.Dir))
	if err != nil {
		return nil, err
	}
	return panel.New(registry.Default(), renderer, panel.WithImagesDir(a.cfg.Images.Dir))
}

// newRootCmd creates and configures a new root cobra command and the state
// its subcommands share. Every call returns an independent command tree,
// which keeps tests isolated.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	defaults := config.Defaults()

	cmd := &cobra.Command{
		Use:   "keyeditor",
		Short: "Keyeditor assigns behavior to a single keyboard key.",
		Long: `Keyeditor is the terminal rendition of a keyboard configuration popover.
Pick what a key does (keypress, layer switch, mouse action, macro, keymap
switch or nothing) and copy the resulting assignment.

Running without a subcommand launches the interactive editor when stdout is
a terminal, and prints the keypress panel otherwise.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			interactive := cmd.Root() == cmd && isTerminal(cmd.OutOrStdout())
			return a.setup(cmd, interactive)
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := a.newController()
			if err != nil {
				return err
			}
			defer ctrl.Close()

			if !isTerminal(cmd.OutOrStdout()) {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), ctrl.Markup())
				return err
			}
			return runTUI(ctrl, compositeVersion(nil),
				popover.WithDropdownSize(a.cfg.Dropdown.Width, a.cfg.Dropdown.Height))
		},
	}
	cmd.Version = compositeVersion(nil)

	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("language", defaults["language"].(string), fmt.Sprintf("UI language %q", i18n.Languages()))
	cmd.PersistentFlags().String("log.level", defaults["log.level"].(string), "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log.file", defaults["log.file"].(string), "write logs to this file")
	cmd.PersistentFlags().String("images.dir", defaults["images.dir"].(string), "base directory of preview images")

	cmd.AddCommand(
		newRenderCmd(a),
		newBlocksCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return cmd, a
}
