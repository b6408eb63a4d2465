// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/toeirei/keyeditor/core/model"
	"github.com/toeirei/keyeditor/core/registry"
	"github.com/toeirei/keyeditor/internal/config"
	"github.com/toeirei/keyeditor/internal/i18n"
	"github.com/toeirei/keyeditor/internal/logging"
)

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render [block...]",
		Short: "Print the static markup of content blocks",
		Long: `Render prints the markup of the given content blocks with every option
listed. Without arguments the tab bar and the keypress block are printed.`,
		Example: "  keyeditor render mouse switchKeymap",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := a.newController()
			if err != nil {
				return err
			}
			defer ctrl.Close()

			if len(args) == 0 {
				tabs, err := ctrl.RenderTabs()
				if err != nil {
					return fmt.Errorf("render tabs: %w", err)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", tabs, ctrl.Markup())
				return err
			}
			for i, id := range args {
				markup, err := ctrl.Render(model.ContentBlockID(id))
				if err != nil {
					return fmt.Errorf("render %s: %w", id, err)
				}
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				fmt.Fprintln(cmd.OutOrStdout(), markup)
			}
			return nil
		},
	}
}

func newBlocksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "blocks",
		Short: "List the content blocks in tab order with their option count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.Default()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, tab := range reg.Tabs() {
				block, err := reg.Block(tab.Content)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s %s\t%d\n", tab.Content, tab.Icon, i18n.T(tab.Title), len(block.Options()))
			}
			return w.Flush()
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	var write, system bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Config prints the configuration after defaults, config file, environment
and flags were applied. With --write it is stored as keyeditor.yaml in the
user (or, with --system, the system) config directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write {
				path, err := config.WriteConfigFile(&a.cfg, system)
				if err != nil {
					return err
				}
				logging.Infof("wrote config file %s", path)
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
				return err
			}
			data, err := config.Marshal(&a.cfg)
			if err != nil {
				return err
			}
			if a.configPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", a.configPath)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "write the configuration file")
	cmd.Flags().BoolVar(&system, "system", false, "with --write, use the system config directory")
	return cmd
}
