package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eisachaudhary/portfolio/internal/config"
	"github.com/eisachaudhary/portfolio/internal/content"
	"github.com/eisachaudhary/portfolio/internal/logger"
	"github.com/eisachaudhary/portfolio/internal/site"
	"github.com/eisachaudhary/portfolio/internal/tui"
	"github.com/eisachaudhary/portfolio/internal/typewriter"
)

func newExportCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "export <dir>",
		Short: "Render the page and its assets into a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := export(cfg, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "exported to %s\n", args[0])
			return nil
		},
	}
}

// export writes index.html with the hero fully typed, the résumé and a copy of the static dir.
func export(cfg *config.Config, dir string) error {
	st, err := loadSite(cfg)
	if err != nil {
		return err
	}
	tmpl, err := site.Templates(cfg.GetTemplatesDir())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return err
	}
	if err := tmpl.ExecuteTemplate(f, "index.html", st.Page(site.PageState{Static: true})); err != nil {
		f.Close()
		return fmt.Errorf("render index.html: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(dir, strings.TrimPrefix(resumePath, "/")), []byte(st.Resume()), 0o644); err != nil {
		return fmt.Errorf("write resume: %w", err)
	}

	staticOut := filepath.Join(dir, "static")
	if err := os.RemoveAll(staticOut); err != nil {
		return err
	}
	if err := os.CopyFS(staticOut, os.DirFS(cfg.GetStaticDir())); err != nil {
		return fmt.Errorf("copy static assets: %w", err)
	}

	logger.L().Info("export.done", "dir", dir)
	return nil
}

func newValidateCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a content file (or CONTENT_FILE) for invalid levels and duplicate ids",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			path := cfg.GetContentFile()
			if len(args) == 1 {
				path = args[0]
			}
			p, err := content.Load(path)
			if err != nil {
				return err
			}
			// Load only validates overrides; check the defaults too.
			if err := p.Validate(); err != nil {
				return err
			}
			logStartupContent(logger.L(), p)
			fmt.Fprintf(c.OutOrStdout(), "ok: %d experiences, %d skill categories, %d projects\n",
				len(p.Experiences), len(p.Skills), len(p.Projects))
			return nil
		},
	}
}

func newTUICmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the portfolio in the terminal",
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := content.Load(cfg.GetContentFile())
			if err != nil {
				return err
			}
			return tui.Run(p, typewriter.Config{
				TypingInterval: cfg.GetTypingInterval(),
				CursorInterval: cfg.GetCursorInterval(),
			})
		},
	}
}
