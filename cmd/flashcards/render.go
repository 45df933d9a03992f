package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/youruser/flashcards/internal/cards"
	"github.com/youruser/flashcards/internal/config"
	"github.com/youruser/flashcards/internal/layout"
	"github.com/youruser/flashcards/internal/render"
	"github.com/youruser/flashcards/internal/util"
)

var renderCmd = &cobra.Command{
	Use:   "render <file|url>",
	Short: "Write the print document for a spreadsheet",
	Long: `render decodes an .xlsx, .xls or .csv file (or downloads it when given an
http(s) URL), composes the card pages and writes the HTML print document.
Open the result in a browser and print it double-sided, flipping on the long
edge, without margins or scaling.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		font, _ := cmd.Flags().GetString("font")
		return renderDocument(cmd.Context(), args[0], out, font, cfg, appLogger)
	},
}

func init() {
	renderCmd.Flags().StringP("output", "o", "-", "output file, - for stdout")
	renderCmd.Flags().String("font", "", "font name from the catalog (see: flashcards fonts)")
	renderCmd.Flags().Bool("autoprint", false, "open the print dialog once the layout is ready")
	renderCmd.Flags().Float64("margin", 10, "page margin in millimetres")
	rootCmd.AddCommand(renderCmd)
}

func renderDocument(ctx context.Context, src, out, fontName string, cfg *config.Config, log *slog.Logger) (err error) {
	catalog, err := catalogFor(cfg)
	if err != nil {
		return err
	}
	font := catalog.Default()
	if fontName != "" {
		if font, err = catalog.Lookup(fontName); err != nil {
			return err
		}
	}

	name, data, err := readSource(ctx, src, cfg.Server.MaxUploadBytes)
	if err != nil {
		return err
	}
	set, err := cards.Load(ctx, name, data)
	if err != nil {
		return err
	}
	pairs := layout.Compose(set)

	var w io.Writer = os.Stdout
	if out != "-" {
		f, ferr := os.Create(out)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing %s: %w", out, cerr)
			}
		}()
		w = f
	}

	err = render.PrintDocument(w, pairs, render.PrintOptions{
		Title:     strings.TrimSuffix(path.Base(name), path.Ext(name)),
		Font:      font,
		AutoPrint: cfg.Render.AutoPrint,
		MarginMM:  cfg.Render.MarginMM,
	})
	if err != nil {
		return fmt.Errorf("writing print document: %w", err)
	}
	log.Info("rendered print document",
		slog.String("source", src),
		slog.Int("cards", len(set)),
		slog.Int("pages", layout.PageCount(len(set))),
		slog.String("font", font.Name),
	)
	return nil
}

// readSource returns the name used for format detection and the raw bytes
// of a local file or an http(s) URL.
func readSource(ctx context.Context, src string, limit int64) (string, []byte, error) {
	if u, err := url.Parse(src); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		data, err := util.GetBytes(ctx, src, limit)
		if err != nil {
			return "", nil, fmt.Errorf("downloading %s: %w", src, err)
		}
		return path.Base(u.Path), data, nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return "", nil, err
	}
	return src, data, nil
}
