package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agrimind/landing/pkg/assets"
	"github.com/agrimind/landing/pkg/content"
	"github.com/agrimind/landing/pkg/models"
	"github.com/agrimind/landing/pkg/views"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the landing page as static HTML",
	Long: `Renders the page as a first-time visitor sees it. The stylesheet and
scripts are inlined so the file opens from disk or any host. The waitlist
forms still post to /waitlist, so signups need the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if renderOut == "" || renderOut == "-" {
			return renderPage(cmd.OutOrStdout(), cfg.SceneURL, time.Now())
		}

		if err := renderFile(renderOut, cfg.SceneURL, time.Now()); err != nil {
			return err
		}
		logger.Info("Rendered landing page", zap.String("path", renderOut))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "-", "output file, - for stdout")
	rootCmd.AddCommand(renderCmd)
}

func renderFile(path, sceneURL string, now time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if err := renderPage(w, sceneURL, now); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing %s: %w", path, err)
	}
	return nil
}

func renderPage(w io.Writer, sceneURL string, now time.Time) error {
	bundle, err := assets.LoadBundle()
	if err != nil {
		return err
	}

	page := views.LandingPage(views.PageData{
		Content:  content.AgriMind(),
		Waitlist: models.WaitlistState{},
		SceneURL: sceneURL,
		Now:      now,
		Bundle:   bundle,
	})
	if err := page.Render(w); err != nil {
		return fmt.Errorf("error rendering page: %w", err)
	}
	return nil
}
