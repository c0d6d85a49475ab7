package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/veteranbv/ThinkiPlex/internal/scrape"
	"github.com/veteranbv/ThinkiPlex/internal/thinkific"
)

func newDownloadCmd() *cobra.Command {
	var (
		courseName   string
		manifestPath string
	)

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download new and updated content for a course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, cc, err := resolveCourse(courseName)
			if err != nil {
				return err
			}
			if err := cc.Validate(cfg.Global); err != nil {
				return fmt.Errorf("course %q: %w", name, err)
			}

			client, err := newThinkificClient(cc)
			if err != nil {
				return err
			}

			var manifest *thinkific.Manifest
			if manifestPath != "" {
				manifest, err = thinkific.LoadManifestFile(manifestPath)
				if err != nil {
					return err
				}
			} else {
				manifest, err = client.Manifest(cmd.Context(), cc.Slug())
				if err != nil {
					return err
				}
			}

			downloadsDir := cfg.DownloadsDir(name)
			tracker := scrape.NewTracker(filepath.Join(downloadsDir, scrape.TrackingFile))
			if err := tracker.Load(); err != nil {
				return err
			}

			runLog, closeLog, err := openRunLog(name)
			if err != nil {
				return err
			}
			defer closeLog()

			header("Downloading %s", manifest.Course.Name)
			engine := scrape.New(client, tracker, newEncoder(), scrape.Options{
				Quality:            cc.EffectiveVideoQuality(cfg.Global),
				MergePresentations: cfg.Global.PresentationMerge,
			}, runLog, os.Stdout)

			summary, err := engine.Run(cmd.Context(), manifest, downloadsDir)
			if err != nil {
				return err
			}

			summary.Print(os.Stdout)
			ok("Course is up to date: %s", downloadsDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&courseName, "course", "c", "", "Configured course name")
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Read the course manifest from a local JSON file instead of the API")
	return cmd
}
