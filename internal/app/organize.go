package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/veteranbv/ThinkiPlex/internal/organize"
)

func newOrganizeCmd() *cobra.Command {
	var courseName string

	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Lay a downloaded course out as a Plex show",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, cc, err := resolveCourse(courseName)
			if err != nil {
				return err
			}

			show := cc.ShowName
			if show == "" {
				show = name
			}

			enc := newEncoder()
			if !enc.Available() {
				warn("ffmpeg not found — episodes will be copied without metadata tags")
			}

			header("Organizing %s", show)
			res, err := organize.New(enc).Run(cmd.Context(), cfg.DownloadsDir(name), cfg.PlexDir(), organize.Params{
				Show:         show,
				Season:       seasonNumber(cc),
				ExtractAudio: cfg.Global.ExtractAudio,
				AudioFormat:  cc.EffectiveAudioFormat(cfg.Global),
				AudioBitrate: audioBitrate(cfg.Global.AudioQuality),
			})
			if err != nil {
				return err
			}

			ok("Placed %d episodes under %s", len(res.Episodes), cfg.PlexDir())
			if enc.Available() {
				for _, ep := range res.Episodes {
					if d, err := enc.Duration(ep); err == nil {
						fmt.Printf("  %s (%s)\n", filepath.Base(ep), d.Round(time.Second))
					}
				}
			}
			if len(res.Audio) > 0 {
				ok("Extracted %d audio tracks", len(res.Audio))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&courseName, "course", "c", "", "Configured course name")
	return cmd
}
