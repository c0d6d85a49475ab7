package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veteranbv/ThinkiPlex/internal/transcribe"
)

func newTranscribeCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "transcribe <audio-file>",
		Short: "Transcribe an audio file with speaker labels",
		Long: `Uploads an audio file to AssemblyAI, waits for the transcription
to finish and writes the speaker-labeled text next to the input
(or to --output). Requires ASSEMBLYAI_API_KEY.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			audioPath := args[0]
			if _, err := os.Stat(audioPath); err != nil {
				return fmt.Errorf("audio file: %w", err)
			}

			client, err := transcribe.FromEnv()
			if err != nil {
				return err
			}

			header("Transcribing %s", audioPath)
			transcript, err := client.Transcribe(cmd.Context(), audioPath)
			if err != nil {
				return err
			}

			dest := outPath
			if dest == "" {
				dest = strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".transcript.txt"
			}
			text := transcribe.FormatSpeakerLabels(transcript)
			if err := os.WriteFile(dest, []byte(text+"\n"), 0644); err != nil {
				return err
			}

			ok("Transcript written to %s", dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Transcript output path")
	return cmd
}
