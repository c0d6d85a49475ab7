package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veteranbv/ThinkiPlex/internal/summarize"
)

func newSummarizeCmd() *cobra.Command {
	var (
		promptName string
		model      string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "summarize <transcript-file>",
		Short: "Summarize a transcript with the Anthropic API",
		Long: fmt.Sprintf(`Runs a named prompt over a transcript file, chunking long inputs
and merging the partial results. Requires ANTHROPIC_API_KEY.

Available prompts: %s.`, strings.Join(summarize.PromptNames(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("transcript: %w", err)
			}

			client, err := summarize.FromEnv()
			if err != nil {
				return err
			}
			client.WithModel(model)

			header("Summarizing %s (%s)", args[0], promptName)
			result, err := client.Summarize(cmd.Context(), promptName, string(data))
			if err != nil {
				return err
			}

			dest := outPath
			if dest == "" {
				dest = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + "." + promptName + ".md"
			}
			if err := os.WriteFile(dest, []byte(result+"\n"), 0644); err != nil {
				return err
			}

			ok("Written to %s", dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&promptName, "prompt", "p", "summarize", "Prompt template to use")
	cmd.Flags().StringVar(&model, "model", "", "Override the Anthropic model")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path")
	return cmd
}
