package app

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/veteranbv/ThinkiPlex/internal/pdfgen"
	"github.com/veteranbv/ThinkiPlex/internal/util"
)

func newPDFCmd() *cobra.Command {
	var (
		courseName string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Merge all of a course's PDFs into one document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, cc, err := resolveCourse(courseName)
			if err != nil {
				return err
			}

			dest := outPath
			if dest == "" {
				title := cc.ShowName
				if title == "" {
					title = name
				}
				dest = filepath.Join(cfg.CourseDir(name), util.SanitizeName(title)+" - Complete.pdf")
			}

			header("Compiling PDFs for %s", name)
			count, err := pdfgen.Compile(cfg.DownloadsDir(name), dest)
			if err != nil {
				return err
			}

			ok("Merged %d PDFs into %s", count, dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&courseName, "course", "c", "", "Configured course name")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output PDF path")
	return cmd
}
