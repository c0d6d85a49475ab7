package app

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCoursesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "courses",
		Short: "List configured courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := cfg.CourseNames()
			if len(names) == 0 {
				warn("No courses configured")
				return nil
			}
			sort.Strings(names)

			header("Configured courses (%d)", len(names))
			for _, name := range names {
				cc := cfg.Course(name)
				fmt.Printf("  %s  %s\n", color.WhiteString(name), color.CyanString(cc.CourseLink))
				fmt.Printf("    show: %s  season: %s  quality: %s\n",
					cc.ShowName, cc.EffectiveSeason(), cc.EffectiveVideoQuality(cfg.Global))
				if cc.ClientDate == "" || cc.CookieData == "" {
					fmt.Printf("    %s\n", color.YellowString("auth missing — run 'thinkiplex auth %s'", name))
				}
			}
			return nil
		},
	}
}
