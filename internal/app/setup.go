package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/veteranbv/ThinkiPlex/internal/config"
	"github.com/veteranbv/ThinkiPlex/internal/util"
)

func newSetupCmd() *cobra.Command {
	var (
		link       string
		name       string
		show       string
		season     string
		quality    string
		clientDate string
		cookie     string
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Add a course to the configuration",
		Long: `Registers a new course. With --link the course is added directly;
missing values are prompted for on a terminal. The course name and
show name default to values derived from the link's final path
segment (the course slug).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := util.IsTTY()

			if link == "" {
				if !interactive {
					return fmt.Errorf("--link is required")
				}
				fmt.Println("Copy the course player URL from your browser, e.g.")
				fmt.Println("  " + color.CyanString("https://school.thinkific.com/courses/take/my-course"))
				link = promptLine("Course link", "")
				if link == "" {
					return fmt.Errorf("a course link is required")
				}
			}

			cc := config.CourseConfig{
				CourseLink: link,
				ShowName:   show,
				Season:     season,
				ClientDate: clientDate,
				CookieData: cookie,
			}
			if _, err := cc.Origin(); err != nil {
				return err
			}

			slug := cc.Slug()
			if name == "" {
				name = slug
			}
			if cfg.Course(name) != nil {
				return fmt.Errorf("course %q is already configured (use 'thinkiplex auth' to update credentials)", name)
			}

			if interactive {
				if cc.ShowName == "" {
					cc.ShowName = promptLine("Show name", showNameFromSlug(slug))
				}
				if cc.Season == "" {
					cc.Season = promptLine("Season", "01")
				}
				if quality == "" {
					quality = promptLine("Video quality", cfg.Global.VideoQuality)
				}
				if cc.ClientDate == "" {
					cc.ClientDate = promptLine("X-Thinkific-Client-Date header", "")
				}
				if cc.CookieData == "" {
					cc.CookieData = promptLine("Cookie data", "")
				}
			}
			if cc.ShowName == "" {
				cc.ShowName = showNameFromSlug(slug)
			}
			if cc.Season == "" {
				cc.Season = "01"
			}
			if quality != "" && quality != cfg.Global.VideoQuality {
				cc.VideoQuality = quality
			}

			if err := cc.Validate(cfg.Global); err != nil {
				return err
			}

			if cfg.Courses == nil {
				cfg.Courses = map[string]config.CourseConfig{}
			}
			cfg.Courses[name] = cc
			if err := config.Save(cfg, flagConfig); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}

			ok("Course %s added", name)
			if cc.ClientDate == "" || cc.CookieData == "" {
				warn("No credentials yet — run 'thinkiplex auth %s --client-date ... --cookie ...' before downloading", name)
			} else {
				fmt.Printf("Next: %s\n", color.CyanString("thinkiplex download --course "+name))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&link, "link", "", "Course player URL")
	cmd.Flags().StringVar(&name, "name", "", "Config name for the course (default: link slug)")
	cmd.Flags().StringVar(&show, "show", "", "Plex show name (default: derived from the slug)")
	cmd.Flags().StringVar(&season, "season", "", "Season number (default: 01)")
	cmd.Flags().StringVar(&quality, "quality", "", "Video quality override")
	cmd.Flags().StringVar(&clientDate, "client-date", "", "X-Thinkific-Client-Date header value")
	cmd.Flags().StringVar(&cookie, "cookie", "", "Session cookie string")
	return cmd
}

// promptLine reads one line from stdin, falling back to def on empty input.
func promptLine(label, def string) string {
	if def != "" {
		fmt.Printf("%s [%s]: ", label, def)
	} else {
		fmt.Printf("%s: ", label)
	}
	sc := bufio.NewScanner(os.Stdin)
	if sc.Scan() {
		if v := strings.TrimSpace(sc.Text()); v != "" {
			return v
		}
	}
	return def
}

// showNameFromSlug turns a course slug into a display title
// ("go-deep-advanced" → "Go Deep Advanced").
func showNameFromSlug(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
