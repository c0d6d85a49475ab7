package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veteranbv/ThinkiPlex/internal/config"
)

func newAuthCmd() *cobra.Command {
	var (
		clientDate string
		cookie     string
	)

	cmd := &cobra.Command{
		Use:   "auth <course>",
		Short: "Update a course's API credentials",
		Long: `Stores the X-Thinkific-Client-Date header value and session cookie
for a course. Copy both from a logged-in browser session's requests
to the course player.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			cc := cfg.Course(name)
			if cc == nil {
				return fmt.Errorf("course %q is not configured", name)
			}
			if clientDate == "" && cookie == "" {
				return fmt.Errorf("nothing to update — pass --client-date and/or --cookie")
			}

			if clientDate != "" {
				cc.ClientDate = clientDate
			}
			if cookie != "" {
				cc.CookieData = cookie
			}
			cfg.Courses[name] = *cc

			if err := config.Save(cfg, flagConfig); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			ok("Credentials updated for %s", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&clientDate, "client-date", "", "X-Thinkific-Client-Date header value")
	cmd.Flags().StringVar(&cookie, "cookie", "", "Session cookie string")
	return cmd
}
