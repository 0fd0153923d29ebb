package shell

import (
	"github.com/spf13/cobra"

	"github.com/8cH9azbsFifZ/gaiagpsclient/apiclient"
)

func makeTrackCmd(c *cliClient) *cobra.Command {
	group := &cobra.Command{
		Use:   "track",
		Short: "Manage tracks",
		Long: "This command allows you to take action on tracks, " +
			"such as removing and renaming them.",
	}
	c.addCmd(group, &renameCmd{objtype: apiclient.Track})
	addObjectCmds(c, group, apiclient.Track, false)
	return group
}
