package shell

import (
	"github.com/spf13/cobra"

	"github.com/8cH9azbsFifZ/gaiagpsclient/apiclient"
	"github.com/8cH9azbsFifZ/gaiagpsclient/util"
)

// treeCmd prints all waypoints, tracks, and folders in a hierarchical
// layout, purely for visualization purposes.
type treeCmd struct {
	long bool
}

func (c *treeCmd) registerFlags() *cobra.Command {
	r := &cobra.Command{
		Use:   "tree",
		Short: "Display all data in tree format",
		Args:  cobra.NoArgs,
	}
	r.Flags().BoolVar(&c.long, "long", false, "Show long format with dates")
	return r
}

func (c *treeCmd) run(cl *cliClient, cmd *cobra.Command, args []string) error {
	client, err := cl.Client()
	if err != nil {
		return err
	}
	folders, err := client.ListObjects(apiclient.Folder)
	if err != nil {
		return err
	}
	root := util.MakeTree(folders)
	if err := util.ResolveTree(client, root); err != nil {
		return err
	}
	util.PrintFolder(cl.out, root, c.long)
	return nil
}
