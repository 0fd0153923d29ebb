package shell

import (
	"github.com/spf13/cobra"

	"github.com/8cH9azbsFifZ/gaiagpsclient/apiclient"
	"github.com/8cH9azbsFifZ/gaiagpsclient/util"
)

func makeFolderCmd(c *cliClient) *cobra.Command {
	group := &cobra.Command{
		Use:   "folder",
		Short: "Manage folders",
		Long: "This command allows you to take action on folders, " +
			"such as adding, removing, and moving them.",
	}
	c.addCmd(group, &addFolderCmd{})
	addObjectCmds(c, group, apiclient.Folder, true)
	return group
}

// addFolderCmd creates a folder, optionally nested in an existing one.
type addFolderCmd struct {
	dryRun         bool
	existingFolder string
}

func (c *addFolderCmd) registerFlags() *cobra.Command {
	r := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a folder",
		Args:  cobra.ExactArgs(1),
	}
	r.Flags().BoolVar(&c.dryRun, "dry-run", false, "Do not actually add anything (use with --verbose)")
	r.Flags().StringVar(&c.existingFolder, "existing-folder", "", "Add to existing folder with this name")
	return r
}

func (c *addFolderCmd) run(cl *cliClient, cmd *cobra.Command, args []string) error {
	client, err := cl.Client()
	if err != nil {
		return err
	}
	name := args[0]

	var parent apiclient.Document
	if c.existingFolder != "" {
		if parent, err = getObject(client, apiclient.Folder, c.existingFolder); err != nil {
			return err
		}
	}

	cl.verbosef("Creating folder %q", name)
	var folder apiclient.Document
	if c.dryRun {
		folder = apiclient.Document{"id": "dry-run"}
	} else {
		if folder, err = client.CreateObject(apiclient.Folder, util.MakeFolder(name)); err != nil {
			return err
		}
		if folder == nil {
			cl.printf("Failed to add folder")
			return failure()
		}
	}

	if parent != nil {
		cl.verbosef("Adding folder %q to folder %q", name, c.existingFolder)
		if !c.dryRun {
			if _, err := client.AddObjectToFolder(parent.ID(), apiclient.Folder, folder.ID()); err != nil {
				cl.printf("Created folder, but failed to add it to existing folder")
				return failure()
			}
		}
	}

	if c.dryRun {
		cl.printf("Dry run; no action taken")
	}
	return nil
}
