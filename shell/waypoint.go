package shell

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/8cH9azbsFifZ/gaiagpsclient/apiclient"
	"github.com/8cH9azbsFifZ/gaiagpsclient/util"
)

func makeWaypointCmd(c *cliClient) *cobra.Command {
	group := &cobra.Command{
		Use:   "waypoint",
		Short: "Manage waypoints",
		Long: "This command allows you to take action on waypoints, " +
			"such as adding, removing, and renaming them.",
	}
	c.addCmd(group, &addWaypointCmd{})
	c.addCmd(group, &editCmd{})
	c.addCmd(group, &renameCmd{objtype: apiclient.Waypoint})
	c.addCmd(group, &coordsCmd{})
	c.addCmd(group, &listIconsCmd{})
	addObjectCmds(c, group, apiclient.Waypoint, false)
	return group
}

// addWaypointCmd creates a waypoint, optionally filing it in a folder.
type addWaypointCmd struct {
	notes          string
	icon           string
	dryRun         bool
	existingFolder string
	newFolder      string
}

func (c *addWaypointCmd) registerFlags() *cobra.Command {
	r := &cobra.Command{
		Use:   "add [flags] <name> <latitude> <longitude> [altitude]",
		Short: "Add a waypoint",
		Long: "Add a waypoint at the given coordinates (decimal degrees, " +
			"altitude in meters). Flags go before the name so that negative " +
			"coordinates are not mistaken for flags.",
		Args: cobra.RangeArgs(3, 4),
	}
	// Stop flag parsing at the first positional so negative coordinates
	// survive.
	r.Flags().SetInterspersed(false)
	r.Flags().StringVar(&c.notes, "notes", "", "Set the notes field")
	r.Flags().StringVar(&c.icon, "icon", "", "Set the icon field")
	r.Flags().BoolVar(&c.dryRun, "dry-run", false, "Do not actually add anything (use with --verbose)")
	r.Flags().StringVar(&c.existingFolder, "existing-folder", "", "Add to existing folder with this name")
	r.Flags().StringVar(&c.newFolder, "new-folder", "", "Add to a new folder with this name")
	return r
}

func (c *addWaypointCmd) run(cl *cliClient, cmd *cobra.Command, args []string) error {
	name := args[0]
	lat, err := util.ValidateLat(args[1])
	var lon float64
	if err == nil {
		lon, err = util.ValidateLon(args[2])
	}
	alt := 0
	if err == nil && len(args) > 3 {
		alt, err = util.ValidateAlt(args[3])
	}
	if err != nil {
		cl.printf("Unable to add waypoint: %v", err)
		return failure()
	}

	client, err := cl.Client()
	if err != nil {
		return err
	}

	var folder apiclient.Document
	if c.existingFolder != "" {
		if folder, err = getObject(client, apiclient.Folder, c.existingFolder); err != nil {
			return err
		}
	}

	icon := c.icon
	if alias, ok := util.IconAliases[icon]; ok {
		icon = alias
	}

	cl.verbosef("Creating waypoint %q", name)
	var wpt apiclient.Document
	if c.dryRun {
		wpt = apiclient.Document{"id": "dry-run"}
	} else {
		wpt, err = client.CreateObject(apiclient.Waypoint,
			util.MakeWaypoint(name, lat, lon, alt, c.notes, icon))
		if err != nil {
			return err
		}
		if wpt == nil {
			cl.printf("Failed to create waypoint")
			return failure()
		}
	}

	if c.newFolder != "" {
		cl.verbosef("Creating new folder %q", c.newFolder)
		if c.dryRun {
			folder = util.MakeFolder(c.newFolder)
		} else {
			if folder, err = client.CreateObject(apiclient.Folder, util.MakeFolder(c.newFolder)); err != nil {
				return err
			}
		}
	}
	if folder != nil {
		cl.verbosef("Adding waypoint %q to folder %q", name, folder.Title())
		if !c.dryRun {
			if _, err := client.AddObjectToFolder(folder.ID(), apiclient.Waypoint, wpt.ID()); err != nil {
				return err
			}
		}
	}

	if c.dryRun {
		cl.printf("Dry run; no action taken")
	}
	return nil
}

// coordsCmd displays a waypoint's coordinates as lat,lon.
type coordsCmd struct{}

func (c *coordsCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "coords <name>",
		Short: "Display coordinates",
		Args:  cobra.ExactArgs(1),
	}
}

func (c *coordsCmd) run(cl *cliClient, cmd *cobra.Command, args []string) error {
	client, err := cl.Client()
	if err != nil {
		return err
	}
	wpt, err := getObject(client, apiclient.Waypoint, args[0])
	if err != nil {
		return err
	}
	geometry, _ := wpt["geometry"].(map[string]interface{})
	coords, _ := geometry["coordinates"].([]interface{})
	if len(coords) < 2 {
		cl.printf("Waypoint %q has no coordinates", args[0])
		return failure()
	}
	lon, _ := coords[0].(float64)
	lat, _ := coords[1].(float64)
	cl.printf("%.6f,%.6f", lat, lon)
	return nil
}

// listIconsCmd prints the icon aliases this client understands.
type listIconsCmd struct{}

func (c *listIconsCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "list-icons",
		Short: "List available icons",
		Args:  cobra.NoArgs,
	}
}

func (c *listIconsCmd) run(cl *cliClient, cmd *cobra.Command, args []string) error {
	aliases := make([]string, 0, len(util.IconAliases))
	for alias := range util.IconAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	for _, alias := range aliases {
		cl.printf("%s (%s)", alias, util.IconAliases[alias])
	}
	return nil
}
