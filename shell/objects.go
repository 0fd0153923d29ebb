package shell

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/8cH9azbsFifZ/gaiagpsclient/apiclient"
	"github.com/8cH9azbsFifZ/gaiagpsclient/util"
)

// listCmd lists objects of one type, as a table or as raw IDs.
type listCmd struct {
	objtype   string
	byID      bool
	match     string
	matchDate string
	archived  string
}

func (c *listCmd) registerFlags() *cobra.Command {
	r := &cobra.Command{
		Use:   "list",
		Short: "List",
		Long:  "List objects on the server",
		Args:  cobra.NoArgs,
	}
	r.Flags().BoolVar(&c.byID, "by-id", false, "List items by ID only (for resolving duplicates)")
	r.Flags().StringVar(&c.match, "match", "", "List only items matching this regular expression")
	r.Flags().StringVar(&c.matchDate, "match-date", "", "Match items with this date (YYYY-MM-DD). Specify an inclusive range with START:END.")
	r.Flags().StringVar(&c.archived, "archived", "", "Match items with archived state (\"yes\" or \"no\")")
	return r
}

func (c *listCmd) run(cl *cliClient, cmd *cobra.Command, args []string) error {
	client, err := cl.Client()
	if err != nil {
		return err
	}

	if c.byID {
		items, err := client.ListObjects(c.objtype)
		if err != nil {
			return err
		}
		for _, item := range items {
			cl.printf("%-36s %20s %q", item.ID, util.DateFmt(item.TimeCreated), item.Title)
		}
		return nil
	}

	var matchRe *regexp.Regexp
	if c.match != "" {
		if matchRe, err = regexp.Compile(c.match); err != nil {
			return errors.Wrapf(err, "invalid match expression %q", c.match)
		}
	}
	var dr *dateRange
	if c.matchDate != "" {
		if dr, err = parseDateRange(c.matchDate); err != nil {
			return err
		}
	}
	showArchived, onlyArchived := true, false
	if c.archived != "" {
		val, err := parseFuzzyBool(c.archived)
		if err != nil {
			return err
		}
		showArchived, onlyArchived = val, val
	}

	items, err := client.ListObjectsArchived(c.objtype, showArchived)
	if err != nil {
		return err
	}

	var folderTitles map[string]string
	folderTitle := func(id string) string {
		if id == "" {
			return ""
		}
		if folderTitles == nil {
			folderTitles = map[string]string{}
			folders, err := client.ListObjects(apiclient.Folder)
			if err == nil {
				for _, f := range folders {
					folderTitles[f.ID] = f.Title
				}
			}
		}
		return folderTitles[id]
	}

	type row struct {
		item   apiclient.Object
		folder string
	}
	rows := make([]row, 0, len(items))
	for _, item := range items {
		rows = append(rows, row{item, folderTitle(item.Folder)})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].folder+" "+rows[i].item.Title < rows[j].folder+" "+rows[j].item.Title
	})

	table := tablewriter.NewWriter(cl.out)
	table.SetHeader([]string{"Name", "Updated", "Folder"})
	for _, r := range rows {
		if matchRe != nil && !matchRe.MatchString(r.item.Title) {
			continue
		}
		if dr != nil && !dr.contains(r.item.TimeCreated) {
			continue
		}
		if onlyArchived && !r.item.Deleted {
			continue
		}
		table.Append([]string{r.item.Title, util.DateFmt(r.item.TimeCreated), r.folder})
	}
	table.Render()
	return nil
}

// removeCmd deletes objects from the server forever.
type removeCmd struct {
	objtype   string
	withForce bool

	match  bool
	dryRun bool
	force  bool
}

func (c *removeCmd) registerFlags() *cobra.Command {
	r := &cobra.Command{
		Use:   "remove",
		Short: fmt.Sprintf("Remove a %s", c.objtype),
		Long:  fmt.Sprintf("Delete %s objects from the server forever", c.objtype),
		Args:  cobra.MinimumNArgs(1),
	}
	r.Flags().BoolVar(&c.match, "match", false, "Treat names as regular expressions and include all matches")
	r.Flags().BoolVar(&c.dryRun, "dry-run", false, "Do not actually remove anything (use with --verbose)")
	if c.withForce {
		r.Flags().BoolVar(&c.force, "force", false, "Remove even if not empty")
	}
	return r
}

func (c *removeCmd) run(cl *cliClient, cmd *cobra.Command, args []string) error {
	client, err := cl.Client()
	if err != nil {
		return err
	}
	toRemove, err := findObjects(client, c.objtype, args, c.match, nil)
	if err != nil {
		return err
	}
	for _, obj := range toRemove {
		if c.objtype == apiclient.Folder && !c.confirmRecursive(cl, obj) {
			continue
		}
		cl.verbosef("Removing %s %q (%s)", c.objtype, obj.Title, obj.ID)
		if !c.dryRun {
			if err := client.DeleteObject(c.objtype, obj.ID); err != nil {
				return err
			}
		}
	}
	if c.dryRun {
		cl.printf("Dry run; no action taken")
	}
	return nil
}

func (c *removeCmd) confirmRecursive(cl *cliClient, obj apiclient.Object) bool {
	if obj.Empty() {
		return true
	}
	if c.force {
		cl.verbosef("Warning: folder %q is not empty", obj.Title)
		return true
	}
	if cl.isTerminal() {
		fmt.Fprintf(cl.out, "Folder %s is not empty. Remove anyway? [y/n] ", obj.Title)
		answer, _ := bufio.NewReader(cl.in).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}
	cl.printf("Folder %q is not empty; skipping.", obj.Title)
	return false
}

// renameCmd renames a single object.
type renameCmd struct {
	objtype string
	dryRun  bool
}

func (c *renameCmd) registerFlags() *cobra.Command {
	r := &cobra.Command{
		Use:   "rename <name> <new-name>",
		Short: "Rename",
		Long:  "Rename objects on the server",
		Args:  cobra.ExactArgs(2),
	}
	r.Flags().BoolVar(&c.dryRun, "dry-run", false, "Do not actually rename anything (use with --verbose)")
	return r
}

func (c *renameCmd) run(cl *cliClient, cmd *cobra.Command, args []string) error {
	client, err := cl.Client()
	if err != nil {
		return err
	}
	name, newName := args[0], args[1]

	obj, err := getObject(client, c.objtype, name)
	if err != nil {
		return err
	}

	var update apiclient.Document
	switch c.objtype {
	case apiclient.Waypoint:
		obj.SetTitle(newName)
		update = obj
	case apiclient.Track:
		update = apiclient.Document{"id": obj.ID(), "title": newName}
	default:
		return errors.Errorf("unable to rename %s objects", c.objtype)
	}

	cl.verbosef("Renaming %q to %q", name, newName)
	if c.dryRun {
		cl.printf("Dry run; no action taken")
		return nil
	}
	if updated, err := client.PutObject(c.objtype, update); err != nil || updated == nil {
		cl.printf("Failed to rename %q", name)
		return failure()
	}
	return nil
}

// moveCmd moves objects into a folder, or to the root with "/".
type moveCmd struct {
	objtype   string
	match     bool
	matchDate string
	dryRun    bool
}

func (c *moveCmd) registerFlags() *cobra.Command {
	r := &cobra.Command{
		Use:   "move [name]... <destination>",
		Short: "Move to another folder",
		Long:  "Move objects into a folder (or \"/\" to move to root)",
		Args:  cobra.MinimumNArgs(1),
	}
	r.Flags().BoolVar(&c.match, "match", false, "Treat names as regular expressions and include all matches")
	r.Flags().StringVar(&c.matchDate, "match-date", "", "Match items with this date (YYYY-MM-DD). Specify an inclusive range with START:END.")
	r.Flags().BoolVar(&c.dryRun, "dry-run", false, "Do not actually move anything (use with --verbose)")
	return r
}

func (c *moveCmd) run(cl *cliClient, cmd *cobra.Command, args []string) error {
	client, err := cl.Client()
	if err != nil {
		return err
	}
	names, destination := args[:len(args)-1], args[len(args)-1]

	var dr *dateRange
	if c.matchDate != "" {
		if dr, err = parseDateRange(c.matchDate); err != nil {
			return err
		}
	}

	toMove, err := findObjects(client, c.objtype, names, c.match, dr)
	if err == errSafety {
		cl.printf("Specify name(s) of objects to move or filter criteria")
		return failure()
	} else if err != nil {
		return err
	}
	if len(toMove) == 0 {
		cl.verbosef("No items matched criteria")
		return nil
	}

	if destination == "/" {
		for _, obj := range toMove {
			if obj.Folder == "" {
				cl.printf("%s %q is already at root", strings.Title(c.objtype), obj.Title)
				continue
			}
			cl.verbosef("Moving %s %q (%s) to /", c.objtype, obj.Title, obj.ID)
			if !c.dryRun {
				if _, err := client.RemoveObjectFromFolder(obj.Folder, c.objtype, obj.ID); err != nil {
					return err
				}
			}
		}
	} else {
		folder, err := getObject(client, apiclient.Folder, destination)
		if err != nil {
			return err
		}
		for _, obj := range toMove {
			cl.verbosef("Moving %s %q (%s) to %s", c.objtype, obj.Title, obj.ID, folder.Title())
			if !c.dryRun {
				if _, err := client.AddObjectToFolder(folder.ID(), c.objtype, obj.ID); err != nil {
					return err
				}
			}
		}
	}
	if c.dryRun {
		cl.printf("Dry run; no action taken")
	}
	return nil
}

// exportCmd writes an object to a local GPX or KML file.
type exportCmd struct {
	objtype string
	format  string
}

func (c *exportCmd) registerFlags() *cobra.Command {
	r := &cobra.Command{
		Use:   "export <name> <filename>",
		Short: "Export to file",
		Long:  "Export objects into a local GPX or KML file (or - for stdout)",
		Args:  cobra.ExactArgs(2),
	}
	r.Flags().StringVar(&c.format, "format", "gpx", "File format (gpx or kml)")
	return r
}

func (c *exportCmd) run(cl *cliClient, cmd *cobra.Command, args []string) error {
	client, err := cl.Client()
	if err != nil {
		return err
	}
	id, err := resolveID(client, c.objtype, args[0])
	if err != nil {
		return err
	}
	data, err := client.ExportObject(c.objtype, id, c.format)
	if err != nil {
		return err
	}
	if args[1] == "-" {
		fmt.Fprintf(cl.out, "%s", data)
		return nil
	}
	if err := os.WriteFile(args[1], data, 0644); err != nil {
		return errors.Wrap(err, "unable to write export file")
	}
	cl.printf("Wrote %q", args[1])
	return nil
}

// dumpCmd prints the low-level representation of an object, for
// debugging.
type dumpCmd struct {
	objtype string
}

func (c *dumpCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <name>",
		Short: "Raw dump of the data structure",
		Long:  "Dump the low-level representation of an object on the server (for debugging)",
		Args:  cobra.ExactArgs(1),
	}
}

func (c *dumpCmd) run(cl *cliClient, cmd *cobra.Command, args []string) error {
	client, err := cl.Client()
	if err != nil {
		return err
	}
	obj, err := getObject(client, c.objtype, args[0])
	if err != nil {
		return err
	}
	spew.Fdump(cl.out, obj)
	return nil
}

// urlCmd prints a direct browser-suitable URL for an object.
type urlCmd struct {
	objtype string
}

func (c *urlCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "url <name>",
		Short: "Show direct browser-suitable URL",
		Args:  cobra.ExactArgs(1),
	}
}

func (c *urlCmd) run(cl *cliClient, cmd *cobra.Command, args []string) error {
	client, err := cl.Client()
	if err != nil {
		return err
	}
	id, err := resolveID(client, c.objtype, args[0])
	if err != nil {
		return err
	}
	cl.printf("%s/datasummary/%s/%s", client.BaseURL(), c.objtype, id)
	return nil
}

// archiveCmd flips the sync flag on objects; archive means sync=off.
type archiveCmd struct {
	objtype string
	archive bool

	match     bool
	matchDate string
	dryRun    bool
}

func (c *archiveCmd) registerFlags() *cobra.Command {
	use, short, long := "archive", "Archive (set sync=off)",
		"Archive an object on the server (so that it does not sync to devices)"
	if !c.archive {
		use, short, long = "unarchive", "Unarchive (set sync=on)",
			"Unarchive an object on the server (so that it does sync to devices)"
	}
	r := &cobra.Command{Use: use, Short: short, Long: long}
	r.Flags().BoolVar(&c.match, "match", false, "Treat names as regular expressions and include all matches")
	r.Flags().StringVar(&c.matchDate, "match-date", "", "Match items with this date (YYYY-MM-DD). Specify an inclusive range with START:END.")
	r.Flags().BoolVar(&c.dryRun, "dry-run", false, "Do not actually change anything (use with --verbose)")
	return r
}

func (c *archiveCmd) run(cl *cliClient, cmd *cobra.Command, args []string) error {
	client, err := cl.Client()
	if err != nil {
		return err
	}
	var dr *dateRange
	if c.matchDate != "" {
		if dr, err = parseDateRange(c.matchDate); err != nil {
			return err
		}
	}
	toHit, err := findObjects(client, c.objtype, args, c.match, dr)
	if err == errSafety {
		cl.printf("Specify name(s) of objects to archive or filter criteria")
		return failure()
	} else if err != nil {
		return err
	}
	if len(toHit) == 0 {
		cl.verbosef("No items matched criteria")
		return nil
	}

	op := "Archiving"
	if !c.archive {
		op = "Unarchiving"
	}
	ids := make([]string, 0, len(toHit))
	for _, item := range toHit {
		cl.verbosef("%s %q", op, item.Title)
		ids = append(ids, item.ID)
	}
	if c.dryRun {
		cl.printf("Dry run; no action taken")
		return nil
	}
	return client.SetObjectsArchive(c.objtype, ids, c.archive)
}

// showCmd prints all available details for a single item.
type showCmd struct {
	objtype string

	fieldSeparator string
	onlyKeys       []string
	expandKeys     []string
	onlyVals       bool
}

func (c *showCmd) registerFlags() *cobra.Command {
	r := &cobra.Command{
		Use:   "show <name>",
		Short: "Show all available details for a single item",
		Args:  cobra.ExactArgs(1),
	}
	r.Flags().StringVarP(&c.fieldSeparator, "field-separator", "f", "", "Specify a string to separate the key=value fields for easier parsing")
	r.Flags().StringArrayVarP(&c.onlyKeys, "only-key", "K", nil, "Only display these keys (specify multiple times for multiple keys)")
	r.Flags().StringArrayVarP(&c.expandKeys, "expand-key", "k", nil, "Expand these keys to their full values (or 'all')")
	r.Flags().BoolVarP(&c.onlyVals, "only-vals", "V", false, "Only show values")
	return r
}

func (c *showCmd) run(cl *cliClient, cmd *cobra.Command, args []string) error {
	client, err := cl.Client()
	if err != nil {
		return err
	}
	obj, err := getObject(client, c.objtype, args[0])
	if err != nil {
		return err
	}
	props := obj.Properties()

	for _, k := range c.onlyKeys {
		if _, ok := props[k]; !ok {
			cl.printf("%s %q does not have key %q", strings.Title(c.objtype), args[0], k)
			return failure()
		}
	}
	if c.fieldSeparator != "" && c.onlyVals {
		cl.printf("Options --only-vals and --field-separator are mutally exclusive")
		return failure()
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		if len(c.onlyKeys) > 0 && !contains(c.onlyKeys, k) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	expandAll := len(c.expandKeys) == 1 && c.expandKeys[0] == "all"

	switch {
	case c.onlyVals:
		for _, k := range keys {
			if v := props[k]; v != nil && fmt.Sprint(v) != "" {
				cl.printf("%v", v)
			}
		}
	case c.fieldSeparator != "":
		for _, k := range keys {
			cl.printf("%s%s%v", k, c.fieldSeparator, props[k])
		}
	default:
		table := tablewriter.NewWriter(cl.out)
		table.SetHeader([]string{"Key", "Value"})
		for _, k := range keys {
			v := props[k]
			expand := expandAll || contains(c.expandKeys, k)
			switch typed := v.(type) {
			case []interface{}:
				if !expand {
					table.Append([]string{k, fmt.Sprintf("(%d items)", len(typed))})
					continue
				}
			case map[string]interface{}:
				if !expand {
					table.Append([]string{k, fmt.Sprintf("(%d keys)", len(typed))})
					continue
				}
			}
			table.Append([]string{k, fmt.Sprint(v)})
		}
		table.Render()
	}
	return nil
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// addObjectCmds wires the subcommands shared by every object type.
func addObjectCmds(c *cliClient, group *cobra.Command, objtype string, withForce bool) {
	c.addCmd(group, &removeCmd{objtype: objtype, withForce: withForce})
	c.addCmd(group, &moveCmd{objtype: objtype})
	c.addCmd(group, &exportCmd{objtype: objtype})
	c.addCmd(group, &listCmd{objtype: objtype})
	c.addCmd(group, &dumpCmd{objtype: objtype})
	c.addCmd(group, &urlCmd{objtype: objtype})
	c.addCmd(group, &archiveCmd{objtype: objtype, archive: true})
	c.addCmd(group, &archiveCmd{objtype: objtype, archive: false})
	c.addCmd(group, &showCmd{objtype: objtype})
}
