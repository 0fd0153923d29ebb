package shell

import (
	"fmt"
	"os"
	"os/exec"
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"github.com/8cH9azbsFifZ/gaiagpsclient/apiclient"
	"github.com/8cH9azbsFifZ/gaiagpsclient/util"
)

// Property keys the edit flow will round-trip. The revision rides along
// so stale edits can be detected.
var editableProperties = []string{"icon", "notes", "public", "title", "revision"}

const editTempFile = "waypoints.yml"

// editEntry is one waypoint in the editable YAML file.
type editEntry struct {
	ID         string                 `yaml:"id"`
	Properties map[string]interface{} `yaml:"properties"`
}

// editCmd downloads waypoints into an editable YAML file and uploads
// changes back in bulk. Interactive mode automates both around an
// editor run. The file format must be preserved, and nothing else
// should modify the server side during the edit.
type editCmd struct {
	interactive bool
	file        string
	match       bool
	inFolder    string
}

func (c *editCmd) registerFlags() *cobra.Command {
	r := &cobra.Command{
		Use:   "edit [name]...",
		Short: "Edit all attributes of one or more items",
		Long: "Download one or more waypoints into an editable text file and upload " +
			"changes back to the server in bulk. Example:\n\n" +
			"  gaiagps waypoint edit -i Camp1 Camp2",
	}
	r.Flags().BoolVarP(&c.interactive, "interactive", "i", false, "Interactively edit properties")
	r.Flags().StringVarP(&c.file, "file", "f", "", "Apply edits from a file")
	r.Flags().BoolVar(&c.match, "match", false, "Treat names as regular expressions and include all matches")
	r.Flags().StringVar(&c.inFolder, "in-folder", "", "Only edit items in this folder")
	return r
}

func (c *editCmd) run(cl *cliClient, cmd *cobra.Command, args []string) error {
	client, err := cl.Client()
	if err != nil {
		return err
	}

	var folder apiclient.Document
	if c.inFolder != "" {
		if folder, err = getObject(client, apiclient.Folder, c.inFolder); err != nil {
			return err
		}
	}

	wpts, err := findObjects(client, apiclient.Waypoint, args, c.match, nil)
	if err == errSafety {
		// No names given; with a folder restriction that still means
		// "everything in the folder".
		wpts = nil
		if folder != nil {
			all, err := client.ListObjects(apiclient.Waypoint)
			if err != nil {
				return err
			}
			for _, w := range all {
				if w.Folder == folder.ID() {
					wpts = append(wpts, w)
				}
			}
		}
	} else if err != nil {
		return err
	}

	// Stable sort order so the Nth entry in the file is the Nth
	// waypoint on both sides of the GET/PUT.
	sort.Slice(wpts, func(i, j int) bool { return wpts[i].ID < wpts[j].ID })
	if folder != nil {
		var kept []apiclient.Object
		for _, w := range wpts {
			if w.Folder == folder.ID() {
				kept = append(kept, w)
			}
		}
		wpts = kept
		log.Debugf("Limiting to folder %s: %d", folder.ID(), len(wpts))
	}

	if len(wpts) == 0 {
		cl.printf("No objects matched criteria.")
		return failure()
	}

	switch {
	case c.interactive:
		editor := util.GetEditor()
		if editor == "" {
			cl.printf("No usable editor found; set EDITOR")
			return failure()
		}
		if _, err := dumpForEdit(client, wpts, editTempFile); err != nil {
			return err
		}
		before, err := os.Stat(editTempFile)
		if err != nil {
			return err
		}
		run := exec.Command(editor, editTempFile)
		run.Stdin, run.Stdout, run.Stderr = os.Stdin, os.Stdout, os.Stderr
		if err := run.Run(); err != nil {
			return errors.Wrap(err, "editor failed")
		}
		after, err := os.Stat(editTempFile)
		if err != nil {
			return err
		}
		if before.ModTime().Equal(after.ModTime()) {
			cl.printf("No changes made; not updating")
			return nil
		}
		if err := loadForEdit(cl, client, wpts, editTempFile); err != nil {
			log.Debugf("Edit failed: %+v", err)
			cl.printf("%v", err)
			return failure()
		}
	case c.file != "":
		if err := loadForEdit(cl, client, wpts, c.file); err != nil {
			log.Debugf("Edit failed: %+v", err)
			cl.printf("%v", err)
			return failure()
		}
	default:
		count, err := dumpForEdit(client, wpts, editTempFile)
		if err != nil {
			return err
		}
		cl.printf("Wrote %d waypoints to %q. Edit and then apply with edit -f", count, editTempFile)
	}
	return nil
}

func dumpForEdit(client apiclient.Client, wpts []apiclient.Object, path string) (int, error) {
	entries := make([]editEntry, 0, len(wpts))
	for _, w := range wpts {
		doc, err := client.GetObject(apiclient.Waypoint, w.ID)
		if err != nil {
			return 0, err
		}
		props := map[string]interface{}{}
		for _, key := range editableProperties {
			props[key] = doc.Properties()[key]
		}
		entries = append(entries, editEntry{ID: doc.ID(), Properties: props})
	}

	encoded, err := yaml.Marshal(entries)
	if err != nil {
		return 0, errors.Wrap(err, "unable to serialize waypoints")
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return 0, errors.Wrap(err, "unable to write edit file")
	}
	return len(entries), nil
}

func loadForEdit(cl *cliClient, client apiclient.Client, wpts []apiclient.Object, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "unable to read edit file")
	}
	var entries []editEntry
	if err := yaml.UnmarshalStrict(data, &entries); err != nil {
		return errors.Wrap(err, "input file format is incorrect; the top level must be a list of id/properties items")
	}
	if len(entries) != len(wpts) {
		return errors.Errorf("input file contains %d items but matched %d from the server; "+
			"adding and deleting items via the edit process is not supported",
			len(entries), len(wpts))
	}

	for i, entry := range entries {
		doc, err := client.GetObject(apiclient.Waypoint, wpts[i].ID)
		if err != nil {
			return err
		}

		// The revision was stored in the file and entries are in a
		// stable order; compare the Nth server revision with the Nth
		// in the file to catch server-side changes since the dump.
		serverRev := fmt.Sprint(doc.Properties()["revision"])
		fileRev := fmt.Sprint(entry.Properties["revision"])
		if serverRev != fileRev {
			log.Debugf("Server revision is %v, local is %v", serverRev, fileRev)
			cl.printf("Waypoint %d (%s) has changed on the server or lists are out of sync; "+
				"unable to apply changes", i+1, doc.Title())
			continue
		}
		if doc.ID() != entry.ID {
			log.Debugf("Server id is %v, local is %v", doc.ID(), entry.ID)
			cl.printf("Waypoint %d (%s) id does not match the server; unable to apply changes",
				i+1, doc.Title())
			continue
		}

		for key, val := range entry.Properties {
			if !contains(editableProperties, key) {
				return errors.Errorf("invalid key properties/%s in object", key)
			}
			doc.Properties()[key] = val
		}

		log.Debugf("Updating object: %v", doc)
		if _, err := client.PutObject(apiclient.Waypoint, doc); err != nil {
			return errors.Errorf("failed to update object %d (%s): server rejected changes",
				i+1, doc.Title())
		}
		cl.verbosef("Updated object %d (%s)", i+1, doc.Title())
	}
	return nil
}
