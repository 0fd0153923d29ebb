package shell

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/8cH9azbsFifZ/gaiagpsclient/apiclient"
	"github.com/8cH9azbsFifZ/gaiagpsclient/util"
)

// uploadCmd pushes an entire file of tracks and/or waypoints to the
// server. gaiagps files the contents under a new folder named for the
// file; the folder flags relocate the contents and drop that temporary
// folder afterwards.
type uploadCmd struct {
	stripGPXExtensions bool
	existingFolder     string
	newFolder          string
}

func (c *uploadCmd) registerFlags() *cobra.Command {
	r := &cobra.Command{
		Use:   "upload <filename>",
		Short: "Upload an entire file of tracks and/or waypoints",
		Args:  cobra.ExactArgs(1),
	}
	r.Flags().BoolVar(&c.stripGPXExtensions, "strip-gpx-extensions", false,
		"Remove all schema extensions from file before uploading. This applies only "+
			"to GPX files and may help improve compatibility as gaiagps will choke on "+
			"files with extensions.")
	r.Flags().StringVar(&c.existingFolder, "existing-folder", "", "Add to existing folder with this name")
	r.Flags().StringVar(&c.newFolder, "new-folder", "", "Add to a new folder with this name")
	return r
}

func (c *uploadCmd) run(cl *cliClient, cmd *cobra.Command, args []string) error {
	client, err := cl.Client()
	if err != nil {
		return err
	}
	filename := args[0]

	if c.stripGPXExtensions {
		cleaned := filepath.Join(filepath.Dir(filename), "clean-"+filepath.Base(filename))
		cl.verbosef("Stripping GPX extensions from input file")
		if err := util.StripGPXExtensions(filename, cleaned); err != nil {
			return err
		}
		filename = cleaned
	}

	var dstFolder apiclient.Document
	if c.existingFolder != "" {
		if dstFolder, err = getObject(client, apiclient.Folder, c.existingFolder); err != nil {
			return err
		}
	}

	newFolder, err := client.UploadFile(filename)
	if err != nil {
		return err
	}
	if newFolder == nil {
		cl.printf("File upload has been queued at the server and may take time to appear.")
		if dstFolder != nil {
			cl.printf("Unable to move to destination folder until processing is complete.")
		}
		return nil
	}
	log.Debugf("Upload created folder %v", newFolder)
	log.Infof("Uploaded file to new folder %s/%s", newFolder.Title(), newFolder.ID())

	if c.newFolder != "" {
		if dstFolder, err = client.CreateObject(apiclient.Folder, util.MakeFolder(c.newFolder)); err != nil || dstFolder == nil {
			cl.printf("Uploaded file, but failed to create folder %s", c.newFolder)
			return failure()
		}
	}
	if dstFolder == nil {
		return nil
	}

	// Merge the temporary upload folder's contents into the requested
	// folder, then delete the leftover.
	folders, err := client.ListObjects(apiclient.Folder)
	if err != nil {
		return err
	}
	uploaded, err := apiclient.Find(folders, "id", newFolder.ID())
	if err != nil {
		return err
	}
	dstDoc, err := client.GetObject(apiclient.Folder, dstFolder.ID())
	if err != nil {
		return err
	}

	log.Infof("Moving contents of %s to %s", newFolder.Title(), dstFolder.Title())
	props := dstDoc.Properties()
	waypoints, _ := props["waypoints"].([]interface{})
	for _, id := range uploaded.Waypoints {
		log.Infof("Moving waypoint %s", id)
		waypoints = append(waypoints, id)
	}
	props["waypoints"] = waypoints
	tracks, _ := props["tracks"].([]interface{})
	for _, id := range uploaded.Tracks {
		log.Infof("Moving track %s", id)
		tracks = append(tracks, id)
	}
	props["tracks"] = tracks

	if _, err := client.PutObject(apiclient.Folder, dstDoc); err != nil {
		cl.printf("Failed to move tracks and waypoints from upload folder %s to requested folder %s",
			newFolder.Title(), dstFolder.Title())
		return failure()
	}
	log.Infof("Updated destination folder %s", dstFolder.Title())
	log.Infof("Deleting temporary folder %s", newFolder.Title())
	return client.DeleteObject(apiclient.Folder, newFolder.ID())
}
