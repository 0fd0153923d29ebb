package shell

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// queryCmd is a developer tool for issuing manual queries against the
// API. Only registered when GAIAGPSCLIENTDEV is set.
type queryCmd struct {
	params []string
	method string
	quiet  bool
}

func (c *queryCmd) registerFlags() *cobra.Command {
	r := &cobra.Command{
		Use:   "query <path>",
		Short: "Allow direct query by URL for debugging",
		Args:  cobra.ExactArgs(1),
	}
	r.Flags().StringArrayVarP(&c.params, "arg", "a", nil, "Query string argument in the form key=value")
	r.Flags().StringVarP(&c.method, "method", "X", "GET", "Method (GET, PUT, POST, DELETE, OPTIONS, HEAD)")
	r.Flags().BoolVarP(&c.quiet, "quiet", "q", false, "Suppress response information; only print content")
	return r
}

func (c *queryCmd) run(cl *cliClient, cmd *cobra.Command, args []string) error {
	switch c.method {
	case "GET", "PUT", "POST", "DELETE", "OPTIONS", "HEAD":
	default:
		return errors.Errorf("unsupported method %q", c.method)
	}
	params := map[string]string{}
	for _, arg := range c.params {
		kv := strings.SplitN(arg, "=", 2)
		if len(kv) != 2 {
			return errors.Errorf("argument %q is not in key=value form", arg)
		}
		params[kv[0]] = kv[1]
	}

	client, err := cl.Client()
	if err != nil {
		return err
	}
	resp, err := client.Raw(c.method, args[0], params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !c.quiet {
		cl.printf("HTTP %d %s", resp.StatusCode, resp.Status)
		for header := range resp.Header {
			cl.printf("%s: %s", header, resp.Header.Get(header))
		}
		cl.printf("")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if strings.Contains(resp.Header.Get("Content-Type"), "json") {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, body, "", "  "); err == nil {
			cl.printf("%s", pretty.String())
			return nil
		}
	}
	fmt.Fprintf(cl.out, "%s", body)
	return nil
}
