package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	cerrors "github.com/8cH9azbsFifZ/gaiagpsclient/common/errors"
	"github.com/8cH9azbsFifZ/gaiagpsclient/common/log/hooks"
	"github.com/8cH9azbsFifZ/gaiagpsclient/shell"
)

// CLI binary to talk to gaiagps.com
//	Supported commands: (see "-h" for all options)
//		waypoint|track|folder [subcommand]
//		tree
//		upload [file]
//		test
//	Global flags:
//		--user [gaia username]
//		--pass [gaia password, prompted when omitted]
//		--verbose / --debug

func main() {
	log.AddHook(hooks.NewContextHook())

	cl, err := shell.NewCLIClient(shell.DefaultClientFactory)
	if err != nil {
		log.Fatal("Failed to create gaiagps CLI client: ", err)
	}

	if err := cl.Exec(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		code := int(cerrors.CommandFailureExitCode)
		if exitErr, ok := err.(*cerrors.ExitCodeError); ok {
			code = int(exitErr.GetExitCode())
		}
		os.Exit(code)
	}
}
