package shell

import (
	"github.com/spf13/cobra"
)

// testCmd just attempts to use the credentials to log into the gaia
// API. If it is successful, it will say so.
type testCmd struct{}

func (c *testCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Test access to Gaia",
		Args:  cobra.NoArgs,
	}
}

func (c *testCmd) run(cl *cliClient, cmd *cobra.Command, args []string) error {
	client, err := cl.Client()
	if err != nil {
		return err
	}
	ok, err := client.TestAuth()
	if err != nil {
		return err
	}
	if !ok {
		cl.printf("Unable to access gaia")
		return failure()
	}
	cl.printf("Success!")
	return nil
}
