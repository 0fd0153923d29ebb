package shell

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/8cH9azbsFifZ/gaiagpsclient/apiclient"
	cerrors "github.com/8cH9azbsFifZ/gaiagpsclient/common/errors"
	"github.com/8cH9azbsFifZ/gaiagpsclient/common/stats"
)

// ClientFactory builds the API client a command session will use.
// Injectable so tests can substitute a mock.
type ClientFactory func(user, password string, stat stats.StatsReceiver) (apiclient.Client, error)

// DefaultClientFactory logs into gaiagps.com.
func DefaultClientFactory(user, password string, stat stats.StatsReceiver) (apiclient.Client, error) {
	return apiclient.NewGaiaClient(user, password, stat)
}

// CLIClient is the gaiagps CLI, wired and ready to run.
type CLIClient interface {
	Exec() error
}

// Implements CLIClient - basic
type cliClient struct {
	rootCmd *cobra.Command
	out     io.Writer
	in      io.Reader

	user     string
	password string
	verbose  bool
	debug    bool

	factory ClientFactory
	client  apiclient.Client
	stat    stats.StatsReceiver

	// ran flips once a leaf command actually starts; errors before
	// that are usage errors.
	ran bool

	// For tests; defaults check os.Stdin.
	isTerminal func() bool
}

func (c *cliClient) Exec() error {
	err := c.rootCmd.Execute()
	if err != nil && !c.ran {
		return cerrors.NewError(err, cerrors.UsageFailureExitCode)
	}
	return err
}

func NewCLIClient(factory ClientFactory) (CLIClient, error) {
	c := &cliClient{
		out:     os.Stdout,
		in:      os.Stdin,
		factory: factory,
		stat:    stats.DefaultStatsReceiver(),
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}

	c.rootCmd = &cobra.Command{
		Use:           "gaiagps",
		Short:         "Command line client for gaiagps.com",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			c.setupLogging()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.debug {
				log.Debugf("Request stats: %s", c.stat.Render(true))
			}
		},
	}
	pf := c.rootCmd.PersistentFlags()
	pf.StringVar(&c.user, "user", "", "Gaia username")
	pf.StringVar(&c.password, "pass", "", "Gaia password (prompt if unspecified)")
	pf.BoolVar(&c.verbose, "verbose", false, "Enable verbose output")
	pf.BoolVar(&c.debug, "debug", false, "Enable debug output")

	c.rootCmd.AddCommand(makeWaypointCmd(c))
	c.rootCmd.AddCommand(makeTrackCmd(c))
	c.rootCmd.AddCommand(makeFolderCmd(c))
	c.addCmd(c.rootCmd, &treeCmd{})
	c.addCmd(c.rootCmd, &testCmd{})
	c.addCmd(c.rootCmd, &uploadCmd{})
	if os.Getenv("GAIAGPSCLIENTDEV") != "" {
		c.addCmd(c.rootCmd, &queryCmd{})
	}

	return c, nil
}

func (c *cliClient) setupLogging() {
	log.SetLevel(log.WarnLevel)
	if c.debug {
		log.SetLevel(log.DebugLevel)
	} else if c.verbose {
		log.SetLevel(log.InfoLevel)
	}
}

// Client logs in lazily so commands that fail flag validation never
// touch the network. Prompts for the password when one is needed and
// stdin is a terminal.
func (c *cliClient) Client() (apiclient.Client, error) {
	if c.client != nil {
		return c.client, nil
	}

	password := c.password
	if c.user != "" && password == "" && c.isTerminal() {
		fmt.Fprint(os.Stderr, "Password: ")
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, errors.Wrap(err, "unable to read password")
		}
		password = string(secret)
	}

	client, err := c.factory(c.user, password, c.stat)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to access Gaia")
	}
	c.client = client
	return client, nil
}

// command is one CLI subcommand, following the registerFlags/run split.
type command interface {
	registerFlags() *cobra.Command
	run(cl *cliClient, cmd *cobra.Command, args []string) error
}

func (c *cliClient) addCmd(parent *cobra.Command, cmd command) {
	cobraCmd := cmd.registerFlags()
	cobraCmd.RunE = func(innerCmd *cobra.Command, args []string) error {
		c.ran = true
		return cmd.run(c, innerCmd, args)
	}
	parent.AddCommand(cobraCmd)
}

func (c *cliClient) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// verbosef narrates actions when --verbose is given, like the rest of
// the output it goes to stdout rather than the log.
func (c *cliClient) verbosef(format string, args ...interface{}) {
	if c.verbose {
		fmt.Fprintf(c.out, format+"\n", args...)
	}
}

// failure is a command failure whose message has already been printed.
// It carries only the exit code.
func failure() error {
	return cerrors.NewError(errors.New(""), cerrors.CommandFailureExitCode)
}
