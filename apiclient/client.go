package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sethgrid/pester"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/8cH9azbsFifZ/gaiagpsclient/common/stats"
)

// Base is the gaiagps service endpoint.
const Base = "https://www.gaiagps.com"

// ~2min total of trying with exponential backoff (0 and 1 both mean 1 try total)
const defaultHTTPTries = 7

// Client-side politeness cap on request rate.
const requestsPerSecond = 5

// Doer is the narrow HTTP surface GaiaClient needs, so tests can
// substitute their own transport.
type Doer interface {
	Do(req *http.Request) (resp *http.Response, err error)
}

// MakePesterClient returns the retrying HTTP client all API traffic
// flows through.
func MakePesterClient(jar http.CookieJar) *pester.Client {
	client := pester.NewExtendedClient(&http.Client{
		Jar:     jar,
		Timeout: 60 * time.Second,
	})
	client.Backoff = pester.ExponentialBackoff
	client.MaxRetries = defaultHTTPTries
	client.LogHook = func(e pester.ErrEntry) {
		log.Errorf("Retrying after failed attempt: %+v", e)
	}
	return client
}

// GaiaClient is the reference Client implementation, speaking JSON over
// HTTPS to gaiagps.com with a persisted login session.
type GaiaClient struct {
	base    string
	http    Doer
	jar     *PersistentJar
	limiter *rate.Limiter
	stat    stats.StatsReceiver
}

var _ Client = (*GaiaClient)(nil)

// NewGaiaClient logs into gaiagps.com, reusing the session saved in the
// default cookie jar when it is still valid. With no saved session,
// username and password are required.
func NewGaiaClient(username, password string, stat stats.StatsReceiver) (*GaiaClient, error) {
	jarPath, err := DefaultJarPath()
	if err != nil {
		return nil, err
	}
	jar, err := NewPersistentJar(jarPath)
	if err != nil {
		return nil, err
	}
	return NewCustomGaiaClient(Base, username, password, jar, nil, stat)
}

// NewCustomGaiaClient is NewGaiaClient with every collaborator
// injectable. A nil httpClient gets the standard retrying client.
func NewCustomGaiaClient(base, username, password string, jar *PersistentJar, httpClient Doer, stat stats.StatsReceiver) (*GaiaClient, error) {
	if httpClient == nil {
		httpClient = MakePesterClient(jar)
	}
	if stat == nil {
		stat = stats.NilStatsReceiver()
	}
	g := &GaiaClient{
		base:    strings.TrimSuffix(base, "/"),
		http:    httpClient,
		jar:     jar,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		stat:    stat.Scope("api"),
	}

	if ok, err := g.TestAuth(); err != nil {
		return nil, err
	} else if ok {
		log.Debug("Reusing saved session")
		return g, nil
	}

	if username == "" {
		return nil, errors.Wrap(ErrAuth, "no saved session and no username given")
	}
	if err := g.login(username, password); err != nil {
		return nil, err
	}
	if err := g.jar.Save(); err != nil {
		log.Warnf("Unable to save session: %v", err)
	}
	return g, nil
}

func (g *GaiaClient) BaseURL() string {
	return g.base
}

// gurl builds an API URL. The service requires the trailing slash.
func (g *GaiaClient) gurl(parts ...string) string {
	return g.base + "/" + strings.Join(parts, "/") + "/"
}

func (g *GaiaClient) do(req *http.Request) (*http.Response, error) {
	if err := g.limiter.Wait(context.Background()); err != nil {
		return nil, err
	}
	defer g.stat.Latency(req.Method).UpdateSince(time.Now())
	log.Debugf("%s %s", req.Method, req.URL)
	resp, err := g.http.Do(req)
	if err != nil {
		g.stat.Counter("errors").Inc(1)
		return nil, errors.Wrapf(err, "%s %s failed", req.Method, req.URL.Path)
	}
	return resp, nil
}

func (g *GaiaClient) login(username, password string) error {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	req, err := http.NewRequest("POST", g.gurl("login"), strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()

	ok, err := g.TestAuth()
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(ErrAuth, "as %s", username)
	}
	log.Infof("Logged in as %s", username)
	return nil
}

// TestAuth probes the login page. A logged-in session is redirected
// away from it.
func (g *GaiaClient) TestAuth() (bool, error) {
	req, err := http.NewRequest("GET", g.gurl("login"), nil)
	if err != nil {
		return false, err
	}
	resp, err := g.do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	final := req.URL.Path
	if resp.Request != nil && resp.Request.URL != nil {
		final = resp.Request.URL.Path
	}
	return !strings.Contains(final, "login"), nil
}

// statusError maps an unexpected response status onto our error taxonomy.
func statusError(resp *http.Response, what string) error {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return errors.Wrap(ErrNotFound, what)
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.Wrap(ErrAuth, what)
	default:
		return errors.Errorf("%s: server returned %s", what, resp.Status)
	}
}
