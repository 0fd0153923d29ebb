package apiclient

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"runtime"
	"sync"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"golang.org/x/net/publicsuffix"
)

// DefaultJarPath returns where the session cookie file lives. A dotfile
// in the home directory, except on Windows where the working directory
// is used.
func DefaultJarPath() (string, error) {
	if runtime.GOOS == "windows" {
		return "gaiagpsclient-cookies.txt", nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "unable to locate home directory")
	}
	return home + "/.gaiagpsclient", nil
}

type savedCookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Path     string    `json:"path,omitempty"`
	Domain   string    `json:"domain,omitempty"`
	Expires  time.Time `json:"expires,omitempty"`
	Secure   bool      `json:"secure,omitempty"`
	HTTPOnly bool      `json:"httponly,omitempty"`
}

// PersistentJar is an http.CookieJar that can save its contents to a
// file and restore them next run, so one login survives across
// invocations.
type PersistentJar struct {
	mu    sync.Mutex
	path  string
	jar   http.CookieJar
	saved map[string][]savedCookie
}

// NewPersistentJar loads the jar at path if it exists. A missing or
// corrupt file yields an empty jar, not an error; a fresh login will
// rewrite it.
func NewPersistentJar(path string) (*PersistentJar, error) {
	inner, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errors.Wrap(err, "unable to create cookie jar")
	}
	p := &PersistentJar{
		path:  path,
		jar:   inner,
		saved: map[string][]savedCookie{},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p, nil
	}
	stored := map[string][]savedCookie{}
	if err := json.Unmarshal(data, &stored); err != nil {
		return p, nil
	}
	now := time.Now()
	for rawurl, cookies := range stored {
		u, err := url.Parse(rawurl)
		if err != nil {
			continue
		}
		var live []*http.Cookie
		var keep []savedCookie
		for _, c := range cookies {
			if !c.Expires.IsZero() && c.Expires.Before(now) {
				continue
			}
			keep = append(keep, c)
			live = append(live, &http.Cookie{
				Name:     c.Name,
				Value:    c.Value,
				Path:     c.Path,
				Domain:   c.Domain,
				Expires:  c.Expires,
				Secure:   c.Secure,
				HttpOnly: c.HTTPOnly,
			})
		}
		if len(live) > 0 {
			p.jar.SetCookies(u, live)
			p.saved[rawurl] = keep
		}
	}
	return p, nil
}

func (p *PersistentJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.jar.SetCookies(u, cookies)

	key := u.Scheme + "://" + u.Host
	existing := p.saved[key]
	for _, c := range cookies {
		entry := savedCookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HTTPOnly: c.HttpOnly,
		}
		replaced := false
		for i := range existing {
			if existing[i].Name == c.Name {
				existing[i] = entry
				replaced = true
				break
			}
		}
		if !replaced {
			existing = append(existing, entry)
		}
	}
	p.saved[key] = existing
}

func (p *PersistentJar) Cookies(u *url.URL) []*http.Cookie {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.jar.Cookies(u)
}

// Save writes the jar back to its file.
func (p *PersistentJar) Save() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	data, err := json.MarshalIndent(p.saved, "", "  ")
	if err != nil {
		return errors.Wrap(err, "unable to serialize cookies")
	}
	// Session cookies are credentials; keep the file private.
	return errors.Wrap(os.WriteFile(p.path, data, 0600), "unable to save cookies")
}
