package apiclient

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPersistentJarRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies")
	u, _ := url.Parse("https://www.example.com/")

	jar, err := NewPersistentJar(path)
	if err != nil {
		t.Fatalf("NewPersistentJar failed: %v", err)
	}
	jar.SetCookies(u, []*http.Cookie{{Name: "session", Value: "tok", Path: "/"}})
	if err := jar.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := NewPersistentJar(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	cookies := reloaded.Cookies(u)
	if len(cookies) != 1 || cookies[0].Name != "session" || cookies[0].Value != "tok" {
		t.Errorf("reloaded cookies = %v", cookies)
	}
}

func TestPersistentJarDropsExpired(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies")
	u, _ := url.Parse("https://www.example.com/")

	jar, err := NewPersistentJar(path)
	if err != nil {
		t.Fatal(err)
	}
	jar.SetCookies(u, []*http.Cookie{
		{Name: "stale", Value: "x", Path: "/", Expires: time.Now().Add(-time.Hour)},
		{Name: "fresh", Value: "y", Path: "/", Expires: time.Now().Add(time.Hour)},
	})
	if err := jar.Save(); err != nil {
		t.Fatal(err)
	}

	reloaded, err := NewPersistentJar(path)
	if err != nil {
		t.Fatal(err)
	}
	cookies := reloaded.Cookies(u)
	if len(cookies) != 1 || cookies[0].Name != "fresh" {
		t.Errorf("reloaded cookies = %v, want only fresh", cookies)
	}
}

func TestPersistentJarReplacesByName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies")
	u, _ := url.Parse("https://www.example.com/")

	jar, err := NewPersistentJar(path)
	if err != nil {
		t.Fatal(err)
	}
	jar.SetCookies(u, []*http.Cookie{{Name: "session", Value: "old", Path: "/"}})
	jar.SetCookies(u, []*http.Cookie{{Name: "session", Value: "new", Path: "/"}})
	if err := jar.Save(); err != nil {
		t.Fatal(err)
	}

	reloaded, err := NewPersistentJar(path)
	if err != nil {
		t.Fatal(err)
	}
	cookies := reloaded.Cookies(u)
	if len(cookies) != 1 || cookies[0].Value != "new" {
		t.Errorf("reloaded cookies = %v, want one updated cookie", cookies)
	}
}

func TestPersistentJarCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies")
	if err := os.WriteFile(path, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}
	jar, err := NewPersistentJar(path)
	if err != nil {
		t.Fatalf("corrupt file should yield an empty jar, got %v", err)
	}
	u, _ := url.Parse("https://www.example.com/")
	if cookies := jar.Cookies(u); len(cookies) != 0 {
		t.Errorf("expected no cookies, got %v", cookies)
	}
}
