//go:build e2e

// Package e2e exercises the cinecheck binary end to end: a stub deployment of
// the ticketing app serves the login flow, and the real binary drives a real
// chromium against it.
package e2e

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

const (
	binaryPath = "/tmp/cinecheck-e2e"

	// credentials the stub deployment accepts
	stubEmail    = "user@example.com"
	stubPassword = "secret123"
)

var (
	stubURL    string
	configHome string // isolated XDG_CONFIG_HOME so runs never touch the user's config
)

func TestMain(m *testing.M) {
	code := 1
	defer func() {
		os.Exit(code)
	}()

	if err := buildBinary(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build binary: %v\n", err)
		return
	}
	defer os.Remove(binaryPath)

	srv := httptest.NewServer(stubApp())
	defer srv.Close()
	stubURL = srv.URL

	var err error
	configHome, err = os.MkdirTemp("", "cinecheck-e2e-config-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create config home: %v\n", err)
		return
	}
	defer os.RemoveAll(configHome)

	code = m.Run()
}

func buildBinary() error {
	// project root is the parent of the e2e directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get cwd: %w", err)
	}
	projectRoot := filepath.Dir(cwd)

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/cinecheck")
	cmd.Dir = projectRoot
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	return nil
}

// runCinecheck executes the binary against the isolated config home and
// returns combined output plus the exit code.
func runCinecheck(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+configHome, "NO_COLOR=1")
	out, err := cmd.CombinedOutput()
	if err == nil {
		return string(out), 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(out), exitErr.ExitCode()
	}
	t.Fatalf("run %v: %v\n%s", args, err, out)
	return "", -1
}

// stubApp is a minimal rendition of the app's auth surface: a login form with
// native validation, an error banner on bad credentials and an avatar plus
// logout button once signed in.
func stubApp() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_ = r.ParseForm()
			if r.FormValue("email") == stubEmail && r.FormValue("password") == stubPassword {
				http.SetCookie(w, &http.Cookie{Name: "session", Value: "ok", Path: "/"})
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			writeLoginPage(w, "Invalid email or password")
			return
		}
		writeLoginPage(w, "")
	})

	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "", Path: "/", MaxAge: -1})
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		var signedIn bool
		if c, err := r.Cookie("session"); err == nil && c.Value == "ok" {
			signedIn = true
		}
		writeHomePage(w, signedIn)
	})

	return mux
}

func writeLoginPage(w http.ResponseWriter, banner string) {
	bannerHTML := ""
	if banner != "" {
		bannerHTML = `<div class="text-red-500">` + banner + `</div>`
	}
	fmt.Fprintf(w, `<!DOCTYPE html>
<html><head><title>Sign In</title></head><body>
<form method="POST" action="/login">
  <input id="email" name="email" type="email" required>
  <input id="password" name="password" type="password" required>
  <input id="remember-me" name="remember" type="checkbox">
  %s
  <button type="submit">Sign In</button>
</form>
</body></html>`, bannerHTML)
}

func writeHomePage(w http.ResponseWriter, signedIn bool) {
	session := `<a href="/login">Sign In</a>`
	if signedIn {
		session = `<img alt="User" src="data:image/gif;base64,R0lGODlhAQABAAAAACw=">
<form method="POST" action="/logout"><button type="submit">Logout</button></form>`
	}
	fmt.Fprintf(w, `<!DOCTYPE html>
<html><head><title>CinesTech</title></head><body>
<header>%s</header>
<main>Now showing</main>
</body></html>`, session)
}
