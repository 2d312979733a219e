// creature-arena-server hosts one solo creature-arena game per SSH
// connection. Build:
//
//	go build -o creature-arena-server ./cmd/server
//
// Usage:
//
//	./creature-arena-server [--port 2222] [--key host_key]
//
// Connect:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	"creature-arena/internal/catalog"
	"creature-arena/internal/config"
	"creature-arena/internal/game"
	"creature-arena/internal/random"
	internalssh "creature-arena/internal/ssh"
)

// maxNameBytes caps trainer names taken from the SSH user.
const maxNameBytes = 16

// allowedTerms lists the TERM values the server will build a screen for.
// Anything else falls back to the default.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "creature-arena-server:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	port := flag.Int("port", cfg.SSHPort, "SSH server port")
	keyFile := flag.String("key", cfg.HostKey, "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.Parse()

	logger, err := config.NewLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	dataDir, err := cfg.DataPath()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	if *keyFile == "" {
		*keyFile = filepath.Join(dataDir, "host_key")
	}

	rng, seed, err := random.New(cfg.Seed)
	if err != nil {
		return err
	}
	dex, report, err := catalog.Open(cfg.AbilitiesFile, cfg.CreaturesFile, rng, logger)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("catalog loaded", "species", dex.Size(), "skipped", len(report.Skipped), "seed", seed)

	signer, err := loadOrCreateHostKey(*keyFile, logger)
	if err != nil {
		return err
	}

	h := &host{dex: dex, dataDir: dataDir, logger: logger}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication; add gossh.PublicKeyAuth for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("creature-arena SSH server listening", "port", *port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// host runs one independent game per connection. Only the catalog is
// shared, and it is read-only after load.
type host struct {
	dex     *catalog.Pokedex
	dataDir string
	logger  *slog.Logger
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// for the duration of the game so the SSH session stays open.
func (h *host) handleSession(s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	name := sanitizeName(s.User())
	if name == "" {
		name = "Trainer"
	}
	logger := h.logger.With("remote", s.RemoteAddr().String(), "user", name)

	term := internalssh.Term(s.Environ())
	if !allowedTerms[term] {
		logger.Warn("unsupported TERM, using default", "term", term)
		term = internalssh.DefaultTerm
	}

	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	rng, seed, err := random.New(0)
	if err != nil {
		screen.Fini()
		logger.Error("seed rng", "error", err)
		return
	}
	logger.Info("game started", "seed", seed)
	game.NewWithScreen(screen, game.Options{
		Pokedex:     h.dex,
		Rand:        rng,
		Logger:      logger,
		DataDir:     h.dataDir,
		TrainerName: name,
	}).Run()
	logger.Info("game finished")
}

// sanitizeName drops control characters and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating new ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	pemBlock, err := xssh.MarshalPrivateKey(key, "creature-arena server")
	if err == nil {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err == nil {
			err = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
		}
	}
	if err != nil {
		logger.Warn("host key not saved", "path", path, "error", err)
	}
	return signer, nil
}
