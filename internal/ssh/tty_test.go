package ssh

import (
	"testing"
	"time"

	gossh "github.com/gliderlabs/ssh"
)

// fakeSession records writes; only the methods the tty uses are implemented.
type fakeSession struct {
	gossh.Session
	written []byte
}

func (f *fakeSession) Write(b []byte) (int, error) {
	f.written = append(f.written, b...)
	return len(b), nil
}

func TestTerm(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
		want    string
	}{
		{"present", []string{"LANG=C", "TERM=tmux"}, "tmux"},
		{"missing", []string{"LANG=C"}, DefaultTerm},
		{"empty value", []string{"TERM="}, DefaultTerm},
		{"nil", nil, DefaultTerm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Term(tt.environ); got != tt.want {
				t.Errorf("Term(%v) = %q, want %q", tt.environ, got, tt.want)
			}
		})
	}
}

func TestSessionTtyWrite(t *testing.T) {
	s := &fakeSession{}
	tty := NewSessionTty(s, gossh.Pty{}, nil)
	if _, err := tty.Write([]byte("hi")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if string(s.written) != "hi" {
		t.Errorf("written = %q, want %q", s.written, "hi")
	}
}

func TestSessionTtyResize(t *testing.T) {
	winCh := make(chan gossh.Window, 1)
	tty := NewSessionTty(&fakeSession{}, gossh.Pty{Window: gossh.Window{Width: 80, Height: 24}}, winCh)

	ws, err := tty.WindowSize()
	if err != nil {
		t.Fatalf("WindowSize: %v", err)
	}
	if ws.Width != 80 || ws.Height != 24 {
		t.Fatalf("initial size = %dx%d, want 80x24", ws.Width, ws.Height)
	}

	resized := make(chan struct{}, 1)
	tty.NotifyResize(func() { resized <- struct{}{} })
	winCh <- gossh.Window{Width: 120, Height: 40}
	close(winCh)

	select {
	case <-resized:
	case <-time.After(time.Second):
		t.Fatal("resize callback not called")
	}
	ws, _ = tty.WindowSize()
	if ws.Width != 120 || ws.Height != 40 {
		t.Errorf("size after resize = %dx%d, want 120x40", ws.Width, ws.Height)
	}
}
