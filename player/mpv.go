package player

import (
	"crypto/rand"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/vidstrip/vidstrip/constant"
	"github.com/vidstrip/vidstrip/log"
	"github.com/vidstrip/vidstrip/where"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	quitTimeout       = 3 * time.Second
)

// LaunchOptions describe the mpv process to start.
type LaunchOptions struct {
	Source       string
	Title        string
	CaptionsFile string
	ExtraArgs    []string
}

// MPV is a running mpv process controlled through its JSON-IPC socket.
type MPV struct {
	socketPath string
	cmd        *exec.Cmd
	stderr     io.WriteCloser
	exited     chan struct{}
	mu         sync.Mutex
}

// Launch starts mpv and blocks until its IPC socket accepts connections.
func Launch(opts LaunchOptions) (*MPV, error) {
	args, err := buildArgs(opts)
	if err != nil {
		return nil, err
	}

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return nil, fmt.Errorf("generate socket name: %w", err)
	}

	m := &MPV{
		socketPath: filepath.Join(where.Temp(), fmt.Sprintf("%x.sock", randomBytes)),
		exited:     make(chan struct{}),
		stderr:     log.Writer(constant.MPV),
	}

	args = append([]string{"--input-ipc-server=" + m.socketPath}, args...)
	m.cmd = exec.Command(constant.MPV, args...)
	m.cmd.SysProcAttr = sysProcAttr()
	m.cmd.Stderr = m.stderr

	if err := m.cmd.Start(); err != nil {
		_ = m.stderr.Close()
		return nil, fmt.Errorf("start mpv: %w", err)
	}

	go func() {
		_ = m.cmd.Wait()
		_ = m.stderr.Close()
		close(m.exited)
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warnf("killing mpv: socket never became ready")
			_ = killProcess(m.cmd)
		}
		return nil, fmt.Errorf("mpv socket not ready: %w", err)
	}

	log.Infof("mpv started with pid %d", m.cmd.Process.Pid)
	return m, nil
}

// buildArgs turns the options into mpv flags. The user's mpv.conf stays in charge of video output.
func buildArgs(opts LaunchOptions) ([]string, error) {
	target, err := sanitizeMediaTarget(opts.Source)
	if err != nil {
		return nil, fmt.Errorf("invalid media target: %w", err)
	}

	title := sanitizeTitle(opts.Title)
	if title == "" {
		title = filepath.Base(target)
	}

	args := []string{
		"--no-terminal",
		"--really-quiet",
		"--force-media-title=" + title,
		"--title=" + title,
		"--force-window=yes",
		"--keep-open=yes",
		"--pause",
		"--sub-visibility=no",
	}

	if opts.CaptionsFile != "" {
		args = append(args, "--sub-file="+filepath.Clean(opts.CaptionsFile))
	}

	for _, extra := range opts.ExtraArgs {
		if !strings.HasPrefix(extra, "--") {
			return nil, fmt.Errorf("extra argument %q is not a long flag", extra)
		}
		args = append(args, extra)
	}

	// "--" keeps a source that looks like a flag from being parsed as one
	return append(args, "--", target), nil
}

// Socket returns the IPC socket path.
func (m *MPV) Socket() string {
	return m.socketPath
}

// Wait returns a channel closed when the process exits.
func (m *MPV) Wait() <-chan struct{} {
	return m.exited
}

func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			_ = conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// Close asks mpv to quit, kills it if it does not, and removes the socket.
func (m *MPV) Close() error {
	select {
	case <-m.exited:
	default:
		_, _ = m.Command("quit")
		select {
		case <-m.exited:
		case <-time.After(quitTimeout):
			_ = killProcess(m.cmd)
			<-m.exited
		}
	}

	if err := os.Remove(m.socketPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https", "file":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
