package device

import (
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/ssh"
)

// Shell is an interactive remote shell over one SSH session, implementing
// session.Channel. With a pty requested, the device merges stderr into the
// stdout stream, which is what the prompt-watching loop expects.
type Shell struct {
	session *ssh.Session
	stdin   io.WriteCloser
	out     chan string
	done    chan struct{}
	once    sync.Once
}

// OpenShell starts an interactive shell on the client's connection.
func (c *Client) OpenShell() (*Shell, error) {
	session, err := c.ssh.NewSession()
	if err != nil {
		return nil, fmt.Errorf("SSH session: %w", err)
	}

	modes := ssh.TerminalModes{
		ssh.ECHO:          0,
		ssh.TTY_OP_ISPEED: 14400,
		ssh.TTY_OP_OSPEED: 14400,
	}
	if err := session.RequestPty("vt100", 40, 200, modes); err != nil {
		session.Close()
		return nil, fmt.Errorf("request pty: %w", err)
	}

	stdin, err := session.StdinPipe()
	if err != nil {
		session.Close()
		return nil, err
	}
	stdout, err := session.StdoutPipe()
	if err != nil {
		session.Close()
		return nil, err
	}

	if err := session.Shell(); err != nil {
		session.Close()
		return nil, fmt.Errorf("start shell: %w", err)
	}

	s := &Shell{
		session: session,
		stdin:   stdin,
		out:     make(chan string, 16),
		done:    make(chan struct{}),
	}
	go s.pump(stdout)
	return s, nil
}

func (s *Shell) pump(r io.Reader) {
	defer close(s.out)
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			select {
			case s.out <- string(buf[:n]):
			case <-s.done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// Send writes one statement line to the shell.
func (s *Shell) Send(line string) error {
	_, err := io.WriteString(s.stdin, line+"\n")
	return err
}

// Recv returns the output stream. The channel closes when the shell ends.
func (s *Shell) Recv() <-chan string {
	return s.out
}

// Close tears the shell down. Safe to call more than once.
func (s *Shell) Close() error {
	s.once.Do(func() {
		close(s.done)
		s.stdin.Close()
		s.session.Close()
	})
	return nil
}
