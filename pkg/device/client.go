package device

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

// opWrapper runs an operational-mode command from a plain shell, outside
// any interactive session.
const opWrapper = "/opt/vyatta/bin/vyatta-op-cmd-wrapper"

// Client is an SSH connection to a device, used for one-shot read-only
// commands and for opening interactive shells.
type Client struct {
	profile *Profile
	ssh     *ssh.Client
}

// Dial connects to the device described by the profile.
func Dial(p *Profile) (*Client, error) {
	var auth []ssh.AuthMethod
	if p.KeyFile != "" {
		key, err := os.ReadFile(p.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("reading key file: %w", err)
		}
		signer, err := ssh.ParsePrivateKey(key)
		if err != nil {
			return nil, fmt.Errorf("parsing key file: %w", err)
		}
		auth = append(auth, ssh.PublicKeys(signer))
	}
	if p.Password != "" {
		auth = append(auth, ssh.Password(p.Password))
	}

	config := &ssh.ClientConfig{
		User: p.Username,
		Auth: auth,
		// Router appliances rotate host keys on reinstall; pinning is
		// left to the deployment's ssh_known_hosts.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         10 * time.Second,
	}

	client, err := ssh.Dial("tcp", p.Addr(), config)
	if err != nil {
		return nil, fmt.Errorf("SSH dial %s: %w", p.Addr(), err)
	}
	return &Client{profile: p, ssh: client}, nil
}

// Close closes the SSH connection.
func (c *Client) Close() error {
	return c.ssh.Close()
}

// Run executes a command in a fresh non-interactive session and returns
// the combined output.
func (c *Client) Run(cmd string) (string, error) {
	session, err := c.ssh.NewSession()
	if err != nil {
		return "", fmt.Errorf("SSH session: %w", err)
	}
	defer session.Close()

	output, err := session.CombinedOutput(cmd)
	if err != nil {
		return string(output), fmt.Errorf("SSH exec %q: %w", cmd, err)
	}
	return string(output), nil
}

// RunOp executes an operational-mode command through the op wrapper.
func (c *Client) RunOp(args ...string) (string, error) {
	return c.Run(opWrapper + " " + strings.Join(args, " "))
}

// ShowConfigurationCommands dumps the running configuration as flat set
// statements, the input format of the parser and the backup payload.
func (c *Client) ShowConfigurationCommands() (string, error) {
	return c.RunOp("show", "configuration", "commands")
}

// ShowVersion returns the device's version banner.
func (c *Client) ShowVersion() (string, error) {
	return c.RunOp("show", "version")
}
