package device

import (
	"context"
	"fmt"
	"os/user"
	"time"

	"github.com/vyops/vyops/pkg/audit"
	"github.com/vyops/vyops/pkg/backup"
	"github.com/vyops/vyops/pkg/confparse"
	"github.com/vyops/vyops/pkg/session"
	"github.com/vyops/vyops/pkg/util"
)

// Device binds a profile to the engine components for the standard change
// flow: dump the running configuration, back it up, execute the batch,
// and re-parse to refresh displayed state.
type Device struct {
	Profile  *Profile
	Executor *session.Executor
	Sink     backup.Sink  // optional pre-change backup
	Audit    audit.Logger // optional batch audit trail
}

// ownedShell couples a Shell's lifetime to its dedicated SSH connection,
// so closing the executor's channel also releases the transport.
type ownedShell struct {
	*Shell
	client *Client
}

func (o *ownedShell) Close() error {
	o.Shell.Close()
	return o.client.Close()
}

// dialFunc opens a fresh connection plus interactive shell per session.
func (d *Device) dialFunc() session.DialFunc {
	return func(_ context.Context) (session.Channel, error) {
		c, err := Dial(d.Profile)
		if err != nil {
			return nil, err
		}
		sh, err := c.OpenShell()
		if err != nil {
			c.Close()
			return nil, err
		}
		return &ownedShell{Shell: sh, client: c}, nil
	}
}

// Fetch dumps and parses the device's running configuration.
func (d *Device) Fetch(_ context.Context) (*confparse.Config, error) {
	c, err := Dial(d.Profile)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	dump, err := c.ShowConfigurationCommands()
	if err != nil {
		return nil, fmt.Errorf("fetching configuration: %w", err)
	}
	return confparse.ParseConfiguration(dump), nil
}

// Apply runs the full change flow for one batch. The pre-change dump goes
// to the backup sink before any statement is sent; a sink failure aborts
// the change. The operation string names the user action for the audit
// trail.
func (d *Device) Apply(ctx context.Context, operation string, batch *session.Batch) (*session.Result, error) {
	log := util.WithDevice(d.Profile.Name)
	start := time.Now()

	backupRef := ""
	if d.Sink != nil {
		c, err := Dial(d.Profile)
		if err != nil {
			return nil, err
		}
		dump, err := c.ShowConfigurationCommands()
		c.Close()
		if err != nil {
			return nil, fmt.Errorf("pre-change backup: %w", err)
		}
		backupRef, err = d.Sink.Store(ctx, d.Profile.Name, dump)
		if err != nil {
			return nil, fmt.Errorf("pre-change backup: %w", err)
		}
		log.Debugf("backup stored at %s", backupRef)
	}

	res, err := d.Executor.Execute(ctx, d.Profile.Name, d.dialFunc(), batch)

	if d.Audit != nil {
		ev := &audit.Event{
			Timestamp:  start,
			User:       currentUser(),
			Device:     d.Profile.Name,
			Operation:  operation,
			Statements: batch.Statements,
			Success:    res.Success,
			RolledBack: res.RollbackTranscript != "",
			BackupRef:  backupRef,
			Duration:   time.Since(start),
		}
		if err != nil {
			ev.Error = err.Error()
		}
		if logErr := d.Audit.Log(ev); logErr != nil {
			log.Warnf("audit log write failed: %v", logErr)
		}
	}
	return res, err
}

func currentUser() string {
	u, err := user.Current()
	if err != nil {
		return "unknown"
	}
	return u.Username
}
