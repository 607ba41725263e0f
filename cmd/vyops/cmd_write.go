package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vyops/vyops/pkg/cli"
	"github.com/vyops/vyops/pkg/command"
	"github.com/vyops/vyops/pkg/session"
	"github.com/vyops/vyops/pkg/util"
)

// executeOrPreview is the shared tail of every write command: preview the
// statements unless -x was given, otherwise run the full apply flow and
// report the outcome in user terms.
func executeOrPreview(operation string, stmts []command.Statement) error {
	if len(stmts) == 0 {
		fmt.Println("No statements to apply")
		return nil
	}
	if !executeMode {
		preview(stmts)
		return nil
	}

	dev, err := requireDevice()
	if err != nil {
		return err
	}
	if metricsMode {
		defer func() {
			if err := session.DumpMetrics(os.Stderr); err != nil {
				util.Warnf("Could not dump metrics: %v", err)
			}
		}()
	}

	res, err := dev.Apply(context.Background(), operation, newBatch(stmts))
	if err != nil {
		if verbose && res != nil && res.Transcript != "" {
			fmt.Println(cli.Dim(res.Transcript))
		}
		var rbErr *session.RollbackError
		if errors.As(err, &rbErr) {
			fmt.Println(cli.Red("Change may be partially applied; verify the device manually."))
			return err
		}
		var cmdErr *session.CommandError
		var commitErr *session.CommitError
		if errors.As(err, &cmdErr) || errors.As(err, &commitErr) {
			fmt.Println(cli.Yellow("Change rejected and reverted."))
		}
		return err
	}

	if saveMode {
		fmt.Println(cli.Green("Committed and saved."))
	} else {
		fmt.Println(cli.Green("Committed."))
	}
	return nil
}
