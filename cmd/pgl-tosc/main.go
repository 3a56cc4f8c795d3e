package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/paulschiretz/pgl-tosc/cmd"
	"github.com/paulschiretz/pgl-tosc/pkg/buildinfo"
	"github.com/paulschiretz/pgl-tosc/pkg/flagparse"
	"github.com/paulschiretz/pgl-tosc/pkg/plog"
	"github.com/paulschiretz/pgl-tosc/pkg/usererr"
)

// run encapsulates the main application logic and returns an error if something
// goes wrong, allowing the main function to handle exit codes.
func run(ctx context.Context, args []string, cwd string) error {
	command, flagMap, err := flagparse.Parse(args)
	if err != nil {
		return err
	}

	switch command {
	case flagparse.None:
		return nil // Help was printed.
	case flagparse.Version:
		return cmd.RunVersion(os.Stdout, buildinfo.Name, buildinfo.Version)
	case flagparse.ExtractXML:
		return cmd.RunExtractXML(ctx, cwd, flagMap)
	case flagparse.MakeTosc:
		return cmd.RunMakeTosc(ctx, cwd, flagMap)
	default:
		return fmt.Errorf("internal error: unknown command %d", command)
	}
}

// report prints err on the channel matching its origin.
func report(err error) {
	if usererr.IsUserError(err) {
		plog.Fail(err)
		return
	}
	plog.Error(buildinfo.Name+" exited with error", "error", err)
}

func main() {
	// Set up a context that is canceled when an interrupt signal is received.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Listen for interrupt signals (like Ctrl+C) in a separate goroutine.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	go func() {
		<-sigChan
		cancel()
	}()

	cwd, err := os.Getwd()
	if err != nil {
		report(fmt.Errorf("could not determine working directory: %w", err))
		os.Exit(1)
	}

	if err := run(ctx, os.Args[1:], cwd); err != nil {
		report(err)
		os.Exit(1)
	}
}
