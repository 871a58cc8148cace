package wikihtml

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// An Engine turns MediaWiki markup into HTML.
//
// A non-empty errText means the engine could not convert this input;
// the conversion may be retried with different text.  A non-nil error
// means the engine itself is unusable and nothing should be retried.
type Engine interface {
	Convert(ctx context.Context, markup string) (html, errText string, err error)
}

// DefaultEngineCommand and DefaultEngineArgs invoke pandoc reading
// mediawiki on stdin and writing an HTML fragment on stdout.
var (
	DefaultEngineCommand = "pandoc"
	DefaultEngineArgs    = []string{"-f", "mediawiki", "-t", "html"}
)

// PandocEngine runs an external converter once per page.
//
// Anything written to stderr counts as a failed conversion, whatever
// the exit status.
type PandocEngine struct {
	Command string
	Args    []string
	// Zero means wait for as long as the converter takes.
	Timeout time.Duration
}

// NewPandocEngine gets an engine running pandoc with the default
// arguments.
func NewPandocEngine() *PandocEngine {
	return &PandocEngine{Command: DefaultEngineCommand, Args: DefaultEngineArgs}
}

func (e *PandocEngine) command() (string, []string) {
	if e.Command == "" {
		return DefaultEngineCommand, DefaultEngineArgs
	}
	return e.Command, e.Args
}

// Convert runs the converter with markup on stdin.
func (e *PandocEngine) Convert(ctx context.Context, markup string) (string, string, error) {
	runCtx := ctx
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	name, args := e.command()
	cmd := exec.CommandContext(runCtx, name, args...)
	cmd.Stdin = strings.NewReader(markup)
	if e.Timeout > 0 {
		// Don't wait on orphans still holding the pipes.
		cmd.WaitDelay = time.Second
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// A canceled run isn't the page's fault.  A timeout is.
		if cerr := ctx.Err(); cerr != nil {
			return "", "", cerr
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", "", errors.Wrapf(err, "running %v", name)
		}
		if stderr.Len() == 0 {
			return stdout.String(), name + ": " + exitErr.Error(), nil
		}
	}

	return stdout.String(), stderr.String(), nil
}
