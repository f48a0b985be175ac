package generators

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/reusee/dscope"

	"probelab/logs"
)

// Command runs a local program as the generation backend: prompt on
// stdin, generated text on stdout.
type Command struct {
	args GeneratorArgs

	Timeout dscope.Inject[GenerateTimeout]
	Logger  dscope.Inject[logs.Logger]
}

var _ Generator = new(Command)

func (c *Command) Args() GeneratorArgs {
	return c.args
}

func (c *Command) Generate(ctx context.Context, prompt string) (ret Result, err error) {
	if len(c.args.Command) == 0 {
		return ret, errors.Join(
			errors.New("no command configured"),
			ErrBackendUnavailable,
		)
	}

	ctx, cancel := context.WithTimeout(ctx, timeoutFor(c.args, c.Timeout()))
	defer cancel()

	c.Logger().InfoContext(ctx, "generating",
		"command", c.args.Command[0],
	)

	cmd := exec.CommandContext(ctx, c.args.Command[0], c.args.Command[1:]...)
	cmd.Stdin = strings.NewReader(prompt)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	t0 := time.Now()
	err = cmd.Run()
	ret.Elapsed = time.Since(t0)
	if err != nil {
		if ctx.Err() != nil {
			return ret, errors.Join(err, ErrBackendTimeout)
		}
		return ret, errors.Join(
			fmt.Errorf("%w: %s", err, stderr.Bytes()),
			ErrBackendUnavailable,
		)
	}

	ret.Text = stdout.String()
	return ret, nil
}

type NewCommand func(args GeneratorArgs) *Command

func (Module) NewCommand(
	inject dscope.InjectStruct,
) NewCommand {
	return func(args GeneratorArgs) *Command {
		ret := &Command{
			args: args,
		}
		inject(&ret)
		return ret
	}
}
