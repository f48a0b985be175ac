package runs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/reusee/dscope"

	"probelab/configs"
	"probelab/generators"
	"probelab/modes"
	"probelab/reports"
	"probelab/results"
	"probelab/tasks"
)

type stubGenerator struct {
	text string
	err  error
}

var _ generators.Generator = stubGenerator{}

func (s stubGenerator) Args() generators.GeneratorArgs {
	return generators.GeneratorArgs{
		Model: "stub",
	}
}

func (s stubGenerator) Generate(ctx context.Context, prompt string) (generators.Result, error) {
	if s.err != nil {
		return generators.Result{
			Elapsed: time.Millisecond,
		}, s.err
	}
	return generators.Result{
		Text:    s.text,
		Elapsed: time.Millisecond,
		Usage: generators.Usage{
			InputTokens:  10,
			OutputTokens: 20,
		},
	}, nil
}

type testOutput struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func testScope(
	t *testing.T,
	loader configs.Loader,
	generate func(name string) (generators.Generator, error),
	output *testOutput,
) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		&loader,
		new(Module),
	).Fork(
		func() generators.GetGenerator {
			return generate
		},
		func() reports.Stdout {
			return &output.stdout
		},
		func() reports.Stderr {
			return &output.stderr
		},
	)
}

func scenarioLoader(t *testing.T) (configs.Loader, string) {
	dir := t.TempDir()
	outputRoot := filepath.Join(dir, "output")
	path := filepath.Join(dir, "probe.cue")
	if err := os.WriteFile(path, []byte(fmt.Sprintf(`
output_root: %q
tasks: [
	{
		id:     "task_H"
		prompt: "Analyze this contract."
	},
]
`, outputRoot)), 0644); err != nil {
		t.Fatal(err)
	}
	return configs.NewLoader([]string{path}, ""), outputRoot
}

func TestRunOne(t *testing.T) {
	t.Setenv("PROBE_ROUND", "25")
	loader, outputRoot := scenarioLoader(t)

	var output testOutput
	scope := testScope(t, loader,
		func(name string) (generators.Generator, error) {
			return stubGenerator{text: "abc\ndef\n"}, nil
		},
		&output,
	)

	scope.Call(func(
		runOne RunOne,
	) {

		run := NewExperimentRun("sonnet", "task_H", "L8_generative_v2")
		if err := runOne(t.Context(), run); err != nil {
			t.Fatal(err)
		}

		if run.Status != StatusDone {
			t.Fatalf("got %v", run.Status)
		}
		if run.LineCount != 2 {
			t.Fatalf("got %v", run.LineCount)
		}
		if run.Usage.OutputTokens != 20 {
			t.Fatalf("got %+v", run.Usage)
		}

		expectedPath := filepath.Join(outputRoot, "round25", "sonnet_L8_generative_v2_task_H.md")
		if run.OutputPath != expectedPath {
			t.Fatalf("got %q", run.OutputPath)
		}
		content, err := os.ReadFile(expectedPath)
		if err != nil {
			t.Fatal(err)
		}
		if string(content) != "abc\ndef\n" {
			t.Fatalf("got %q", content)
		}

		if !strings.Contains(output.stdout.String(), "-> Done (") {
			t.Fatalf("got %q", output.stdout.String())
		}
		if !strings.Contains(output.stdout.String(), "2 lines -> "+expectedPath) {
			t.Fatalf("got %q", output.stdout.String())
		}
		if output.stderr.Len() != 0 {
			t.Fatalf("got %q", output.stderr.String())
		}

	})
}

func TestRunOneUnknownTask(t *testing.T) {
	loader := configs.NewLoader(nil, "")

	var output testOutput
	scope := testScope(t, loader,
		func(name string) (generators.Generator, error) {
			return stubGenerator{text: "x\n"}, nil
		},
		&output,
	)

	scope.Call(func(
		runOne RunOne,
	) {

		run := NewExperimentRun("sonnet", "task_Z", "L7_diagnostic")
		err := runOne(t.Context(), run)
		if !errors.Is(err, tasks.ErrUnknownTask) {
			t.Fatalf("got %v", err)
		}
		if run.Status != StatusFailed {
			t.Fatalf("got %v", run.Status)
		}
		if run.Stage != "resolve" {
			t.Fatalf("got %q", run.Stage)
		}
		if !strings.Contains(output.stderr.String(), "-> FAILED (") {
			t.Fatalf("got %q", output.stderr.String())
		}
		if !strings.Contains(output.stderr.String(), "resolve: ") {
			t.Fatalf("got %q", output.stderr.String())
		}

	})
}

func TestRunOneGenerateFailure(t *testing.T) {
	t.Setenv("PROBE_ROUND", "1")
	loader, _ := scenarioLoader(t)

	var output testOutput
	scope := testScope(t, loader,
		func(name string) (generators.Generator, error) {
			return stubGenerator{err: generators.ErrBackendUnavailable}, nil
		},
		&output,
	)

	scope.Call(func(
		runOne RunOne,
		pathFor results.PathFor,
	) {

		run := NewExperimentRun("opus", "task_A", "L10_double_recursion")
		err := runOne(t.Context(), run)
		if !errors.Is(err, generators.ErrBackendUnavailable) {
			t.Fatalf("got %v", err)
		}
		if run.Stage != "generate" {
			t.Fatalf("got %q", run.Stage)
		}

		// nothing written for a failed run
		path := pathFor("opus", "L10_double_recursion", "task_A")
		if _, err := os.Stat(path); err == nil {
			t.Fatal("no file must exist")
		}

	})
}

func TestRunBatch(t *testing.T) {
	t.Setenv("PROBE_ROUND", "2")
	loader, outputRoot := scenarioLoader(t)

	var output testOutput
	scope := testScope(t, loader,
		func(name string) (generators.Generator, error) {
			return stubGenerator{text: "line\n"}, nil
		},
		&output,
	)

	scope.Call(func(
		runBatch RunBatch,
	) {

		batch := &Batch{
			Models:  []string{"sonnet"},
			TaskIDs: []string{"task_A", "task_F", "task_H", "task_Z"},
			Methods: []string{"L7_diagnostic"},
		}
		for _, taskID := range batch.TaskIDs {
			batch.Runs = append(batch.Runs,
				NewExperimentRun("sonnet", taskID, "L7_diagnostic"),
			)
		}

		// task_Z is unknown, the other three succeed
		summary, err := runBatch(t.Context(), batch)
		if err == nil {
			t.Fatal("should error")
		}
		if !errors.Is(err, tasks.ErrUnknownTask) {
			t.Fatalf("got %v", err)
		}
		if summary.Completed() != 3 {
			t.Fatalf("got %v", summary.Completed())
		}

		// siblings of the failed run still wrote their artifacts
		for _, taskID := range []string{"task_A", "task_F", "task_H"} {
			path := filepath.Join(outputRoot, "round2",
				"sonnet_L7_diagnostic_"+taskID+".md")
			if _, err := os.Stat(path); err != nil {
				t.Fatal(err)
			}
		}

		if !strings.Contains(output.stdout.String(), "PHASE: SONNET: 4 experiments") {
			t.Fatalf("got %q", output.stdout.String())
		}

	})
}

func TestExpandBatch(t *testing.T) {
	loader := configs.NewLoader(nil, "")

	var output testOutput
	scope := testScope(t, loader,
		func(name string) (generators.Generator, error) {
			return stubGenerator{text: "x\n"}, nil
		},
		&output,
	)

	scope.Call(func(
		expandBatch ExpandBatch,
	) {

		batch, err := expandBatch()
		if err != nil {
			t.Fatal(err)
		}
		// defaults: haiku crossed with the built-in tasks and methods
		if len(batch.Models) != 1 || batch.Models[0] != "haiku" {
			t.Fatalf("got %v", batch.Models)
		}
		if len(batch.Runs) != len(batch.TaskIDs)*len(batch.Methods) {
			t.Fatalf("got %v runs", len(batch.Runs))
		}
		if len(batch.Runs) == 0 {
			t.Fatal("should expand built-ins")
		}
		for _, run := range batch.Runs {
			if run.Status != StatusPending {
				t.Fatalf("got %v", run.Status)
			}
		}

	})
}
