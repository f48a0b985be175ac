package cmds

import (
	"strings"
	"testing"
	"time"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
		"baz", "42",
	}); err != nil {
		t.Fatal(err)
	}

	if bar != 1 {
		t.Fatal()
	}
	if baz != 42 {
		t.Fatal()
	}
}

func TestDurationArg(t *testing.T) {
	executor := NewExecutor()
	var d time.Duration
	executor.Define("-timeout", Func(func(v time.Duration) {
		d = v
	}))
	if err := executor.Execute([]string{
		"-timeout", "90s",
	}); err != nil {
		t.Fatal(err)
	}
	if d != 90*time.Second {
		t.Fatalf("got %v", d)
	}
}

func TestOptionalPointerArg(t *testing.T) {
	executor := NewExecutor()
	var got *int
	executor.Define("n", Func(func(v *int) {
		got = v
	}))
	if err := executor.Execute([]string{
		"n",
	}); err != nil {
		t.Fatal(err)
	}
	if got == nil || *got != 0 {
		t.Fatalf("got %v", got)
	}
}
