package procs

type ProcFunc[C any] func(ctx C) (Proc[C], error)

var _ Proc[any] = ProcFunc[any](nil)

func (f ProcFunc[C]) Run(ctx C) (Proc[C], error) {
	return f(ctx)
}

// RunAll drives a proc to completion.
func RunAll[C any](ctx C, proc Proc[C]) error {
	for proc != nil {
		next, err := proc.Run(ctx)
		if err != nil {
			return err
		}
		proc = next
	}
	return nil
}
