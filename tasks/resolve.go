package tasks

import (
	"errors"
	"fmt"
	"maps"
	"sync"

	"probelab/configs"
)

var ErrUnknownTask = errors.New("unknown task")

// ResolvedTask is one (task, method) pair ready for generation.
type ResolvedTask struct {
	Task   Task
	Method Method
}

// Prompt assembles the text submitted to the backend: method
// instructions first, then the task artifact.
func (r ResolvedTask) Prompt() string {
	return r.Method.Prompt + "\n\n" + r.Task.Prompt
}

type Resolve func(taskID string, method string) (ResolvedTask, error)

func (Module) Resolve(
	loader configs.Loader,
) Resolve {

	// built-ins shadowed by config entries
	getTasks := sync.OnceValues(func() (map[string]Task, error) {
		ret := maps.Clone(builtinTasks)
		for value, err := range loader.IterCueValues("tasks") {
			if err != nil {
				return nil, err
			}
			var tasks []Task
			if err := value.Decode(&tasks); err != nil {
				return nil, err
			}
			for _, task := range tasks {
				ret[task.ID] = task
			}
		}
		return ret, nil
	})

	getMethods := sync.OnceValues(func() (map[string]Method, error) {
		ret := maps.Clone(builtinMethods)
		for value, err := range loader.IterCueValues("methods") {
			if err != nil {
				return nil, err
			}
			var methods []Method
			if err := value.Decode(&methods); err != nil {
				return nil, err
			}
			for _, method := range methods {
				ret[method.Name] = method
			}
		}
		return ret, nil
	})

	return func(taskID string, method string) (ResolvedTask, error) {
		tasks, err := getTasks()
		if err != nil {
			return ResolvedTask{}, err
		}
		task, ok := tasks[taskID]
		if !ok {
			return ResolvedTask{}, errors.Join(
				fmt.Errorf("no task %q", taskID),
				ErrUnknownTask,
			)
		}

		methods, err := getMethods()
		if err != nil {
			return ResolvedTask{}, err
		}
		m, ok := methods[method]
		if !ok {
			return ResolvedTask{}, errors.Join(
				fmt.Errorf("no method %q for task %q", method, taskID),
				ErrUnknownTask,
			)
		}

		return ResolvedTask{
			Task:   task,
			Method: m,
		}, nil
	}
}

// TaskIDs and MethodNames list the resolvable identifiers, config
// entries included, for usage messages and batch expansion.
type (
	TaskIDs     func() ([]string, error)
	MethodNames func() ([]string, error)
)

func (Module) TaskIDs(
	loader configs.Loader,
) TaskIDs {
	return sync.OnceValues(func() ([]string, error) {
		ids := make(map[string]bool)
		for id := range builtinTasks {
			ids[id] = true
		}
		for value, err := range loader.IterCueValues("tasks") {
			if err != nil {
				return nil, err
			}
			var tasks []Task
			if err := value.Decode(&tasks); err != nil {
				return nil, err
			}
			for _, task := range tasks {
				ids[task.ID] = true
			}
		}
		return sortedKeys(ids), nil
	})
}

func (Module) MethodNames(
	loader configs.Loader,
) MethodNames {
	return sync.OnceValues(func() ([]string, error) {
		names := make(map[string]bool)
		for name := range builtinMethods {
			names[name] = true
		}
		for value, err := range loader.IterCueValues("methods") {
			if err != nil {
				return nil, err
			}
			var methods []Method
			if err := value.Decode(&methods); err != nil {
				return nil, err
			}
			for _, method := range methods {
				names[method.Name] = true
			}
		}
		return sortedKeys(names), nil
	})
}
