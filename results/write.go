package results

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"probelab/logs"
)

var ErrWrite = errors.New("write failed")

type WriteResult struct {
	Path      string
	LineCount int
}

// Write persists generated text at path. The text lands in a temp file
// in the destination directory first and is renamed into place, so a
// crash mid-write never leaves a truncated artifact at the final path.
type Write func(path string, text string) (WriteResult, error)

func (Module) Write(
	logger logs.Logger,
) Write {
	return func(path string, text string) (ret WriteResult, err error) {
		defer func() {
			if err != nil {
				err = errors.Join(err, ErrWrite)
			}
		}()

		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return ret, err
		}

		tmp, err := os.CreateTemp(dir, ".probe-*")
		if err != nil {
			return ret, err
		}
		defer os.Remove(tmp.Name())

		if _, err := tmp.WriteString(text); err != nil {
			tmp.Close()
			return ret, err
		}
		if err := tmp.Close(); err != nil {
			return ret, err
		}
		if err := os.Chmod(tmp.Name(), 0644); err != nil {
			return ret, err
		}
		if err := os.Rename(tmp.Name(), path); err != nil {
			return ret, err
		}

		ret.Path = path
		ret.LineCount = LineCount(text)
		logger.Debug("wrote result",
			"path", path,
			"lines", ret.LineCount,
		)
		return ret, nil
	}
}

// LineCount counts newline-delimited lines. A trailing newline closes
// the last line rather than opening an empty one, so "abc\ndef\n" is
// two lines.
func LineCount(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
