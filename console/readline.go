package console

import (
	"github.com/chzyer/readline"
)

// LineReader reads one line of player input after showing prompt.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

type ReadlineReader struct {
	rl *readline.Instance
}

var _ LineReader = (*ReadlineReader)(nil)

func NewReadlineReader() (*ReadlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "> ",

		// coordinates typed by one player must not be recalled by the other
		DisableAutoSaveHistory: true,
		HistoryLimit:           -1,
	})
	if err != nil {
		return nil, err
	}
	return &ReadlineReader{rl: rl}, nil
}

func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	return r.rl.Readline()
}

func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}
