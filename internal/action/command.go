package action

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"
)

// CommandSleeper runs an external command such as pmset.
type CommandSleeper struct {
	name string
	args []string
}

// NewCommandSleeper splits command using shell word rules.
// Quotes and escapes are honoured; variables and globs are not expanded.
func NewCommandSleeper(command string) (*CommandSleeper, error) {
	words, err := shellwords.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("parse sleep command %q: %w", command, err)
	}
	if len(words) == 0 {
		return nil, errors.New("sleep command is empty")
	}

	return &CommandSleeper{
		name: words[0],
		args: words[1:],
	}, nil
}

// Sleep runs the command and waits for it to exit.
// Spawn failures and non-zero exits are both returned as errors.
func (s *CommandSleeper) Sleep() error {
	out, err := exec.Command(s.name, s.args...).CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("run %s: %w: %s", s, err, msg)
		}
		return fmt.Errorf("run %s: %w", s, err)
	}
	return nil
}

// String returns the command line as it will be executed.
func (s *CommandSleeper) String() string {
	return strings.Join(append([]string{s.name}, s.args...), " ")
}
