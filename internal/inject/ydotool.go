package inject

import (
	"os/exec"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Ydotool injects key sequences by spawning the ydotool binary. Each
// injection is a detached, best-effort subprocess: the child's stdio goes
// to the null device, spawn errors are swallowed, and the exit status is
// never surfaced. A gesture action either lands or it doesn't.
type Ydotool struct {
	path string
	log  *zap.Logger
}

var _ Injector = (*Ydotool)(nil)

// Option configures a Ydotool injector.
type Option func(*Ydotool)

// WithLogger attaches a logger. Spawns and exits are logged at debug
// level only.
func WithLogger(log *zap.Logger) Option {
	return func(y *Ydotool) {
		if log != nil {
			y.log = log
		}
	}
}

// NewYdotool creates an injector that spawns the binary at path.
func NewYdotool(path string, opts ...Option) *Ydotool {
	y := &Ydotool{
		path: path,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(y)
	}
	return y
}

// Inject spawns `<path> key <tokens...>` and returns without waiting.
// A goroutine reaps the child so it never lingers as a zombie.
func (y *Ydotool) Inject(seq Sequence) {
	args := append([]string{"key"}, seq.tokens...)
	cmd := exec.Command(y.path, args...)

	if err := cmd.Start(); err != nil {
		y.log.Debug("injector spawn failed",
			zap.String("binary", y.path),
			zap.String("sequence", seq.Name()),
			zap.Error(err))
		return
	}

	id := uuid.NewString()
	y.log.Debug("injector spawned",
		zap.String("spawn_id", id),
		zap.Int("pid", cmd.Process.Pid),
		zap.String("sequence", seq.Name()))

	go func() {
		err := cmd.Wait()
		y.log.Debug("injector exited",
			zap.String("spawn_id", id),
			zap.Error(err))
	}()
}
