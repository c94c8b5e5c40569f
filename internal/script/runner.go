package script

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Runner applies scripts to a Directory. Output from show and find-phone
// steps goes to Out; step progress is logged at debug level.
type Runner struct {
	Out    io.Writer
	Logger *slog.Logger
}

// Run applies every step of sc to dir in order and stops at the first
// error, which is returned wrapped with the step number. Steps before the
// failing one stay applied.
func (rn *Runner) Run(ctx context.Context, dir *types.Directory, sc *Script) error {
	logger := rn.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	out := rn.Out
	if out == nil {
		out = io.Discard
	}

	for i, s := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		logger.Debug("apply step", "step", i+1, "op", s.Op, "name", s.Name)
		if err := apply(out, dir, s); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, s.Op, err)
		}
	}
	return nil
}

func apply(out io.Writer, dir *types.Directory, s Step) error {
	if s.Op == OpAddRecord {
		r, err := types.NewRecord(s.Name)
		if err != nil {
			return err
		}
		for _, p := range s.Phones {
			if err := r.AddPhone(p); err != nil {
				return err
			}
		}
		dir.AddRecord(r)
		return nil
	}

	if s.Op == OpShow && s.Name == "" {
		for _, r := range dir.All() {
			if _, err := fmt.Fprintln(out, r); err != nil {
				return err
			}
		}
		return nil
	}

	if s.Op == OpDelete {
		return dir.Delete(s.Name)
	}

	r, ok := dir.Find(s.Name)
	if !ok {
		return fmt.Errorf("record %q: %w", s.Name, types.ErrNotFound)
	}

	switch s.Op {
	case OpAddPhone:
		return r.AddPhone(s.Phone)
	case OpRemovePhone:
		return r.RemovePhone(s.Phone)
	case OpEditPhone:
		return r.EditPhone(s.Phone, s.New)
	case OpFindPhone:
		p, ok := r.FindPhone(s.Phone)
		if !ok {
			_, err := fmt.Fprintf(out, "%s: %s not found\n", r.Name(), s.Phone)
			return err
		}
		_, err := fmt.Fprintf(out, "%s: %s\n", r.Name(), p)
		return err
	case OpShow:
		_, err := fmt.Fprintln(out, r)
		return err
	}
	return fmt.Errorf("%w %q", ErrUnknownOp, s.Op)
}
