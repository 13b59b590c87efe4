package fsops

import (
	"context"
	"errors"
	"io/fs"

	"golang.org/x/sync/errgroup"
)

// precheck runs independent existence checks concurrently and returns
// the first failure once all of them have finished.
func (l *Local) precheck(ctx context.Context, checks ...func() error) error {
	g, _ := errgroup.WithContext(ctx)
	for _, check := range checks {
		g.Go(check)
	}
	return g.Wait()
}

// precheckTransfer verifies the preconditions shared by copy, move,
// compress and decompress.
func (l *Local) precheckTransfer(ctx context.Context, op, src, destDir, target string) error {
	return l.precheck(ctx,
		func() error { return l.requireFile(op, src) },
		func() error { return l.requireDir(op, destDir) },
		func() error { return l.requireAbsent(op, target) },
	)
}

func (l *Local) requireFile(op, p string) error {
	info, err := l.fs.Stat(p)
	if err != nil {
		return newError(op, p, classify(err), err)
	}
	if info.IsDir() {
		return newError(op, p, KindIsDir, nil)
	}
	return nil
}

func (l *Local) requireDir(op, p string) error {
	info, err := l.fs.Stat(p)
	if err != nil {
		return newError(op, p, classify(err), err)
	}
	if !info.IsDir() {
		return newError(op, p, KindNotDir, nil)
	}
	return nil
}

func (l *Local) requireAbsent(op, p string) error {
	_, err := l.fs.Stat(p)
	switch {
	case err == nil:
		return newError(op, p, KindExists, nil)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return newError(op, p, classify(err), err)
	}
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrExist):
		return KindExists
	default:
		return KindUnknown
	}
}
