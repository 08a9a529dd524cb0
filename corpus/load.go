package corpus

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/guiguan/caster"
	"github.com/npillmayer/trienet"
	"golang.org/x/sync/errgroup"
)

// DefaultReportInterval is the number of lines between two progress messages.
const DefaultReportInterval = 1000

// MaxLineLength is the maximum length of a line of a word list, in bytes.
// Longer lines stop loading with bufio.ErrTooLong.
const MaxLineLength = 1 << 20

// Progress is broadcast to the subscribers of a Loader.
type Progress struct {
	Lines int   // number of lines read so far
	Keys  int   // number of keys added so far
	Done  bool  // loading has finished, successfully or not
	Err   error // error which stopped loading, if any
}

// Loader feeds word lists into indices. Progress is broadcast to subscribers,
// see Subscribe. Loaders are safe to use from multiple goroutines, but
// progress messages of concurrent loads will interleave.
type Loader struct {
	cast     *caster.Caster // broadcaster for progress messages
	interval int
}

// NewLoader creates a loader which publishes a progress message every interval
// lines. An interval <= 0 selects DefaultReportInterval. When ctx is done, the
// broadcaster is shut down and all subscriptions end. ctx may be nil.
func NewLoader(ctx context.Context, interval int) *Loader {
	if interval <= 0 {
		interval = DefaultReportInterval
	}
	return &Loader{
		cast:     caster.New(ctx),
		interval: interval,
	}
}

// Subscribe returns a channel of progress messages. The channel is closed when
// ctx is done or the loader is closed. Subscribing to a closed loader fails
// with ErrInvalidState. ctx must not be nil.
func (l *Loader) Subscribe(ctx context.Context) (<-chan Progress, error) {
	select {
	case <-l.cast.Done():
		return nil, fmt.Errorf("%w: loader is closed", trienet.ErrInvalidState)
	default:
	}
	sub, _ := l.cast.Sub(ctx, 64)
	ch := make(chan Progress, 64)
	go func() {
		defer close(ch)
		for m := range sub {
			p, ok := m.(Progress)
			if !ok {
				continue
			}
			select {
			case ch <- p:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

// Close shuts down the broadcaster of l and waits until all subscriptions have
// ended. Further loads will not publish progress.
func (l *Loader) Close() {
	l.cast.Close()
	<-l.cast.Done()
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	return scanner
}

func (l *Loader) publish(p Progress) {
	if !l.cast.Pub(p) {
		T().Debugf("corpus: progress %v not published, broadcaster closed", p)
	}
}

// Load reads lines from r and adds every non-empty line (with surrounding
// white space removed) to idx, using the zero-based line number as value.
// It returns the keys indexed by line number, with empty strings for
// skipped lines. Loading stops at the first error.
func (l *Loader) Load(r io.Reader, idx trienet.Index[int]) ([]string, error) {
	lines := []string{}
	keys := 0
	scanner := newScanner(r)
	for scanner.Scan() {
		n := len(lines)
		key := strings.TrimSpace(scanner.Text())
		lines = append(lines, key)
		if key != "" {
			if err := idx.Add(key, n); err != nil {
				err = fmt.Errorf("line %d: %w", n, err)
				l.publish(Progress{Lines: len(lines), Keys: keys, Done: true, Err: err})
				return lines, err
			}
			keys++
		}
		if len(lines)%l.interval == 0 {
			l.publish(Progress{Lines: len(lines), Keys: keys})
		}
	}
	err := scanner.Err()
	l.publish(Progress{Lines: len(lines), Keys: keys, Done: true, Err: err})
	T().Infof("corpus: loaded %d keys from %d lines", keys, len(lines))
	return lines, err
}

// LoadParallel works like Load, but adds keys to idx from up to workers
// goroutines. idx has to be safe for concurrent writers, e.g. trie.Concurrent.
// Loading stops at the first error or when ctx is done.
func (l *Loader) LoadParallel(ctx context.Context, r io.Reader, idx trienet.Index[int], workers int) ([]string, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: number of workers must be positive, is %d",
			trienet.ErrIllegalArguments, workers)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	var added atomic.Int64
	lines := []string{}
	scanner := newScanner(r)
	for scanner.Scan() {
		if gctx.Err() != nil {
			break
		}
		n := len(lines)
		key := strings.TrimSpace(scanner.Text())
		lines = append(lines, key)
		if key != "" {
			g.Go(func() error {
				if err := idx.Add(key, n); err != nil {
					return fmt.Errorf("line %d: %w", n, err)
				}
				added.Add(1)
				return nil
			})
		}
		// workers may lag behind the reader: Keys counts the keys added so far
		if len(lines)%l.interval == 0 {
			l.publish(Progress{Lines: len(lines), Keys: int(added.Load())})
		}
	}
	err := g.Wait()
	if err == nil {
		err = scanner.Err()
	}
	if err == nil {
		err = ctx.Err()
	}
	keys := int(added.Load())
	l.publish(Progress{Lines: len(lines), Keys: keys, Done: true, Err: err})
	T().Infof("corpus: loaded %d keys from %d lines with %d workers", keys, len(lines), workers)
	return lines, err
}
