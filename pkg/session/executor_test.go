package session

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// scriptChannel fakes an interactive shell. Each Send is answered from the
// response map; unscripted statements get a clean prompt. An empty string
// response means stay silent.
type scriptChannel struct {
	mu        sync.Mutex
	sent      []string
	responses map[string]string
	out       chan string
	closed    bool
	onClose   func()
}

func newScriptChannel(responses map[string]string) *scriptChannel {
	c := &scriptChannel{responses: responses, out: make(chan string, 64)}
	c.out <- "Welcome to VyOS\nvyos@edge1:~$ "
	return c
}

func (c *scriptChannel) Send(line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.New("send on closed channel")
	}
	c.sent = append(c.sent, line)
	resp, ok := c.responses[line]
	if !ok {
		resp = "[edit]\nvyos@edge1# "
	}
	if resp != "" {
		c.out <- resp
	}
	return nil
}

func (c *scriptChannel) Recv() <-chan string {
	return c.out
}

func (c *scriptChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.out)
		if c.onClose != nil {
			c.onClose()
		}
	}
	return nil
}

func (c *scriptChannel) sentStatements() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.sent...)
}

// dialQueue hands out pre-built channels in order, counting dials.
type dialQueue struct {
	mu       sync.Mutex
	channels []Channel
	errs     []error
	dials    int
}

func (q *dialQueue) dial(_ context.Context) (Channel, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	i := q.dials
	q.dials++
	if i < len(q.errs) && q.errs[i] != nil {
		return nil, q.errs[i]
	}
	if i >= len(q.channels) {
		return nil, fmt.Errorf("unexpected dial %d", i)
	}
	return q.channels[i], nil
}

func TestExecute_Success(t *testing.T) {
	ch := newScriptChannel(nil)
	q := &dialQueue{channels: []Channel{ch}}
	e := New()

	batch := &Batch{
		Statements: []string{"set system host-name edge1"},
		Commit:     true,
		Save:       true,
	}
	res, err := e.Execute(context.Background(), "edge1", q.dial, batch)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !res.Success {
		t.Error("Success = false")
	}
	if res.RollbackTranscript != "" {
		t.Errorf("RollbackTranscript = %q, want empty", res.RollbackTranscript)
	}

	want := []string{"configure", "set system host-name edge1", "commit", "save", "exit"}
	if got := ch.sentStatements(); !reflect.DeepEqual(got, want) {
		t.Errorf("sent = %q, want %q", got, want)
	}
	if q.dials != 1 {
		t.Errorf("dials = %d, want 1", q.dials)
	}
}

func TestExecute_NoCommitNoSave(t *testing.T) {
	ch := newScriptChannel(nil)
	q := &dialQueue{channels: []Channel{ch}}
	e := New()

	_, err := e.Execute(context.Background(), "edge1", q.dial, &Batch{
		Statements: []string{"set system time-zone UTC"},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := []string{"configure", "set system time-zone UTC", "exit"}
	if got := ch.sentStatements(); !reflect.DeepEqual(got, want) {
		t.Errorf("sent = %q, want %q", got, want)
	}
}

func TestExecute_CommandFaultRollsBack(t *testing.T) {
	bad := "set interfaces ethernet eth9 mtu banana"
	ch := newScriptChannel(map[string]string{
		bad: "Invalid command\nvyos@edge1# ",
	})
	rb := newScriptChannel(nil)
	q := &dialQueue{channels: []Channel{ch, rb}}
	e := New()

	res, err := e.Execute(context.Background(), "edge1", q.dial, &Batch{
		Statements: []string{bad},
		Commit:     true,
	})
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("err = %v, want CommandError", err)
	}
	if cmdErr.Statement != bad {
		t.Errorf("Statement = %q, want %q", cmdErr.Statement, bad)
	}
	if cmdErr.Marker != "Invalid command" {
		t.Errorf("Marker = %q", cmdErr.Marker)
	}
	if cmdErr.Transcript == "" {
		t.Error("Transcript empty")
	}

	if got := rb.sentStatements(); !reflect.DeepEqual(got, RollbackStatements) {
		t.Errorf("rollback sent = %q, want %q", got, RollbackStatements)
	}
	if res.Success {
		t.Error("Success = true after fault")
	}
	if res.RollbackTranscript == "" {
		t.Error("RollbackTranscript empty after rollback")
	}
}

func TestExecute_CommitFault(t *testing.T) {
	ch := newScriptChannel(map[string]string{
		"commit": "Commit failed\n[edit]\nvyos@edge1# ",
	})
	rb := newScriptChannel(nil)
	q := &dialQueue{channels: []Channel{ch, rb}}
	e := New()

	_, err := e.Execute(context.Background(), "edge1", q.dial, &Batch{
		Statements: []string{"set system host-name edge1"},
		Commit:     true,
	})
	var commitErr *CommitError
	if !errors.As(err, &commitErr) {
		t.Fatalf("err = %v, want CommitError", err)
	}
	if commitErr.Marker != "Commit failed" {
		t.Errorf("Marker = %q", commitErr.Marker)
	}
	if got := rb.sentStatements(); !reflect.DeepEqual(got, RollbackStatements) {
		t.Errorf("rollback sent = %q, want %q", got, RollbackStatements)
	}
}

func TestExecute_Timeout(t *testing.T) {
	// The device goes quiet after configure; the session deadline fires
	// and the rollback still runs over a fresh channel.
	ch := newScriptChannel(map[string]string{
		"set system host-name edge1": "",
	})
	rb := newScriptChannel(nil)
	q := &dialQueue{channels: []Channel{ch, rb}}
	e := New()

	_, err := e.Execute(context.Background(), "edge1", q.dial, &Batch{
		Statements: []string{"set system host-name edge1"},
		Commit:     true,
		Timeout:    100 * time.Millisecond,
	})
	if !IsTimeout(err) {
		t.Fatalf("err = %v, want timeout transport error", err)
	}
	if got := rb.sentStatements(); !reflect.DeepEqual(got, RollbackStatements) {
		t.Errorf("rollback sent = %q, want %q", got, RollbackStatements)
	}
}

func TestExecute_ChannelClosedMidSession(t *testing.T) {
	ch := newScriptChannel(nil)
	rb := newScriptChannel(nil)
	q := &dialQueue{channels: []Channel{ch, rb}}
	e := New()

	// Close the transport before the batch runs; the first collect after
	// the banner drains will see the closed channel.
	ch.Close()

	_, err := e.Execute(context.Background(), "edge1", q.dial, &Batch{
		Statements: []string{"set system host-name edge1"},
	})
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v, want TransportError", err)
	}
}

func TestExecute_RollbackFailureIsFatal(t *testing.T) {
	bad := "set bogus"
	ch := newScriptChannel(map[string]string{
		bad: "Set failed\nvyos@edge1# ",
	})
	q := &dialQueue{
		channels: []Channel{ch, nil},
		errs:     []error{nil, errors.New("connection refused")},
	}
	e := New()

	_, err := e.Execute(context.Background(), "edge1", q.dial, &Batch{
		Statements: []string{bad},
		Commit:     true,
	})
	var rbErr *RollbackError
	if !errors.As(err, &rbErr) {
		t.Fatalf("err = %v, want RollbackError", err)
	}
	// The original cause stays reachable through the chain.
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Errorf("RollbackError does not unwrap to the original CommandError: %v", err)
	}
}

func TestExecute_DialFailure(t *testing.T) {
	q := &dialQueue{errs: []error{errors.New("no route to host")}}
	e := New()

	res, err := e.Execute(context.Background(), "edge1", q.dial, &Batch{
		Statements: []string{"set system host-name edge1"},
	})
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v, want TransportError", err)
	}
	if res.Success {
		t.Error("Success = true after dial failure")
	}
	if res.Transcript != "" {
		t.Errorf("Transcript = %q, want empty", res.Transcript)
	}
}

func TestExecute_SerializesPerDevice(t *testing.T) {
	var active, overlaps int32
	dial := func(_ context.Context) (Channel, error) {
		if atomic.AddInt32(&active, 1) > 1 {
			atomic.AddInt32(&overlaps, 1)
		}
		ch := newScriptChannel(nil)
		ch.onClose = func() { atomic.AddInt32(&active, -1) }
		return ch, nil
	}

	e := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := e.Execute(context.Background(), "edge1", dial, &Batch{
				Statements: []string{fmt.Sprintf("set system name-server 10.0.0.%d", n)},
				Commit:     true,
			})
			if err != nil {
				t.Errorf("Execute %d: %v", n, err)
			}
		}(i)
	}
	wg.Wait()

	if n := atomic.LoadInt32(&overlaps); n != 0 {
		t.Errorf("%d overlapping sessions on the same device", n)
	}
}

func TestExecute_LockAcquireHonorsContext(t *testing.T) {
	e := New()
	if err := e.locks.acquire(context.Background(), "edge1"); err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer e.locks.release("edge1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Execute(ctx, "edge1", nil, &Batch{Statements: []string{"set x"}})
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v, want TransportError", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled in chain", err)
	}
}

func TestBatchQueue(t *testing.T) {
	b := &Batch{Statements: []string{"a", "b"}, Commit: true, Save: true}
	q, commitIdx := b.queue()
	want := []string{"configure", "a", "b", "commit", "save", "exit"}
	if !reflect.DeepEqual(q, want) {
		t.Errorf("queue = %q, want %q", q, want)
	}
	if commitIdx != 3 {
		t.Errorf("commitIdx = %d, want 3", commitIdx)
	}

	b = &Batch{Statements: []string{"a"}}
	q, commitIdx = b.queue()
	want = []string{"configure", "a", "exit"}
	if !reflect.DeepEqual(q, want) {
		t.Errorf("queue = %q, want %q", q, want)
	}
	if commitIdx != -1 {
		t.Errorf("commitIdx = %d, want -1", commitIdx)
	}
}
