// Package session applies statement batches to a device over a single
// interactive channel, with configure/commit/save lifecycle statements
// injected around the caller's statements and a compensating rollback on
// any detected failure.
//
// The remote protocol offers no per-statement acknowledgment: progress is
// driven by watching for the CLI prompt to reappear in the output stream.
package session

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vyops/vyops/pkg/util"
)

// DefaultTimeout bounds a whole session when the batch does not set one.
const DefaultTimeout = 60 * time.Second

// RollbackStatements is the fixed compensating sequence issued after any
// detected failure. rollback 0 discards the candidate configuration.
var RollbackStatements = []string{"configure", "rollback 0", "commit", "save", "exit"}

// DefaultPrompts are the prompt tails that mark the CLI as ready for the
// next statement. Matched against the trimmed last line of output.
var DefaultPrompts = []string{"$", "#"}

// Channel is the minimal interface the executor needs from an interactive
// remote shell. Recv's channel is closed when the transport closes.
type Channel interface {
	Send(line string) error
	Recv() <-chan string
	Close() error
}

// DialFunc opens a fresh interactive channel to a device. The executor
// calls it once per session and once more if a rollback needs a new
// channel.
type DialFunc func(ctx context.Context) (Channel, error)

// Batch is one ordered statement sequence with execution options. Created
// per user action and consumed exactly once.
type Batch struct {
	Statements []string
	Commit     bool
	Save       bool
	Timeout    time.Duration
}

// queue returns the full statement sequence including lifecycle
// statements, and the index of the commit statement (-1 if absent).
func (b *Batch) queue() ([]string, int) {
	q := make([]string, 0, len(b.Statements)+4)
	q = append(q, "configure")
	q = append(q, b.Statements...)
	commitIdx := -1
	if b.Commit {
		commitIdx = len(q)
		q = append(q, "commit")
	}
	if b.Save {
		q = append(q, "save")
	}
	q = append(q, "exit")
	return q, commitIdx
}

// Result reports the outcome of one execution. Transcript is always
// populated with whatever was collected, for diagnosis.
type Result struct {
	Success            bool
	Transcript         string
	RollbackTranscript string
	Err                error
}

// state names the protocol states. The session advances strictly
// Idle → ShellStarting → AwaitingPrompt ⇄ (Sending → Collecting) → Closed,
// with Failed reachable from anywhere and
// Failed → RollingBack → (Closed | FailedFatal).
type state int

const (
	stateIdle state = iota
	stateShellStarting
	stateAwaitingPrompt
	stateSending
	stateCollecting
	stateRollingBack
	stateClosed
	stateFailed
	stateFailedFatal
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "Idle"
	case stateShellStarting:
		return "ShellStarting"
	case stateAwaitingPrompt:
		return "AwaitingPrompt"
	case stateSending:
		return "Sending"
	case stateCollecting:
		return "Collecting"
	case stateRollingBack:
		return "RollingBack"
	case stateClosed:
		return "Closed"
	case stateFailed:
		return "Failed"
	case stateFailedFatal:
		return "FailedFatal"
	default:
		return "Unknown"
	}
}

// Executor drives batches through interactive sessions. Safe for
// concurrent use; sessions for the same device are serialized on a keyed
// lock held from ShellStarting until the session is fully closed.
type Executor struct {
	// Detector overrides the default marker-based fault detector.
	Detector FaultDetector
	// Prompts overrides the default prompt markers.
	Prompts []string

	locks *lockTable
}

// New returns an Executor with default prompt markers and fault detector.
func New() *Executor {
	return &Executor{locks: newLockTable()}
}

func (e *Executor) detector() FaultDetector {
	if e.Detector != nil {
		return e.Detector
	}
	return DefaultDetector()
}

func (e *Executor) prompts() []string {
	if len(e.Prompts) > 0 {
		return e.Prompts
	}
	return DefaultPrompts
}

// sessionIDs tags each execution's log entries for correlation.
var sessionIDs atomic.Int64

// Execute applies one batch to the named device. It blocks until the
// session reaches Closed or FailedFatal. On any detected failure after the
// channel opened, the rollback sequence is issued before returning; the
// returned error then carries the original cause.
func (e *Executor) Execute(ctx context.Context, device string, dial DialFunc, batch *Batch) (*Result, error) {
	log := util.WithSession(device, sessionIDs.Add(1))
	res := &Result{}

	if err := e.locks.acquire(ctx, device); err != nil {
		terr := &TransportError{Op: "acquire device lock", Err: err}
		res.Err = terr
		return res, terr
	}
	defer e.locks.release(device)

	timeout := batch.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	start := time.Now()
	defer func() {
		sessionDuration.Observe(time.Since(start).Seconds())
	}()

	// One timer bounds the whole session, ShellStarting through Closed.
	sctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ch, err := dial(sctx)
	if err != nil {
		terr := &TransportError{Op: "dial", Err: err}
		res.Err = terr
		sessionsTotal.WithLabelValues("transport_error").Inc()
		return res, terr
	}

	q, commitIdx := batch.queue()
	s := newSession(ch, e.prompts(), e.detector(), log)
	runErr := s.run(sctx, q, commitIdx)
	res.Transcript = s.transcript.String()
	ch.Close()

	if runErr == nil {
		res.Success = true
		sessionsTotal.WithLabelValues("success").Inc()
		log.Debugf("session closed cleanly after %d statements", len(q))
		return res, nil
	}

	switch te := runErr.(type) {
	case *CommandError:
		te.Transcript = res.Transcript
	case *CommitError:
		te.Transcript = res.Transcript
	}

	log.WithFields(logrus.Fields{"state": stateFailed}).Warnf("session failed, rolling back: %v", runErr)
	rollbacksTotal.Inc()
	rbTranscript, rbErr := e.rollback(dial, timeout, log)
	res.RollbackTranscript = rbTranscript
	if rbErr != nil {
		fatal := &RollbackError{Cause: runErr, RollbackCause: rbErr, Transcript: rbTranscript}
		res.Err = fatal
		sessionsTotal.WithLabelValues("rollback_error").Inc()
		log.WithFields(logrus.Fields{"state": stateFailedFatal}).Errorf("%v", fatal)
		return res, fatal
	}

	res.Err = runErr
	sessionsTotal.WithLabelValues(resultLabel(runErr)).Inc()
	return res, runErr
}

// rollback issues the compensating sequence over a fresh channel. The
// caller's context may already be canceled or expired, and the candidate
// configuration must never be abandoned, so the rollback gets its own
// deadline.
func (e *Executor) rollback(dial DialFunc, timeout time.Duration, log *logrus.Entry) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ch, err := dial(ctx)
	if err != nil {
		return "", &TransportError{Op: "rollback dial", Err: err}
	}
	defer ch.Close()

	log.WithFields(logrus.Fields{"state": stateRollingBack}).Info("issuing rollback sequence")
	s := newSession(ch, e.prompts(), e.detector(), log)
	err = s.run(ctx, RollbackStatements, -1)
	return s.transcript.String(), err
}

func resultLabel(err error) string {
	switch err.(type) {
	case *CommandError:
		return "command_error"
	case *CommitError:
		return "commit_error"
	default:
		return "transport_error"
	}
}

// session is the runtime lifecycle of one batch over one channel. It owns
// the channel and the send/receive cursor and is discarded on completion.
type session struct {
	ch           Channel
	prompts      []string
	detector     FaultDetector
	transcript   strings.Builder
	commitSent   bool
	commitOffset int
	state        state
	log          *logrus.Entry
}

func newSession(ch Channel, prompts []string, detector FaultDetector, log *logrus.Entry) *session {
	return &session{ch: ch, prompts: prompts, detector: detector, state: stateIdle, log: log}
}

func (s *session) transition(next state) {
	s.log.Debugf("session state %s -> %s", s.state, next)
	s.state = next
}

// run drives the queue through the prompt-synchronized loop. commitIdx is
// the queue index of the commit statement, -1 if none. Statements execute
// strictly in order, one at a time; there is no per-statement retry.
func (s *session) run(ctx context.Context, queue []string, commitIdx int) error {
	s.transition(stateShellStarting)
	if err := s.collect(ctx); err != nil {
		s.transition(stateFailed)
		return err
	}
	s.transition(stateAwaitingPrompt)

	for i, stmt := range queue {
		s.transition(stateSending)
		if err := s.ch.Send(stmt); err != nil {
			s.transition(stateFailed)
			return &TransportError{Op: "send", Err: err}
		}
		if i == commitIdx {
			s.commitSent = true
			s.commitOffset = s.transcript.Len()
		}
		s.transition(stateCollecting)
		if err := s.collect(ctx); err != nil {
			if ce, ok := err.(*CommandError); ok {
				ce.Statement = stmt
			}
			s.transition(stateFailed)
			return err
		}
		s.transition(stateAwaitingPrompt)
	}

	s.transition(stateClosed)
	return nil
}

// collect appends channel output to the transcript until the prompt
// reappears, a fault marker is matched, the transport closes, or the
// session deadline fires.
func (s *session) collect(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return &TransportError{Op: "session", Timeout: true, Err: ctx.Err()}
			}
			return &TransportError{Op: "session", Err: ctx.Err()}
		case chunk, ok := <-s.ch.Recv():
			if !ok {
				return &TransportError{Op: "recv", Err: io.ErrUnexpectedEOF}
			}
			s.transcript.WriteString(chunk)
			t := s.transcript.String()
			if s.commitSent {
				if m, found := s.detector.CommitFault(t[s.commitOffset:]); found {
					return &CommitError{Marker: m}
				}
			}
			if m, found := s.detector.Fault(t); found {
				return &CommandError{Marker: m}
			}
			if s.promptSeen(t) {
				return nil
			}
		}
	}
}

// promptSeen checks whether the trimmed last line of output ends with one
// of the prompt markers.
func (s *session) promptSeen(transcript string) bool {
	lastLine := transcript
	if i := strings.LastIndexByte(transcript, '\n'); i >= 0 {
		lastLine = transcript[i+1:]
	}
	lastLine = strings.TrimSpace(lastLine)
	if lastLine == "" {
		return false
	}
	for _, p := range s.prompts {
		if strings.HasSuffix(lastLine, p) {
			return true
		}
	}
	return false
}
