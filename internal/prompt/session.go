package prompt

import "unicode/utf8"

// InputSource delivers key events to a single subscriber.
type InputSource interface {
	// Listen registers the handler and starts delivering keys to it.
	// Keys are delivered one at a time.
	Listen(handler func(*Key))
	// Detach stops delivery. No key is delivered after Detach returns.
	Detach()
}

// OutputSink receives the rendered menu.
type OutputSink interface {
	WriteLine(s string)
	Clear()
}

// State is the lifecycle state of a Session.
type State int

const (
	// Idle means Start has not been called yet.
	Idle State = iota
	// Active means the session is processing key events.
	Active
	// Stopped means the user cancelled.
	Stopped
	// Completed means every question was answered.
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Stopped:
		return "stopped"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further events will be processed.
func (s State) Terminal() bool {
	return s == Stopped || s == Completed
}

// Session walks a user through an ordered list of questions.
// It is single use and not safe for concurrent use.
type Session struct {
	questions  []Question
	selections []Selection

	questionIdx int
	choiceIdx   int
	state       State

	marker string
	border string
	banner string
	keymap Keymap
	onDone func(State)

	src InputSource
	out OutputSink
	err error
}

// Option configures a Session.
type Option func(*Session)

// WithMarker sets the symbol printed in front of the current choice.
func WithMarker(marker string) Option {
	return func(s *Session) {
		if marker != "" {
			s.marker = marker
		}
	}
}

// WithBorder sets the rune repeated above and below the prompt, once per
// rune of the prompt text. Anything other than exactly one rune is ignored
// and the default border is kept.
func WithBorder(border string) Option {
	return func(s *Session) {
		if utf8.RuneCountInString(border) == 1 {
			s.border = border
		}
	}
}

// WithBanner sets the line printed when all questions are answered.
func WithBanner(banner string) Option {
	return func(s *Session) {
		s.banner = banner
	}
}

// WithKeymap replaces the default key bindings.
func WithKeymap(m Keymap) Option {
	return func(s *Session) {
		if m != nil {
			s.keymap = m
		}
	}
}

// WithOnDone registers a hook that runs once the session reaches a terminal
// state, after the input source has been detached.
func WithOnDone(fn func(State)) Option {
	return func(s *Session) {
		s.onDone = fn
	}
}

// New creates a session for questions. It returns a *ConfigurationError if
// questions is empty, a question has no choices or two questions share an id.
func New(questions []Question, opts ...Option) (*Session, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}

	s := &Session{
		questions: cloneQuestions(questions),
		marker:    DefaultMarker,
		border:    DefaultBorder,
		banner:    DefaultBanner,
		keymap:    DefaultKeymap(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Start subscribes to src and renders the first question to out.
// Calling Start more than once has no effect.
func (s *Session) Start(src InputSource, out OutputSink) {
	if s.state != Idle {
		return
	}
	s.src = src
	s.out = out
	s.state = Active
	src.Listen(s.handle)
	s.render()
}

func (s *Session) handle(k *Key) {
	// Errors are kept on the session; the input loop has nobody to return them to.
	_ = s.HandleKey(k)
}

// HandleKey resolves k through the keymap and applies the resulting event.
// Unknown and nil keys are ignored.
func (s *Session) HandleKey(k *Key) error {
	return s.HandleEvent(s.keymap.Resolve(k))
}

// HandleEvent applies ev to the session. Events received while the session
// is not active are ignored. The only error returned is
// *InconsistentSelectionError when the final summary cannot be built.
func (s *Session) HandleEvent(ev Event) error {
	if s.state != Active {
		return nil
	}

	q := s.questions[s.questionIdx]
	last := len(q.Choices) - 1

	switch ev {
	case MoveDown:
		if s.choiceIdx < last {
			s.choiceIdx++
			s.render()
		}
	case MoveUp:
		if s.choiceIdx > 0 {
			s.choiceIdx--
			s.render()
		}
	case Cancel:
		s.finish(Stopped)
	case Confirm:
		return s.confirm(q)
	}
	return nil
}

func (s *Session) confirm(q Question) error {
	value := q.Choices[s.choiceIdx]
	s.selections = append(s.selections, Selection{ID: q.ID, Value: value})
	s.out.WriteLine("You selected: " + value)

	if s.questionIdx < len(s.questions)-1 {
		s.questionIdx++
		s.choiceIdx = 0
		s.render()
		return nil
	}

	err := s.renderSummary()
	if err != nil {
		s.err = err
	}
	s.finish(Completed)
	return err
}

// Stop ends an active session from outside the key stream, for example when
// the input closes or the caller's context is cancelled. The session moves to
// Stopped as if Cancel had been pressed, except nothing is rendered. Stop has
// no effect before Start or once the session is over.
func (s *Session) Stop() {
	if s.state == Idle || s.state.Terminal() {
		return
	}
	s.finish(Stopped)
}

// finish moves to a terminal state and releases the input source.
func (s *Session) finish(state State) {
	s.state = state
	s.src.Detach()
	if s.onDone != nil {
		s.onDone(state)
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Err returns the error recorded while handling keys delivered by the input
// source, if any.
func (s *Session) Err() error {
	return s.err
}

// QuestionIndex returns the 0-based index of the current question.
func (s *Session) QuestionIndex() int {
	return s.questionIdx
}

// ChoiceIndex returns the 0-based index of the highlighted choice.
func (s *Session) ChoiceIndex() int {
	return s.choiceIdx
}

// Current returns the question being shown.
func (s *Session) Current() Question {
	return s.questions[s.questionIdx]
}

// Selections returns a copy of the selections recorded so far, in the order
// the questions were answered.
func (s *Session) Selections() []Selection {
	return append([]Selection(nil), s.selections...)
}
