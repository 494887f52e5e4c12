package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"scrambledstates/internal/models"
)

// Scoring and pacing constants. The point values are game-balance
// tunables, not structural contracts.
const (
	basePoints        = 10
	streakBonus       = 5
	multiAnswerPoints = 5

	defaultSpeedLimit = 30 // seconds

	defaultRoundDelay = 2500 * time.Millisecond
	defaultBadgeDelay = 7 * time.Second

	hintCooldown     = 5 * time.Second
	scrambleCooldown = 3 * time.Second
)

var (
	// ErrSessionEnded is returned for actions on a finished session
	ErrSessionEnded = errors.New("game session has ended")

	// ErrCardNotInHand is returned when a tapped state is not part of
	// the current hand
	ErrCardNotInHand = errors.New("card is not in the current hand")
)

var cheerfulPhrases = []string{"Amazing!", "Fantastic!", "Brilliant!", "Super!", "Excellent!"}

var multiAnswerPhrases = []string{"Yay!", "Nice!", "Great!", "Awesome!", "Perfect!"}

var encouragingPhrases = []string{
	"Almost there! Keep trying!",
	"Good effort! Try again!",
	"Nice try! You can do it!",
	"So close! Give it another go!",
	"Keep going! You're learning!",
}

// SlapResult describes the outcome of one card tap
type SlapResult struct {
	Correct       bool
	AlreadyFound  bool // card was confirmed earlier this round; tap ignored
	Points        int
	Streak        int
	Feedback      string
	Badge         models.BadgeTier // BadgeNone unless a badge was just awarded
	RoundComplete bool
	FoundCount    int // confirmed cards so far (multi-answer rounds)
}

// Summary is the result of a finished game, persisted into the
// profile's history.
type Summary struct {
	Mode       models.GameMode
	Score      int // points earned this session
	TotalScore int // running total for the mode, including this session
	Streak     int
}

// Session is one player's running game: the current challenge and hand,
// scoring state, and the timers that pace round advancement. All
// mutation is serialized behind the mutex because taps can race the
// round-advance timer and the speed-mode countdown.
type Session struct {
	ID        string
	ProfileID int64
	Mode      models.GameMode

	mu        sync.Mutex
	dealer    *Dealer
	store     ProfileStore
	announcer Announcer

	challenge     Challenge
	hand          []models.StateCard
	confirmed     map[string]bool
	score         int // running total for the mode
	sessionScore  int // earned this game only
	streak        int
	hintAvailable bool
	canScramble   bool
	timeLeft      int
	started       bool
	ended         bool

	advanceTimer  *time.Timer
	hintTimer     *time.Timer
	scrambleTimer *time.Timer
	countdownStop chan struct{}
	stopOnce      sync.Once

	roundDelay time.Duration
	badgeDelay time.Duration
	speedLimit int

	// onExpire is invoked (without the lock held) after the speed-mode
	// countdown forces the game to end.
	onExpire func(Summary)
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithDelays overrides the round-advance grace periods, mainly for tests
func WithDelays(round, badge time.Duration) SessionOption {
	return func(s *Session) {
		s.roundDelay = round
		s.badgeDelay = badge
	}
}

// WithSpeedLimit overrides the speed-mode countdown length in seconds
func WithSpeedLimit(seconds int) SessionOption {
	return func(s *Session) {
		if seconds > 0 {
			s.speedLimit = seconds
		}
	}
}

// WithExpireFunc registers a callback for countdown-forced game ends
func WithExpireFunc(fn func(Summary)) SessionOption {
	return func(s *Session) {
		s.onExpire = fn
	}
}

// NewSession creates a game session. Start must be called before play.
func NewSession(id string, profileID int64, mode models.GameMode, dealer *Dealer, store ProfileStore, announcer Announcer, opts ...SessionOption) *Session {
	if announcer == nil {
		announcer = NopAnnouncer{}
	}
	s := &Session{
		ID:            id,
		ProfileID:     profileID,
		Mode:          mode,
		dealer:        dealer,
		store:         store,
		announcer:     announcer,
		confirmed:     make(map[string]bool),
		canScramble:   true,
		roundDelay:    defaultRoundDelay,
		badgeDelay:    defaultBadgeDelay,
		speedLimit:    defaultSpeedLimit,
		countdownStop: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the profile's running score for the mode, deals the first
// round, and starts the countdown in speed mode.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true

	// The mode's scoreboard carries over between games; only the
	// session score starts at zero.
	if s.store != nil {
		if total, err := s.store.ModeScore(s.ProfileID, s.Mode); err == nil {
			s.score = total
		}
	}
	s.sessionScore = 0
	s.streak = 0

	go s.announcer.PlaySound(SoundLaunch)
	s.dealRound()

	if s.Mode == models.ModeSpeed {
		s.timeLeft = s.speedLimit
		go s.runCountdown()
	}
}

// dealRound replaces the challenge and hand and resets per-round state.
// Callers must hold the lock.
func (s *Session) dealRound() {
	round := s.dealer.Deal(s.Mode)
	s.challenge = round.Challenge
	s.hand = round.Hand
	s.confirmed = make(map[string]bool)
	s.hintAvailable = s.Mode == models.ModeEducational

	go s.announcer.SpeakChallenge(round.Challenge.Description())
}

// Slap handles the player tapping the named card
func (s *Session) Slap(name string) (SlapResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended || !s.started {
		return SlapResult{}, ErrSessionEnded
	}

	var card models.StateCard
	found := false
	for _, c := range s.hand {
		if c.Name == name {
			card = c
			found = true
			break
		}
	}
	if !found {
		return SlapResult{}, ErrCardNotInHand
	}

	go s.announcer.PlaySound(SoundTap)

	// A correctly tapped card stays disabled for the rest of the round
	if s.confirmed[card.Name] {
		return SlapResult{AlreadyFound: true, Streak: s.streak, FoundCount: len(s.confirmed)}, nil
	}

	if s.challenge.MultiAnswer() {
		return s.resolveMultiAnswer(card), nil
	}
	return s.resolveSingleAnswer(card), nil
}

// resolveSingleAnswer scores a tap for every challenge kind except the
// multi-answer ones. A correct answer ends the round; a miss resets the
// streak and leaves the hand unchanged for another try.
func (s *Session) resolveSingleAnswer(card models.StateCard) SlapResult {
	if !s.challenge.MatchesInHand(card, s.hand) {
		return s.miss()
	}

	points := basePoints + s.streak*streakBonus
	s.score += points
	s.sessionScore += points
	s.streak++
	s.confirmed[card.Name] = true

	go s.announcer.PlaySound(SoundCorrect)

	badge := s.checkBadge()

	feedback := fmt.Sprintf("%s +%d points", s.pickPhrase(cheerfulPhrases), points)
	switch s.challenge.Kind {
	case HasCapitalSyllables, CapitalHasName, MatchCapital:
		feedback = fmt.Sprintf("%s\n%s: %s", feedback, card.Name, card.Capital)
	}

	s.scheduleAdvance(badge != models.BadgeNone)

	return SlapResult{
		Correct:       true,
		Points:        points,
		Streak:        s.streak,
		Feedback:      feedback,
		Badge:         badge,
		RoundComplete: true,
		FoundCount:    len(s.confirmed),
	}
}

// resolveMultiAnswer scores a tap on a find-all challenge. Each correct
// pick earns a flat award and its own badge check; the round only
// advances once every matching card in the hand has been found.
func (s *Session) resolveMultiAnswer(card models.StateCard) SlapResult {
	if !s.challenge.MatchesInHand(card, s.hand) {
		return s.miss()
	}

	s.confirmed[card.Name] = true
	s.score += multiAnswerPoints
	s.sessionScore += multiAnswerPoints
	s.streak++

	go s.announcer.PlaySound(SoundCorrect)

	badge := s.checkBadge()

	remaining := 0
	for _, c := range s.hand {
		if s.challenge.MatchesInHand(c, s.hand) && !s.confirmed[c.Name] {
			remaining++
		}
	}

	complete := remaining == 0
	if complete {
		s.scheduleAdvance(badge != models.BadgeNone)
	}

	return SlapResult{
		Correct:       true,
		Points:        multiAnswerPoints,
		Streak:        s.streak,
		Feedback:      fmt.Sprintf("%s %d found!", s.pickPhrase(multiAnswerPhrases), len(s.confirmed)),
		Badge:         badge,
		RoundComplete: complete,
		FoundCount:    len(s.confirmed),
	}
}

// miss resets the streak; the hand stays so the player can try again
func (s *Session) miss() SlapResult {
	s.streak = 0
	go s.announcer.PlaySound(SoundIncorrect)
	return SlapResult{
		Correct:    false,
		Streak:     0,
		Feedback:   s.pickPhrase(encouragingPhrases),
		FoundCount: len(s.confirmed),
	}
}

// checkBadge awards the streak-milestone badge for the session's mode
// if it is a strict upgrade over the stored tier. Awarding resets the
// streak. Store failures skip the award rather than surfacing an error;
// the store's tier stays monotonic either way.
func (s *Session) checkBadge() models.BadgeTier {
	tier, ok := models.BadgeForStreak(s.streak)
	if !ok || s.store == nil {
		return models.BadgeNone
	}

	current, err := s.store.Badge(s.ProfileID, s.Mode)
	if err != nil || tier <= current {
		return models.BadgeNone
	}
	if err := s.store.UpgradeBadge(s.ProfileID, s.Mode, tier); err != nil {
		return models.BadgeNone
	}

	s.streak = 0
	return tier
}

// scheduleAdvance deals the next round after the grace delay, extended
// when a badge award animation has to play first.
func (s *Session) scheduleAdvance(badgeAwarded bool) {
	delay := s.roundDelay
	if badgeAwarded {
		delay = s.badgeDelay
	}
	s.advanceTimer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.ended {
			return
		}
		s.dealRound()
	})
}

// Hint returns challenge-specific help derived from a matching card in
// the hand. Educational mode only; one hint at a time with a cooldown.
func (s *Session) Hint() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended || s.Mode != models.ModeEducational || !s.hintAvailable {
		return "", false
	}

	var card models.StateCard
	found := false
	for _, c := range s.hand {
		if s.challenge.MatchesInHand(c, s.hand) {
			card = c
			found = true
			break
		}
	}
	if !found {
		return "", false
	}

	s.hintAvailable = false
	s.hintTimer = time.AfterFunc(hintCooldown, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.ended {
			s.hintAvailable = true
		}
	})

	return s.hintText(card), true
}

func (s *Session) hintText(card models.StateCard) string {
	switch s.challenge.Kind {
	case StartsWithLetter:
		return fmt.Sprintf("Look for a state starting with '%s'! The answer is in the %s region.", s.challenge.Arg, card.Region)
	case EndsWithLetter:
		return fmt.Sprintf("Find a state ending with '%s'! Hint: it's in the %s region.", s.challenge.Arg, card.Region)
	case SyllableCount:
		return fmt.Sprintf("Find a state with %d syllable%s! It's in the %s region.", s.challenge.Count, plural(s.challenge.Count), card.Region)
	case InRegion:
		return fmt.Sprintf("Find a %s state! Hint: it starts with '%s'.", s.challenge.Arg, card.Name[:1])
	case IsCoastal:
		return fmt.Sprintf("Find a coastal state! Hint: %s touches the ocean.", card.Name)
	case NotCoastal:
		return fmt.Sprintf("Find a landlocked state! Hint: %s is inland.", card.Name)
	case HasNickname:
		return fmt.Sprintf("Look for '%s' state! Hint: the state is %s.", s.challenge.Arg, card.Name)
	case BordersWith:
		return fmt.Sprintf("Find a state bordering %s! Hint: it's in the %s region.", s.challenge.Arg, card.Region)
	case EastOf, AllEastOf:
		return fmt.Sprintf("Look for a state to the EAST! Hint: %s is in the %s.", card.Name, card.Region)
	case WestOf:
		return fmt.Sprintf("Look for a state to the WEST! Hint: %s is in the %s.", card.Name, card.Region)
	case NorthOf:
		return fmt.Sprintf("Look for a state to the NORTH! Hint: %s is in the %s.", card.Name, card.Region)
	case SouthOf:
		return fmt.Sprintf("Look for a state to the SOUTH! Hint: %s is in the %s.", card.Name, card.Region)
	case HasDoubleLetters:
		return fmt.Sprintf("Look for repeated letters in the name! Hint: %s has double letters.", card.Name)
	case NicknameHasNature:
		return fmt.Sprintf("Think about the state's nickname! Hint: %s for %s.", card.Nickname, card.Name)
	default:
		return fmt.Sprintf("Think about the question carefully! Hint: the answer is %s.", card.Name)
	}
}

// Scramble reshuffles the hand order. Cosmetic, with a short cooldown.
func (s *Session) Scramble() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended || !s.canScramble {
		return false
	}

	s.dealer.rng.Shuffle(len(s.hand), func(i, j int) {
		s.hand[i], s.hand[j] = s.hand[j], s.hand[i]
	})

	s.canScramble = false
	s.scrambleTimer = time.AfterFunc(scrambleCooldown, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.ended {
			s.canScramble = true
		}
	})
	return true
}

// runCountdown ticks the speed-mode clock once per second and forces
// the game to end at zero. Any other end path stops the ticker.
func (s *Session) runCountdown() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.countdownStop:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.ended {
				s.mu.Unlock()
				return
			}
			s.timeLeft--
			expired := s.timeLeft <= 0
			s.mu.Unlock()

			if expired {
				summary, _ := s.End()
				if s.onExpire != nil {
					s.onExpire(summary)
				}
				return
			}
		}
	}
}

// End finishes the game, cancels all timers, and persists the session
// into the profile's history. Idempotent; the store error (if any) is
// returned so callers can log it, but the summary is always valid.
func (s *Session) End() (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := Summary{
		Mode:       s.Mode,
		Score:      s.sessionScore,
		TotalScore: s.score,
		Streak:     s.streak,
	}

	if s.ended {
		return summary, nil
	}
	s.ended = true

	s.stopOnce.Do(func() { close(s.countdownStop) })
	if s.advanceTimer != nil {
		s.advanceTimer.Stop()
	}
	if s.hintTimer != nil {
		s.hintTimer.Stop()
	}
	if s.scrambleTimer != nil {
		s.scrambleTimer.Stop()
	}

	var err error
	if s.store != nil {
		err = s.store.RecordGame(s.ProfileID, models.GameHistoryEntry{
			Mode:     s.Mode,
			Score:    s.sessionScore,
			Streak:   s.streak,
			PlayedAt: time.Now(),
		})
	}
	return summary, err
}

// Snapshot is a read-only view of the session for the presentation layer
type Snapshot struct {
	ID            string
	ProfileID     int64
	Mode          models.GameMode
	Challenge     string
	Hand          []models.StateCard
	Confirmed     []string
	Score         int
	SessionScore  int
	Streak        int
	TimeLeft      int
	HintAvailable bool
	MultiAnswer   bool
	Ended         bool
}

// Snapshot returns the current state of the session
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	confirmed := make([]string, 0, len(s.confirmed))
	for _, c := range s.hand {
		if s.confirmed[c.Name] {
			confirmed = append(confirmed, c.Name)
		}
	}

	hand := make([]models.StateCard, len(s.hand))
	copy(hand, s.hand)

	return Snapshot{
		ID:            s.ID,
		ProfileID:     s.ProfileID,
		Mode:          s.Mode,
		Challenge:     s.challenge.Description(),
		Hand:          hand,
		Confirmed:     confirmed,
		Score:         s.score,
		SessionScore:  s.sessionScore,
		Streak:        s.streak,
		TimeLeft:      s.timeLeft,
		HintAvailable: s.hintAvailable,
		MultiAnswer:   s.challenge.MultiAnswer(),
		Ended:         s.ended,
	}
}

func (s *Session) pickPhrase(phrases []string) string {
	return phrases[s.dealer.rng.Intn(len(phrases))]
}
