package battle

import (
	"fmt"
	"io"
	"log"
)

const DefaultMaxRounds = 1000

// Session is one battle between the player's creature and an opponent. It
// owns both combatants, the narration log and the battle state. A Session is
// not safe for concurrent use; callers drive it one action at a time.
type Session struct {
	player   *Combatant
	opponent *Combatant

	playerChooser   MoveChooser
	opponentChooser MoveChooser
	skill           Move
	maxRounds       int
	logger          *log.Logger

	log    Log
	state  State
	rounds int
	effect string
}

type Option func(*Session)

// WithOpponentChooser sets how the opponent picks its move each round.
func WithOpponentChooser(c MoveChooser) Option {
	return func(s *Session) { s.opponentChooser = c }
}

// WithPlayerChooser sets how the player's move is picked in Simulate.
func WithPlayerChooser(c MoveChooser) Option {
	return func(s *Session) { s.playerChooser = c }
}

func WithSkill(m Move) Option {
	return func(s *Session) { s.skill = m }
}

func WithMaxRounds(n int) Option {
	return func(s *Session) { s.maxRounds = n }
}

// WithLogger enables debug tracing of rounds and state changes.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// NewSession sets up a battle. Both choosers default to uniform random
// choice seeded with seed.
func NewSession(player, opponent *Combatant, seed uint64, opts ...Option) (*Session, error) {
	if player == nil || opponent == nil {
		return nil, fmt.Errorf("%w: both combatants are required", ErrInvalidSession)
	}
	if player == opponent {
		return nil, fmt.Errorf("%w: %s cannot fight itself", ErrInvalidSession, player.Name())
	}

	s := &Session{
		player:    player,
		opponent:  opponent,
		skill:     SpecialSkill,
		maxRounds: DefaultMaxRounds,
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.playerChooser == nil {
		s.playerChooser = NewRandomChooser(seed)
	}
	if s.opponentChooser == nil {
		s.opponentChooser = NewRandomChooser(seed + 1)
	}
	if s.maxRounds <= 0 {
		return nil, fmt.Errorf("%w: max rounds must be positive (got %d)", ErrInvalidSession, s.maxRounds)
	}
	if s.logger == nil {
		return nil, fmt.Errorf("%w: nil logger", ErrInvalidSession)
	}

	s.state = s.checkState()
	return s, nil
}

func (s *Session) State() State { return s.state }
func (s *Session) Rounds() int  { return s.rounds }
func (s *Session) Log() *Log    { return &s.log }

func (s *Session) Player() *Combatant   { return s.player }
func (s *Session) Opponent() *Combatant { return s.opponent }

// PlayerAttack plays a round in which the player uses move.
func (s *Session) PlayerAttack(move Move) State {
	return s.Round(move)
}

// PlayerAttackRandom plays a round with a move picked by the player chooser.
func (s *Session) PlayerAttackRandom() State {
	if s.state.Over() {
		return s.state
	}
	return s.Round(s.playerChooser.ChooseMove(s.player.moves))
}

func (s *Session) PlayerUseSkill() State {
	return s.Round(s.skill)
}

// PlayerDefend plays a round in which the player blocks the opponent's move.
func (s *Session) PlayerDefend() State {
	if s.state.Over() {
		return s.state
	}

	s.effect = ""
	s.log.Append(fmt.Sprintf("%s used Defense. No damage taken.", s.player.Name()))
	move := s.opponentChooser.ChooseMove(s.opponent.moves)
	s.log.Append(fmt.Sprintf("%s using %s, but %s blocked it", s.opponent.Name(), move.Name, s.player.Name()))
	s.logger.Printf("round %d: %s defended against %s", s.rounds+1, s.player.Name(), move.Name)

	s.rounds++
	return s.state
}

// Round resolves one full round: the player attacks with playerMove, then
// the opponent answers with its chosen move. No attack is resolved once the
// battle is over.
func (s *Session) Round(playerMove Move) State {
	if s.state.Over() {
		return s.state
	}
	opponentMove := s.opponentChooser.ChooseMove(s.opponent.moves)

	s.strike(s.player, playerMove, s.opponent)
	if !s.state.Over() {
		s.strike(s.opponent, opponentMove, s.player)
	}

	s.rounds++
	return s.state
}

// Simulate plays rounds with the player chooser until one side is knocked
// out. It returns ErrStalemate if the round cap is hit first.
func (s *Session) Simulate() (State, error) {
	for !s.state.Over() {
		if s.rounds >= s.maxRounds {
			return s.state, fmt.Errorf("%w after %d rounds", ErrStalemate, s.rounds)
		}
		s.PlayerAttackRandom()
	}
	return s.state, nil
}

func (s *Session) strike(attacker *Combatant, move Move, defender *Combatant) {
	a := ResolveAttack(attacker, move, defender)
	s.log.Append(a.Narrate())
	s.effect = a.Effectiveness.Describe()
	s.logger.Printf("round %d: %s -> %s: %s x%s = %d (%d/%d left)",
		s.rounds+1, a.Attacker, a.Defender, move.Name, a.Effectiveness, a.Damage, defender.Health(), defender.MaxHealth())

	next := s.checkState()
	if next == s.state {
		return
	}
	s.state = next
	s.logger.Printf("state: %s", next)

	winner, loser := s.player, s.opponent
	if next == OpponentWon {
		winner, loser = s.opponent, s.player
	}
	s.log.Append(fmt.Sprintf("%s is knocked out, %s wins", loser.Name(), winner.Name()))
}

func (s *Session) checkState() State {
	switch {
	case s.opponent.IsKnockedOut():
		return PlayerWon
	case s.player.IsKnockedOut():
		return OpponentWon
	}
	return InProgress
}
