package matchgame

import (
	"github.com/faithrecall/game-server/internal/content"
)

// Side distinguishes the image deck from the name deck.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Phase is the engine's lifecycle position.
type Phase string

const (
	// PhaseRevealAll is the optional memorization window right after the
	// deal: every card face-up, input ignored, round timer not yet running.
	PhaseRevealAll Phase = "reveal_all"
	// PhaseInPlay accepts picks (awaiting first or second pick).
	PhaseInPlay Phase = "in_play"
	// PhaseResolving means both sides are picked and the engine is locked
	// until the resolution feedback window elapses.
	PhaseResolving Phase = "resolving"
	// PhaseComplete means every pair has been matched or the round timer
	// expired.
	PhaseComplete Phase = "complete"
)

// Card is one deck slot's state.
type Card struct {
	Saint    content.Saint `json:"saint"`
	Revealed bool          `json:"revealed"`
	Selected bool          `json:"selected"`
	Matched  bool          `json:"matched"`
	Removed  bool          `json:"removed"`
}

// PickKind reports how a click was interpreted.
type PickKind string

const (
	// PickIgnored: locked engine, out-of-range index, or an already
	// revealed/matched/removed card. Always a silent no-op.
	PickIgnored PickKind = "ignored"
	// PickFirst: a new first pick on a side with no pending pick.
	PickFirst PickKind = "first"
	// PickReplaced: a same-side pick replacing the pending first pick.
	PickReplaced PickKind = "replaced"
	// PickResolving: the pick completed a left/right pair; a Resolution is
	// attached and the engine is now locked.
	PickResolving PickKind = "resolving"
)

// PickOutcome is the result of a single click.
type PickOutcome struct {
	Kind       PickKind
	Side       Side
	Index      int
	Resolution *Resolution
}

// Resolution describes a completed left/right comparison.
type Resolution struct {
	Matched    bool
	LeftIndex  int
	RightIndex int
	Score      int
	Penalty    int
	ComboLevel int
	ElapsedMs  int64
}

// ScoreSink receives score mutations from the engine. Implemented by the
// session store.
type ScoreSink interface {
	AddGame1Score(points int)
	AddGame1Penalty(points int)
	IncrementGame1Combo()
	ResetGame1Combo()
	Game1Combo() int
}
