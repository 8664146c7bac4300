package ws

import "encoding/json"

// MessageType constants for the game WebSocket protocol.
const (
	// Client -> Server
	TypeRegister        = "register"
	TypePickCard        = "pick_card"
	TypeSubmitAnswer    = "submit_answer"
	TypePressDigit      = "press_digit"
	TypeBackspace       = "backspace"
	TypeClearEntry      = "clear_entry"
	TypeForgotCode      = "forgot_code"
	TypePenanceToggle   = "penance_toggle"
	TypePenanceContinue = "penance_continue"
	TypeGoHome          = "go_home"
	TypeGoLeaderboard   = "go_leaderboard"

	// Server -> Client
	TypeStage             = "stage"
	TypeCodeIssued        = "code_issued"
	TypeDecksDealt        = "decks_dealt"
	TypePickResult        = "pick_result"
	TypeRoundTick         = "round_tick"
	TypeQuestion          = "question"
	TypeQuestionTick      = "question_tick"
	TypeAnswerResult      = "answer_result"
	TypeEntryState        = "entry_state"
	TypeVerifyResult      = "verify_result"
	TypePenanceState      = "penance_state"
	TypeResults           = "results"
	TypeLeaderboardUpdate = "leaderboard_update"
	TypeError             = "error"
)

// Message wraps all WebSocket payloads with a type tag.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Client messages (incoming)

type RegisterPayload struct {
	Name   string `json:"name"`
	Region string `json:"region"`
}

type PickCardPayload struct {
	Side  string `json:"side"` // "left" or "right"
	Index int    `json:"index"`
}

type SubmitAnswerPayload struct {
	Label string `json:"label"`
}

type PressDigitPayload struct {
	Digit string `json:"digit"` // single character "0".."9"
}

type PenanceTogglePayload struct {
	Index int `json:"index"`
}

// Server messages (outgoing)

type StagePayload struct {
	Stage string `json:"stage"`
}

type CodeIssuedPayload struct {
	Code           string `json:"code"`
	DisplaySeconds int    `json:"display_seconds"`
}

type CardView struct {
	SaintID   int    `json:"saint_id,omitempty"` // only set while revealed
	SaintName string `json:"saint_name,omitempty"`
	Image     string `json:"image,omitempty"`
	Revealed  bool   `json:"revealed"`
	Matched   bool   `json:"matched"`
	Removed   bool   `json:"removed"`
}

type DecksDealtPayload struct {
	Left          []CardView `json:"left"`
	Right         []CardView `json:"right"`
	RevealSeconds int        `json:"reveal_seconds"`
	RoundSeconds  int        `json:"round_seconds"`
}

type PickResultPayload struct {
	Kind           string     `json:"kind"` // first | replaced | match | mismatch | cleared
	Left           []CardView `json:"left"`
	Right          []CardView `json:"right"`
	Score          int        `json:"score,omitempty"`
	Penalty        int        `json:"penalty,omitempty"`
	ComboLevel     int        `json:"combo_level"`
	Game1Score     int        `json:"game1_score"`
	RemainingPairs int        `json:"remaining_pairs"`
}

type RoundTickPayload struct {
	RemainingSeconds int `json:"remaining_seconds"`
}

type QuestionView struct {
	Emojis   []string `json:"emojis"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

type Option struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

type QuestionPayload struct {
	Question        QuestionView `json:"question"`
	Index           int          `json:"index"`
	Total           int          `json:"total"`
	QuestionSeconds int          `json:"question_seconds"`
	GlobalSeconds   int          `json:"global_seconds"`
}

type QuestionTickPayload struct {
	QuestionRemaining int `json:"question_remaining"`
	GlobalRemaining   int `json:"global_remaining"`
}

type AnswerResultPayload struct {
	Correct    bool `json:"correct"`
	Points     int  `json:"points"`
	TimedOut   bool `json:"timed_out"`
	Game2Score int  `json:"game2_score"`
}

type EntryStatePayload struct {
	Length int `json:"length"`
}

type VerifyResultPayload struct {
	Outcome           string `json:"outcome"` // verified | retry | penance
	AttemptsRemaining int    `json:"attempts_remaining,omitempty"`
}

type PenanceStatePayload struct {
	Checked  []bool `json:"checked"`
	Complete bool   `json:"complete"`
}

type ResultsPayload struct {
	PlayerName   string `json:"player_name"`
	PlayerRegion string `json:"player_region"`
	Game1Score   int    `json:"game1_score"`
	Game1Matches int    `json:"game1_matches"`
	Game2Score   int    `json:"game2_score"`
	Game2Answers int    `json:"game2_answers"`
	TotalScore   int    `json:"total_score"`
	Saved        bool   `json:"saved"`
	SaveError    string `json:"save_error,omitempty"`
}

type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Region string `json:"region"`
	Score  int    `json:"score"`
}

type LeaderboardUpdatePayload struct {
	Top []LeaderboardEntry `json:"top"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Must marshals a payload into a Message, panicking on marshal failure.
// Payload types are plain structs, so failure means a programming error.
func Must(msgType string, payload any) Message {
	raw, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return Message{Type: msgType, Payload: raw}
}
