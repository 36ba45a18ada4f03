package bot

import botinternal "thirtyone/internal/bot/internal"

// DefaultTuning is the standard opponent: grabs useful discards, knocks
// from a randomized low-twenties threshold when it reads an edge.
var DefaultTuning = botinternal.Tuning{
	HighCardValue:     10,
	AceGrabDecline:    0.2,
	SureKnock:         27,
	KnockFloor:        20,
	KnockSpread:       5,
	PressureKnockMin:  25,
	PressureKnockProb: 0.3,
	BaseEstimate:      16,
	HiddenAllowance:   10,
}

// CautiousTuning waits for very strong hands and overrates the human,
// so it rarely knocks first. Used for the easy difficulty.
var CautiousTuning = botinternal.Tuning{
	HighCardValue:     10,
	AceGrabDecline:    0.5,
	SureKnock:         29,
	KnockFloor:        24,
	KnockSpread:       4,
	PressureKnockMin:  27,
	PressureKnockProb: 0.1,
	BaseEstimate:      20,
	HiddenAllowance:   12,
}

// SharpTuning knocks earlier and reads the human tighter. Used for the
// hard difficulty.
var SharpTuning = botinternal.Tuning{
	HighCardValue:     9,
	AceGrabDecline:    0.05,
	SureKnock:         25,
	KnockFloor:        19,
	KnockSpread:       3,
	PressureKnockMin:  24,
	PressureKnockProb: 0.45,
	BaseEstimate:      14,
	HiddenAllowance:   8,
}
