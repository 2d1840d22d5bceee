package engine

// EffectKind identifies a side-effect signal emitted by a mutator. Effects
// are returned to the caller, which decides how to surface them (terminal
// celebration, desktop notification); the engine itself never blocks on them.
type EffectKind string

const (
	// EffectWaterGoalReached fires when an intake change crosses the daily
	// goal upward. Re-crossing after a manual decrease legitimately refires.
	EffectWaterGoalReached EffectKind = "water_goal_reached"
	// EffectQuranGoalReached fires when pages read today cross the reading goal.
	EffectQuranGoalReached EffectKind = "quran_goal_reached"
)

type Effect struct {
	Kind    EffectKind
	Message string
}
