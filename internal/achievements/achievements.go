// Package achievements derives unlock status and progress for a fixed rule
// catalog from a StateRecord snapshot. Evaluation is a full recompute every
// time; nothing is cached.
package achievements

import "github.com/lifebalance/lifebalance/internal/models"

type Rank string

const (
	RankEasy   Rank = "easy"
	RankMedium Rank = "medium"
	RankHard   Rank = "hard"
)

// Rule pairs a metric extractor with an unlock threshold.
type Rule struct {
	ID        string
	Name      string
	Rank      Rank
	Threshold float64
	Metric    func(models.StateRecord) float64
}

// Status is the evaluated state of one rule.
type Status struct {
	Rule     Rule
	Unlocked bool
	Progress float64 // 0-100, 100 exactly when the threshold is met
}

// Catalog is the fixed achievement rule set. Metrics are plain functions of
// the record so the evaluator stays a single uniform loop.
var Catalog = []Rule{
	{ID: "streak_7", Name: "7-Day Warrior", Rank: RankEasy, Threshold: 7,
		Metric: func(r models.StateRecord) float64 { return float64(r.StreakDays) }},
	{ID: "streak_30", Name: "Monthly Champion", Rank: RankMedium, Threshold: 30,
		Metric: func(r models.StateRecord) float64 { return float64(r.StreakDays) }},
	{ID: "streak_100", Name: "100-Day Legend", Rank: RankHard, Threshold: 100,
		Metric: func(r models.StateRecord) float64 { return float64(r.StreakDays) }},

	{ID: "water_daily", Name: "Hydration Hero", Rank: RankEasy, Threshold: 100,
		Metric: func(r models.StateRecord) float64 {
			goal := r.WaterGoalMl()
			if goal <= 0 {
				return 0
			}
			return float64(r.WaterIntakeMl) / float64(goal) * 100
		}},

	{ID: "tasks_10", Name: "Task Master", Rank: RankEasy, Threshold: 10,
		Metric: func(r models.StateRecord) float64 { return float64(r.DoneTaskCount()) }},
	{ID: "tasks_50", Name: "Task Terminator", Rank: RankMedium, Threshold: 50,
		Metric: func(r models.StateRecord) float64 { return float64(r.DoneTaskCount()) }},
	{ID: "tasks_100", Name: "Productivity Pro", Rank: RankHard, Threshold: 100,
		Metric: func(r models.StateRecord) float64 { return float64(r.DoneTaskCount()) }},

	{ID: "gratitude_5", Name: "Grateful Heart", Rank: RankEasy, Threshold: 5,
		Metric: func(r models.StateRecord) float64 { return float64(len(r.GratitudeNotes)) }},
	{ID: "gratitude_10", Name: "Gratitude Guru", Rank: RankMedium, Threshold: 10,
		Metric: func(r models.StateRecord) float64 { return float64(len(r.GratitudeNotes)) }},
	{ID: "gratitude_30", Name: "Blessed Soul", Rank: RankHard, Threshold: 30,
		Metric: func(r models.StateRecord) float64 { return float64(len(r.GratitudeNotes)) }},

	{ID: "sleep_quality", Name: "Sleep Sage", Rank: RankEasy, Threshold: 2.5,
		Metric: SleepAverage},
	{ID: "sleep_perfect", Name: "Dream Master", Rank: RankMedium, Threshold: 5,
		Metric: func(r models.StateRecord) float64 {
			good := 0
			for _, e := range lastSleepEntries(r, 7) {
				if e.Quality == models.SleepGood {
					good++
				}
			}
			return float64(good)
		}},

	{ID: "habits_20", Name: "Wellness Warrior", Rank: RankMedium, Threshold: 20,
		Metric: func(r models.StateRecord) float64 {
			n := 0
			for _, t := range r.Tasks {
				if t.Status == models.TaskDone && t.Priority == models.PriorityLow {
					n++
				}
			}
			return float64(n)
		}},

	{ID: "all_rounder", Name: "Balanced Life", Rank: RankMedium, Threshold: 4,
		Metric: func(r models.StateRecord) float64 {
			n := 0
			if r.WaterIntakeMl > 0 {
				n++
			}
			if len(r.SleepHistory) > 0 {
				n++
			}
			if len(r.Tasks) > 0 {
				n++
			}
			if len(r.GratitudeNotes) > 0 {
				n++
			}
			return float64(n)
		}},
}

// SleepAverage scores the last 7 check-ins (good=3, average=2, poor=1).
// Returns 0 with no history.
func SleepAverage(r models.StateRecord) float64 {
	recent := lastSleepEntries(r, 7)
	if len(recent) == 0 {
		return 0
	}

	scores := map[models.SleepQuality]int{
		models.SleepGood:    3,
		models.SleepAverage: 2,
		models.SleepPoor:    1,
	}
	sum := 0
	for _, e := range recent {
		sum += scores[e.Quality]
	}
	return float64(sum) / float64(len(recent))
}

func lastSleepEntries(r models.StateRecord, n int) []models.SleepEntry {
	if len(r.SleepHistory) <= n {
		return r.SleepHistory
	}
	return r.SleepHistory[len(r.SleepHistory)-n:]
}

// Evaluate recomputes the full catalog against the given snapshot.
func Evaluate(rec models.StateRecord) []Status {
	out := make([]Status, 0, len(Catalog))
	for _, rule := range Catalog {
		current := rule.Metric(rec)
		st := Status{Rule: rule}
		if current >= rule.Threshold {
			st.Unlocked = true
			st.Progress = 100
		} else {
			st.Progress = current / rule.Threshold * 100
			if st.Progress < 0 {
				st.Progress = 0
			}
			if st.Progress > 100 {
				st.Progress = 100
			}
		}
		out = append(out, st)
	}
	return out
}

// Unlocked counts the unlocked rules in an evaluated set.
func Unlocked(statuses []Status) int {
	n := 0
	for _, s := range statuses {
		if s.Unlocked {
			n++
		}
	}
	return n
}
