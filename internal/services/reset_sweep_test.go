package services

import (
	"testing"
	"time"

	"github.com/strideapp/stride/internal/models"
)

func seedSweepUser(state *memoryState) {
	state.users[1] = models.User{ID: 1}
}

func TestRunIfNeededResetsBrokenStreak(t *testing.T) {
	state := newMemoryState()
	seedSweepUser(state)
	habit := state.addHabit(models.Habit{UserID: 1, Name: "Stretch", Category: models.CategoryFitness, Cadence: models.CadenceDaily, Streak: 5})
	state.addLog(models.HabitLog{HabitID: habit.ID, UserID: 1, Date: mustDay(t, "2026-03-08"), Status: models.StatusCompleted})

	_, resets := newTestEngine(state)
	now := mustDay(t, "2026-03-10").Add(9 * time.Hour)
	if err := resets.RunIfNeeded(1, now, time.UTC); err != nil {
		t.Fatalf("RunIfNeeded: %v", err)
	}

	if got := state.habits[habit.ID].Streak; got != 0 {
		t.Fatalf("expected streak reset to 0, got %d", got)
	}
	if len(state.resetCalls) != 1 {
		t.Fatalf("expected one reset call, got %d", len(state.resetCalls))
	}
}

func TestRunIfNeededPreservesStreakWhenYesterdayCompleted(t *testing.T) {
	state := newMemoryState()
	seedSweepUser(state)
	habit := state.addHabit(models.Habit{UserID: 1, Name: "Stretch", Category: models.CategoryFitness, Cadence: models.CadenceDaily, Streak: 5})
	state.addLog(models.HabitLog{HabitID: habit.ID, UserID: 1, Date: mustDay(t, "2026-03-09"), Status: models.StatusCompleted})

	_, resets := newTestEngine(state)
	now := mustDay(t, "2026-03-10").Add(9 * time.Hour)
	if err := resets.RunIfNeeded(1, now, time.UTC); err != nil {
		t.Fatalf("RunIfNeeded: %v", err)
	}

	if got := state.habits[habit.ID].Streak; got != 5 {
		t.Fatalf("expected streak kept at 5, got %d", got)
	}
	if len(state.resetCalls) != 0 {
		t.Fatalf("expected no reset call, got %d", len(state.resetCalls))
	}
}

func TestRunIfNeededSparesHabitCompletedToday(t *testing.T) {
	state := newMemoryState()
	seedSweepUser(state)
	habit := state.addHabit(models.Habit{UserID: 1, Name: "Stretch", Category: models.CategoryFitness, Cadence: models.CadenceDaily, Streak: 1})
	state.addLog(models.HabitLog{HabitID: habit.ID, UserID: 1, Date: mustDay(t, "2026-03-10"), Status: models.StatusCompleted})

	_, resets := newTestEngine(state)
	now := mustDay(t, "2026-03-10").Add(18 * time.Hour)
	if err := resets.RunIfNeeded(1, now, time.UTC); err != nil {
		t.Fatalf("RunIfNeeded: %v", err)
	}

	if got := state.habits[habit.ID].Streak; got != 1 {
		t.Fatalf("habit already completed today must keep its streak, got %d", got)
	}
}

func TestRunIfNeededSkipsNonDailyAndZeroStreakHabits(t *testing.T) {
	state := newMemoryState()
	seedSweepUser(state)
	weekly := state.addHabit(models.Habit{UserID: 1, Name: "Deep clean", Category: models.CategoryPersonal, Cadence: models.CadenceWeekly, Streak: 3})
	zeroed := state.addHabit(models.Habit{UserID: 1, Name: "Meditate", Category: models.CategoryHealth, Cadence: models.CadenceDaily, Streak: 0})

	_, resets := newTestEngine(state)
	now := mustDay(t, "2026-03-10").Add(9 * time.Hour)
	if err := resets.RunIfNeeded(1, now, time.UTC); err != nil {
		t.Fatalf("RunIfNeeded: %v", err)
	}

	if got := state.habits[weekly.ID].Streak; got != 3 {
		t.Fatalf("weekly habit must be untouched, got %d", got)
	}
	if got := state.habits[zeroed.ID].Streak; got != 0 {
		t.Fatalf("zero streak must stay zero, got %d", got)
	}
	if len(state.resetCalls) != 0 {
		t.Fatalf("expected no reset call, got %d", len(state.resetCalls))
	}
}

func TestRunIfNeededIsIdempotentWithinADay(t *testing.T) {
	state := newMemoryState()
	seedSweepUser(state)
	state.addHabit(models.Habit{UserID: 1, Name: "Stretch", Category: models.CategoryFitness, Cadence: models.CadenceDaily, Streak: 5})

	_, resets := newTestEngine(state)
	now := mustDay(t, "2026-03-10").Add(9 * time.Hour)
	if err := resets.RunIfNeeded(1, now, time.UTC); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := resets.RunIfNeeded(1, now.Add(4*time.Hour), time.UTC); err != nil {
		t.Fatalf("second run: %v", err)
	}

	if len(state.resetCalls) != 1 {
		t.Fatalf("second run of the day must be a no-op, got %d reset calls", len(state.resetCalls))
	}
	lastCheckEvents := 0
	for _, event := range state.events {
		if event == "lastcheck" {
			lastCheckEvents++
		}
	}
	if lastCheckEvents != 1 {
		t.Fatalf("expected one last-check update, got %d", lastCheckEvents)
	}
}

func TestRunIfNeededRunsAgainOnANewDay(t *testing.T) {
	state := newMemoryState()
	seedSweepUser(state)
	state.addHabit(models.Habit{UserID: 1, Name: "Stretch", Category: models.CategoryFitness, Cadence: models.CadenceDaily, Streak: 5})

	_, resets := newTestEngine(state)
	if err := resets.RunIfNeeded(1, mustDay(t, "2026-03-10").Add(9*time.Hour), time.UTC); err != nil {
		t.Fatalf("first day: %v", err)
	}
	if err := resets.RunIfNeeded(1, mustDay(t, "2026-03-11").Add(9*time.Hour), time.UTC); err != nil {
		t.Fatalf("second day: %v", err)
	}

	user := state.users[1]
	if user.LastStreakCheck == nil {
		t.Fatal("expected LastStreakCheck to be set")
	}
	if got := DayKey(*user.LastStreakCheck, time.UTC); got != "2026-03-11" {
		t.Fatalf("expected LastStreakCheck on 2026-03-11, got %s", got)
	}
}

func TestRunIfNeededCommitsResetsBeforeMovingTheGate(t *testing.T) {
	state := newMemoryState()
	seedSweepUser(state)
	state.addHabit(models.Habit{UserID: 1, Name: "Stretch", Category: models.CategoryFitness, Cadence: models.CadenceDaily, Streak: 5})

	_, resets := newTestEngine(state)
	now := mustDay(t, "2026-03-10").Add(9 * time.Hour)
	if err := resets.RunIfNeeded(1, now, time.UTC); err != nil {
		t.Fatalf("RunIfNeeded: %v", err)
	}

	if len(state.events) != 2 || state.events[0] != "reset" || state.events[1] != "lastcheck" {
		t.Fatalf("expected reset before the last-check update, got %v", state.events)
	}
}
