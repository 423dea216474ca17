package game

import (
	"testing"

	"github.com/decker502/deadshelf/pkg/config"
	"github.com/decker502/deadshelf/pkg/ecs"
	"github.com/decker502/deadshelf/pkg/scheduler"
)

const testPlayer ecs.EntityID = 1

func newTestStats() (*PlayerStats, *scheduler.Scheduler) {
	sched := scheduler.New()
	return NewPlayerStats(sched, testPlayer, config.DefaultGameConfig().Player), sched
}

func TestPlayerStatsRegenAfterDelay(t *testing.T) {
	stats, sched := newTestStats()

	if stats.TakeDamage(50) {
		t.Fatal("50 damage should not defeat a 100 hp player")
	}
	if stats.Health() != 50 {
		t.Fatalf("health: got %v, want 50", stats.Health())
	}

	sched.Advance(2.9)
	if stats.Health() != 50 {
		t.Errorf("regen too early: health %v at t=2.9", stats.Health())
	}

	sched.Advance(0.2)
	if stats.Health() != 100 {
		t.Errorf("health after regen: got %v, want 100", stats.Health())
	}
	if stats.RegenPending() {
		t.Error("regen should no longer be pending")
	}
}

func TestPlayerStatsRegenRestartsOnHit(t *testing.T) {
	stats, sched := newTestStats()

	stats.TakeDamage(30)
	sched.Advance(2)
	stats.TakeDamage(30)
	sched.Advance(2)

	// 第二次受伤重新计时，t=4 时还未回血
	if stats.Health() != 40 {
		t.Errorf("health: got %v, want 40", stats.Health())
	}

	sched.Advance(1.1)
	if stats.Health() != 100 {
		t.Errorf("health after restarted regen: got %v, want 100", stats.Health())
	}
}

func TestPlayerStatsDefeatFiresOnce(t *testing.T) {
	stats, sched := newTestStats()

	defeats := 0
	stats.SetDefeatListener(func() { defeats++ })

	results := []bool{
		stats.TakeDamage(50),
		stats.TakeDamage(50),
		stats.TakeDamage(50),
	}
	want := []bool{false, true, false}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("TakeDamage #%d: got %v, want %v", i+1, results[i], want[i])
		}
	}

	if defeats != 1 {
		t.Errorf("defeat listener called %d times, want 1", defeats)
	}
	if stats.Health() != -50 {
		t.Errorf("health: got %v, want -50", stats.Health())
	}
	if !stats.IsDead() {
		t.Error("player should be dead")
	}

	// 阵亡后不再回血
	sched.Advance(10)
	if stats.Health() != -50 {
		t.Errorf("dead player regenerated to %v", stats.Health())
	}
	if sched.PendingFor(testPlayer) != 0 {
		t.Errorf("pending timers after defeat: %d", sched.PendingFor(testPlayer))
	}
}

func TestPlayerStatsPerkMutators(t *testing.T) {
	stats, sched := newTestStats()

	stats.SetMaxHealth(250)
	stats.ScaleMovementSpeed(1.2)
	stats.ScaleReloadMultiplier(2)
	stats.ScaleFireRateMultiplier(1.3)
	stats.ScaleDamageMultiplier(1.3)

	if stats.MaxHealth() != 250 {
		t.Errorf("MaxHealth: got %v, want 250", stats.MaxHealth())
	}
	if got := stats.MovementSpeed(); got < 5.99 || got > 6.01 {
		t.Errorf("MovementSpeed: got %v, want 6", got)
	}
	if stats.ReloadMultiplier() != 2 {
		t.Errorf("ReloadMultiplier: got %v, want 2", stats.ReloadMultiplier())
	}
	if stats.FireRateMultiplier() != 1.3 || stats.DamageMultiplier() != 1.3 {
		t.Errorf("fire/damage multipliers: got %v/%v", stats.FireRateMultiplier(), stats.DamageMultiplier())
	}

	// 新上限在下一次回血时生效
	stats.TakeDamage(10)
	sched.Advance(3)
	if stats.Health() != 250 {
		t.Errorf("health after regen with Juggernaut: got %v, want 250", stats.Health())
	}
}
