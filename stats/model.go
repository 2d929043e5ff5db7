package stats

import (
	"math"

	"atlas-stats/notify"
)

// LevelUpHealthMultiplier is the maximum health growth applied on each level up.
// Health is float64, so grown values are approximate (100 grows to 110.00000000000001).
const LevelUpHealthMultiplier = 1.1

// Model holds the canonical stats of a player. State changes only through its
// mutators, each of which broadcasts a single change event after updating state.
// A Model is not safe for concurrent use.
type Model struct {
	currentHealth float64
	maximumHealth float64
	level         uint32
	name          string
	changed       notify.Signal
}

// CurrentHealth returns the current health
func (m *Model) CurrentHealth() float64 {
	return m.currentHealth
}

// MaximumHealth returns the maximum health
func (m *Model) MaximumHealth() float64 {
	return m.maximumHealth
}

// Level returns the player level
func (m *Model) Level() uint32 {
	return m.level
}

// Name returns the player name
func (m *Model) Name() string {
	return m.name
}

// IsAlive returns true while current health is above zero
func (m *Model) IsAlive() bool {
	return m.currentHealth > 0
}

// HealthPercentage returns current health as a fraction of maximum health
func (m *Model) HealthPercentage() float64 {
	if m.maximumHealth <= 0 {
		return 0
	}
	return m.currentHealth / m.maximumHealth
}

// TakeDamage reduces current health, never below zero. Negative and NaN amounts are ignored.
func (m *Model) TakeDamage(amount float64) {
	if !(amount >= 0) {
		return
	}
	m.currentHealth = math.Max(0, m.currentHealth-amount)
	notify.Fire(&m.changed)
}

// Heal restores current health, never above maximum health. Negative and NaN amounts are ignored.
func (m *Model) Heal(amount float64) {
	if !(amount >= 0) {
		return
	}
	m.currentHealth = math.Min(m.maximumHealth, m.currentHealth+amount)
	notify.Fire(&m.changed)
}

// LevelUp advances the level, grows maximum health and fully heals
func (m *Model) LevelUp() {
	m.level++
	m.maximumHealth *= LevelUpHealthMultiplier
	m.currentHealth = m.maximumHealth
	notify.Fire(&m.changed)
}

// Subscribe registers a handler invoked after every stats change
func (m *Model) Subscribe(handler func()) notify.Subscription {
	if handler == nil {
		return 0
	}
	return m.changed.Subscribe(func(struct{}) { handler() })
}

// Unsubscribe removes a stats change handler
func (m *Model) Unsubscribe(s notify.Subscription) bool {
	return m.changed.Unsubscribe(s)
}

// Observers returns the number of registered stats change handlers
func (m *Model) Observers() int {
	return m.changed.Len()
}

// MaximumHealthForLevel returns the maximum health reached by levelling up from
// level 1 to the given level starting at base
func MaximumHealthForLevel(base float64, level uint32) float64 {
	if level <= 1 {
		return base
	}
	return base * math.Pow(LevelUpHealthMultiplier, float64(level-1))
}
