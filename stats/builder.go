package stats

import (
	"errors"
	"math"
)

const (
	DefaultHealth = 100.0
	DefaultLevel  = uint32(1)
	DefaultName   = "Player"
)

// Builder provides fluent construction of stats models
type Builder struct {
	currentHealth float64
	maximumHealth float64
	level         uint32
	name          string
}

// NewBuilder creates a new builder seeded with default stats
func NewBuilder() *Builder {
	return &Builder{
		currentHealth: DefaultHealth,
		maximumHealth: DefaultHealth,
		level:         DefaultLevel,
		name:          DefaultName,
	}
}

// SetCurrentHealth sets the current health
func (b *Builder) SetCurrentHealth(currentHealth float64) *Builder {
	b.currentHealth = currentHealth
	return b
}

// SetMaximumHealth sets the maximum health
func (b *Builder) SetMaximumHealth(maximumHealth float64) *Builder {
	b.maximumHealth = maximumHealth
	return b
}

// SetLevel sets the player level
func (b *Builder) SetLevel(level uint32) *Builder {
	b.level = level
	return b
}

// SetName sets the player name
func (b *Builder) SetName(name string) *Builder {
	b.name = name
	return b
}

// Build validates and constructs the stats model
func (b *Builder) Build() (*Model, error) {
	if !(b.maximumHealth > 0) || math.IsInf(b.maximumHealth, 0) {
		return nil, errors.New("maximum health must be positive and finite")
	}

	if b.level < 1 {
		return nil, errors.New("level must be at least 1")
	}

	if !(b.currentHealth >= 0) {
		return nil, errors.New("current health must be a non-negative number")
	}

	if b.currentHealth > b.maximumHealth {
		return nil, errors.New("current health cannot exceed maximum health")
	}

	return &Model{
		currentHealth: b.currentHealth,
		maximumHealth: b.maximumHealth,
		level:         b.level,
		name:          b.name,
	}, nil
}
