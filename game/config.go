package game

import (
	"math"
	"os"
	"strconv"

	"atlas-stats/stats"
	"github.com/sirupsen/logrus"
)

const (
	EnvBaseMaxHealth = "PLAYER_BASE_MAX_HEALTH"
	EnvDefaultName   = "PLAYER_DEFAULT_NAME"
)

// Defaults seed the stats of newly opened sessions
type Defaults struct {
	BaseMaxHealth float64
	Name          string
}

// DefaultsFromEnv reads session defaults from the environment, falling back to the stats defaults
func DefaultsFromEnv(l logrus.FieldLogger) Defaults {
	d := Defaults{
		BaseMaxHealth: stats.DefaultHealth,
		Name:          stats.DefaultName,
	}

	if val, ok := os.LookupEnv(EnvBaseMaxHealth); ok {
		health, err := strconv.ParseFloat(val, 64)
		if err != nil || !(health > 0) || math.IsInf(health, 0) {
			l.WithField(EnvBaseMaxHealth, val).Warn("Invalid base maximum health, using default.")
		} else {
			d.BaseMaxHealth = health
		}
	}

	if val, ok := os.LookupEnv(EnvDefaultName); ok && val != "" {
		d.Name = val
	}

	return d
}
