package viewmodel

import (
	"fmt"

	"atlas-stats/notify"
	"atlas-stats/stats"
	"github.com/sirupsen/logrus"
)

// ViewModel mirrors a stats model into observable fields for the UI layer and
// forwards UI commands to the model. It holds a non-owning reference to at most
// one model at a time. A ViewModel is not safe for concurrent use.
type ViewModel struct {
	l logrus.FieldLogger

	health     notify.Field[float64]
	maxHealth  notify.Field[float64]
	level      notify.Field[uint32]
	playerName notify.Field[string]

	model        *stats.Model
	subscription notify.Subscription

	listeners notify.Multicast[FieldId]
}

// New creates an unbound view-model holding default values
func New(l logrus.FieldLogger) *ViewModel {
	return &ViewModel{
		l:          l,
		health:     notify.NewField(stats.DefaultHealth),
		maxHealth:  notify.NewField(stats.DefaultHealth),
		level:      notify.NewField(stats.DefaultLevel),
		playerName: notify.NewField(stats.DefaultName),
	}
}

// Initialize binds the view-model to a model, detaching from any previously
// bound model first, and syncs immediately. A nil model leaves it unbound.
func (vm *ViewModel) Initialize(model *stats.Model) {
	vm.unbind()

	vm.model = model
	if vm.model == nil {
		return
	}

	vm.subscription = vm.model.Subscribe(vm.onModelStatsChanged)
	vm.l.WithFields(logrus.Fields{
		"playerName": vm.model.Name(),
		"level":      vm.model.Level(),
	}).Debug("View-model bound to stats model")

	vm.syncFromModel()
}

// Release detaches the view-model from its model
func (vm *ViewModel) Release() {
	vm.unbind()
}

func (vm *ViewModel) unbind() {
	if vm.model == nil {
		return
	}
	vm.model.Unsubscribe(vm.subscription)
	vm.l.WithField("playerName", vm.model.Name()).Debug("View-model unbound from stats model")
	vm.model = nil
	vm.subscription = 0
}

// Model returns the bound model, or nil
func (vm *ViewModel) Model() *stats.Model {
	return vm.model
}

// IsBound returns true if a model is bound
func (vm *ViewModel) IsBound() bool {
	return vm.model != nil
}

//----------------------------------------------------------------------
// Observable fields
//----------------------------------------------------------------------

func (vm *ViewModel) Health() float64 {
	return vm.health.Get()
}

func (vm *ViewModel) MaxHealth() float64 {
	return vm.maxHealth.Get()
}

func (vm *ViewModel) Level() uint32 {
	return vm.level.Get()
}

func (vm *ViewModel) PlayerName() string {
	return vm.playerName.Get()
}

func (vm *ViewModel) setHealth(health float64) {
	if vm.health.Set(health) {
		vm.broadcast(FieldHealth)
	}
}

func (vm *ViewModel) setMaxHealth(maxHealth float64) {
	if vm.maxHealth.Set(maxHealth) {
		vm.broadcast(FieldMaxHealth)
	}
}

func (vm *ViewModel) setLevel(level uint32) {
	if vm.level.Set(level) {
		vm.broadcast(FieldLevel)
	}
}

func (vm *ViewModel) setPlayerName(name string) {
	if vm.playerName.Set(name) {
		vm.broadcast(FieldPlayerName)
	}
}

//----------------------------------------------------------------------
// Computed fields
//----------------------------------------------------------------------

// HealthPercentage returns health as a fraction of max health (0.0 to 1.0)
func (vm *ViewModel) HealthPercentage() float64 {
	maxHealth := vm.maxHealth.Get()
	if maxHealth <= 0 {
		return 0
	}
	return vm.health.Get() / maxHealth
}

// FormattedHealthText returns health for display, e.g. "75 / 100"
func (vm *ViewModel) FormattedHealthText() string {
	return fmt.Sprintf("%.0f / %.0f", vm.health.Get(), vm.maxHealth.Get())
}

// IsAlive returns true while health is above zero
func (vm *ViewModel) IsAlive() bool {
	return vm.health.Get() > 0
}

// Value returns the current value of any observable field, or nil for an unknown field
func (vm *ViewModel) Value(field FieldId) interface{} {
	switch field {
	case FieldHealth:
		return vm.Health()
	case FieldMaxHealth:
		return vm.MaxHealth()
	case FieldLevel:
		return vm.Level()
	case FieldPlayerName:
		return vm.PlayerName()
	case FieldHealthPercentage:
		return vm.HealthPercentage()
	case FieldFormattedHealthText:
		return vm.FormattedHealthText()
	case FieldIsAlive:
		return vm.IsAlive()
	default:
		return nil
	}
}

//----------------------------------------------------------------------
// Commands
//----------------------------------------------------------------------

func (vm *ViewModel) ExecuteTakeDamage(amount float64) {
	if vm.model == nil {
		vm.l.WithField("amount", amount).Debug("Ignoring take damage command, no model bound")
		return
	}
	vm.model.TakeDamage(amount)
}

func (vm *ViewModel) ExecuteHeal(amount float64) {
	if vm.model == nil {
		vm.l.WithField("amount", amount).Debug("Ignoring heal command, no model bound")
		return
	}
	vm.model.Heal(amount)
}

func (vm *ViewModel) ExecuteLevelUp() {
	if vm.model == nil {
		vm.l.Debug("Ignoring level up command, no model bound")
		return
	}
	vm.model.LevelUp()
}

//----------------------------------------------------------------------
// Change notification
//----------------------------------------------------------------------

// OnFieldChanged registers a handler invoked whenever the given field changes
func (vm *ViewModel) OnFieldChanged(field FieldId, handler func(FieldId)) notify.Subscription {
	if handler == nil {
		return 0
	}
	return vm.listeners.Subscribe(func(changed FieldId) {
		if changed == field {
			handler(changed)
		}
	})
}

// OnAnyFieldChanged registers a handler invoked whenever any field changes
func (vm *ViewModel) OnAnyFieldChanged(handler func(FieldId)) notify.Subscription {
	if handler == nil {
		return 0
	}
	return vm.listeners.Subscribe(handler)
}

// RemoveFieldChanged removes a handler registered by OnFieldChanged or OnAnyFieldChanged
func (vm *ViewModel) RemoveFieldChanged(s notify.Subscription) bool {
	return vm.listeners.Unsubscribe(s)
}

// broadcast signals a stored field followed by its computed dependents
func (vm *ViewModel) broadcast(field FieldId) {
	vm.listeners.Broadcast(field)
	for _, d := range field.Dependents() {
		vm.listeners.Broadcast(d)
	}
}

//----------------------------------------------------------------------
// Model synchronization
//----------------------------------------------------------------------

func (vm *ViewModel) onModelStatsChanged() {
	vm.syncFromModel()
}

func (vm *ViewModel) syncFromModel() {
	if vm.model == nil {
		return
	}

	vm.setHealth(vm.model.CurrentHealth())
	vm.setMaxHealth(vm.model.MaximumHealth())
	vm.setLevel(vm.model.Level())
	vm.setPlayerName(vm.model.Name())

	vm.l.WithFields(logrus.Fields{
		"health":    vm.Health(),
		"maxHealth": vm.MaxHealth(),
		"level":     vm.Level(),
	}).Debug("View-model synced from stats model")
}
