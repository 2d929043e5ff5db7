package game

import (
	"context"

	"atlas-stats/session"
	"atlas-stats/tracing"
	"atlas-stats/viewmodel"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
)

// Controller bridges a player's input to the stats view-model of their session
type Controller struct {
	l         logrus.FieldLogger
	session   *session.Session
	viewModel *viewmodel.ViewModel
}

// NewController creates a controller owning a fresh view-model for the session
func NewController(s *session.Session) *Controller {
	cl := s.Logger()
	return &Controller{
		l:         cl,
		session:   s,
		viewModel: viewmodel.New(cl),
	}
}

// BeginPlay binds the view-model to the session's stats and releases it when the session ends
func (c *Controller) BeginPlay() {
	c.viewModel.Initialize(c.session.Model())
	c.session.TeardownFunc(c.EndPlay)
	c.l.Debug("Player controller began play.")
}

// EndPlay releases the view-model
func (c *Controller) EndPlay() {
	c.viewModel.Release()
	c.l.Debug("Player controller ended play.")
}

func (c *Controller) Session() *session.Session {
	return c.session
}

func (c *Controller) ViewModel() *viewmodel.ViewModel {
	return c.viewModel
}

func (c *Controller) TakeDamage(ctx context.Context, amount float64) {
	sl, span, _ := c.startSpan(ctx, "stats.take_damage", opentracing.Tag{Key: "amount", Value: amount})
	defer span.Finish()

	c.viewModel.ExecuteTakeDamage(amount)
	sl.WithFields(logrus.Fields{
		"amount": amount,
		"health": c.viewModel.Health(),
	}).Debug("Damage applied.")
}

func (c *Controller) Heal(ctx context.Context, amount float64) {
	sl, span, _ := c.startSpan(ctx, "stats.heal", opentracing.Tag{Key: "amount", Value: amount})
	defer span.Finish()

	c.viewModel.ExecuteHeal(amount)
	sl.WithFields(logrus.Fields{
		"amount": amount,
		"health": c.viewModel.Health(),
	}).Debug("Heal applied.")
}

func (c *Controller) LevelUp(ctx context.Context) {
	sl, span, _ := c.startSpan(ctx, "stats.level_up")
	defer span.Finish()

	c.viewModel.ExecuteLevelUp()
	sl.WithFields(logrus.Fields{
		"level":     c.viewModel.Level(),
		"maxHealth": c.viewModel.MaxHealth(),
	}).Debug("Level up applied.")
}

func (c *Controller) startSpan(ctx context.Context, name string, opts ...opentracing.StartSpanOption) (logrus.FieldLogger, opentracing.Span, context.Context) {
	opts = append(opts, opentracing.Tag{Key: "session.id", Value: c.session.Id().String()})
	return tracing.StartSpanFromContext(ctx, c.l, name, opts...)
}
