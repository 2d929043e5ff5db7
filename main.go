package main

import (
	"context"

	"atlas-stats/character"
	"atlas-stats/game"
	"atlas-stats/logger"
	"atlas-stats/tracing"
	"atlas-stats/viewmodel"
	"github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
)

const serviceName = "atlas-stats"

// step is a single scripted player input
type step struct {
	name  string
	apply func(ctx context.Context, c *game.Controller)
}

var script = []step{
	{"take_damage", func(ctx context.Context, c *game.Controller) { c.TakeDamage(ctx, 30) }},
	{"heal", func(ctx context.Context, c *game.Controller) { c.Heal(ctx, 200) }},
	{"negative_damage", func(ctx context.Context, c *game.Controller) { c.TakeDamage(ctx, -5) }},
	{"take_damage", func(ctx context.Context, c *game.Controller) { c.TakeDamage(ctx, 90) }},
	{"level_up", func(ctx context.Context, c *game.Controller) { c.LevelUp(ctx) }},
}

func main() {
	l := logger.CreateLogger(serviceName)
	l.Infoln("Starting main service.")

	tc, err := tracing.InitTracer(l)(serviceName)
	if err != nil {
		l.WithError(err).Fatal("Unable to initialize tracer.")
	}
	defer tracing.Teardown(l)(tc)()

	t, err := tenant.Create(uuid.New(), "GMS", 83, 1)
	if err != nil {
		l.WithError(err).Fatal("Unable to create tenant.")
	}
	ctx := tenant.WithContext(context.Background(), t)

	mode := game.NewMode(l, ctx)
	defer mode.Shutdown()

	ctrl, err := mode.Login(character.NewModel(1, 0, "", 1))
	if err != nil {
		l.WithError(err).Fatal("Unable to log in character.")
	}
	watch(l, ctrl.ViewModel())

	sl, span := tracing.StartSpan(l, "stats.script")
	sl.WithField("steps", len(script)).Info("Running scripted session.")
	run(opentracing.ContextWithSpan(ctx, span), ctrl, script)
	span.Finish()

	l.Infoln("Service shutdown.")
}

// watch renders every field once, then logs each change the way a bound UI would re-render it
func watch(l logrus.FieldLogger, vm *viewmodel.ViewModel) {
	for _, f := range viewmodel.Fields {
		render(l, vm, f).Info("Field rendered.")
	}
	vm.OnAnyFieldChanged(func(f viewmodel.FieldId) {
		render(l, vm, f).Info("Field changed.")
	})
}

func render(l logrus.FieldLogger, vm *viewmodel.ViewModel, f viewmodel.FieldId) logrus.FieldLogger {
	return l.WithFields(logrus.Fields{
		"field":    f.String(),
		"computed": f.IsComputed(),
		"value":    vm.Value(f),
	})
}

func run(ctx context.Context, c *game.Controller, steps []step) {
	for _, s := range steps {
		s.apply(ctx, c)
	}
}
