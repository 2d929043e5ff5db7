package game

import (
	"context"
	"testing"

	"atlas-stats/character"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useMockTracer(t *testing.T) *mocktracer.MockTracer {
	t.Helper()
	previous := opentracing.GlobalTracer()
	tracer := mocktracer.New()
	opentracing.SetGlobalTracer(tracer)
	t.Cleanup(func() { opentracing.SetGlobalTracer(previous) })
	return tracer
}

func TestController_Commands(t *testing.T) {
	m := newTestMode(t)
	ctrl, err := m.Login(character.NewModel(1, 0, "Hero", 1))
	require.NoError(t, err)
	ctx := context.Background()
	vm := ctrl.ViewModel()

	ctrl.TakeDamage(ctx, 30)
	assert.Equal(t, 70.0, vm.Health())
	assert.Equal(t, "70 / 100", vm.FormattedHealthText())

	ctrl.Heal(ctx, 200)
	assert.Equal(t, 100.0, vm.Health())

	ctrl.TakeDamage(ctx, 90)
	ctrl.LevelUp(ctx)
	assert.Equal(t, uint32(2), vm.Level())
	assert.InDelta(t, 110.0, vm.MaxHealth(), 1e-9)
	assert.InDelta(t, 110.0, vm.Health(), 1e-9)

	model := ctrl.Session().Model()
	assert.Equal(t, model.CurrentHealth(), vm.Health())
	assert.Equal(t, model.MaximumHealth(), vm.MaxHealth())
}

func TestController_CommandSpans(t *testing.T) {
	tracer := useMockTracer(t)
	m := newTestMode(t)
	ctrl, err := m.Login(character.NewModel(1, 0, "Hero", 1))
	require.NoError(t, err)

	parent := tracer.StartSpan("input")
	ctx := opentracing.ContextWithSpan(context.Background(), parent)

	ctrl.TakeDamage(ctx, 12.5)
	ctrl.Heal(ctx, 2)
	ctrl.LevelUp(ctx)
	parent.Finish()

	spans := tracer.FinishedSpans()
	require.Len(t, spans, 4)

	expected := []string{"stats.take_damage", "stats.heal", "stats.level_up"}
	for i, name := range expected {
		assert.Equal(t, name, spans[i].OperationName)
		assert.Equal(t, ctrl.Session().Id().String(), spans[i].Tag("session.id"))
		assert.Equal(t, parent.(*mocktracer.MockSpan).SpanContext.SpanID, spans[i].ParentID)
	}
	assert.Equal(t, 12.5, spans[0].Tag("amount"))
	assert.Equal(t, 2.0, spans[1].Tag("amount"))
	assert.Nil(t, spans[2].Tag("amount"))
}

func TestController_EndPlayStopsForwarding(t *testing.T) {
	m := newTestMode(t)
	ctrl, err := m.Login(character.NewModel(1, 0, "Hero", 1))
	require.NoError(t, err)

	ctrl.EndPlay()
	ctrl.TakeDamage(context.Background(), 40)

	assert.Equal(t, 100.0, ctrl.Session().Model().CurrentHealth())
	assert.Equal(t, 100.0, ctrl.ViewModel().Health())
}

func TestController_BeginPlayRebinds(t *testing.T) {
	m := newTestMode(t)
	ctrl, err := m.Login(character.NewModel(1, 0, "Hero", 1))
	require.NoError(t, err)

	ctrl.BeginPlay()

	assert.Equal(t, 1, ctrl.Session().Model().Observers())
}
