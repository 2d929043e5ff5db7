package character

// Model is the identity a player logs in with
type Model struct {
	id      uint32
	worldId byte
	name    string
	level   uint32
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) WorldId() byte {
	return m.worldId
}

func (m Model) Name() string {
	return m.name
}

// Level returns the character level, never below 1
func (m Model) Level() uint32 {
	if m.level < 1 {
		return 1
	}
	return m.level
}

// NewModel creates a character identity
func NewModel(id uint32, worldId byte, name string, level uint32) Model {
	return Model{
		id:      id,
		worldId: worldId,
		name:    name,
		level:   level,
	}
}
