package character

import (
	"testing"
)

func TestNewModel(t *testing.T) {
	tests := []struct {
		name      string
		id        uint32
		worldId   byte
		charName  string
		level     uint32
		wantLevel uint32
	}{
		{
			name:      "creates_model_with_valid_parameters",
			id:        123,
			worldId:   1,
			charName:  "TestChar",
			level:     50,
			wantLevel: 50,
		},
		{
			name:      "creates_model_with_empty_name",
			id:        456,
			worldId:   0,
			charName:  "",
			level:     1,
			wantLevel: 1,
		},
		{
			name:      "zero_level_reads_as_one",
			id:        789,
			worldId:   2,
			charName:  "Fresh",
			level:     0,
			wantLevel: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := NewModel(tt.id, tt.worldId, tt.charName, tt.level)

			if model.Id() != tt.id {
				t.Errorf("Id() = %v, want %v", model.Id(), tt.id)
			}

			if model.WorldId() != tt.worldId {
				t.Errorf("WorldId() = %v, want %v", model.WorldId(), tt.worldId)
			}

			if model.Name() != tt.charName {
				t.Errorf("Name() = %v, want %v", model.Name(), tt.charName)
			}

			if model.Level() != tt.wantLevel {
				t.Errorf("Level() = %v, want %v", model.Level(), tt.wantLevel)
			}
		})
	}
}
