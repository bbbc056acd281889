package operation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imstevez/blocks-mcp/internal/pkg/apperrors"
)

func TestOperation_BuildPath(t *testing.T) {
	op := Operation{
		Name: "get_token_instance_transfers",
		Path: "tokens/{token_address}/instances/{token_id}/transfers",
		Slots: []Slot{
			{Name: "token_address", Kind: SlotString},
			{Name: "token_id", Kind: SlotNumber},
		},
	}

	tests := []struct {
		name    string
		slots   map[string]string
		want    string
		wantErr bool
	}{
		{
			name:  "all slots present",
			slots: map[string]string{"token_address": "0xdead", "token_id": "42"},
			want:  "tokens/0xdead/instances/42/transfers",
		},
		{
			name:    "missing slot",
			slots:   map[string]string{"token_address": "0xdead"},
			wantErr: true,
		},
		{
			name:    "empty slot value",
			slots:   map[string]string{"token_address": "0xdead", "token_id": ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := op.BuildPath(tt.slots)
			if tt.wantErr {
				require.ErrorIs(t, err, apperrors.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOperation_BuildPath_NoSlots(t *testing.T) {
	op := Operation{Name: "get_chain_stats", Path: "stats"}
	got, err := op.BuildPath(nil)
	require.NoError(t, err)
	assert.Equal(t, "stats", got)
}
