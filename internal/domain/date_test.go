package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "canonical passes through", input: "2025-03-10", want: "2025-03-10"},
		{name: "surrounding spaces", input: " 2025-03-10 ", want: "2025-03-10"},
		{name: "utc timestamp shifts into local day", input: "2025-03-09T18:30:00Z", want: "2025-03-10"},
		{name: "offset timestamp", input: "2025-03-10T09:00:00+07:00", want: "2025-03-10"},
		{name: "local timestamp without zone", input: "2025-03-10 23:59:00", want: "2025-03-10"},
		{name: "invalid", input: "10/03/2025", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.input, loc)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := NormalizeDate(got, loc)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}
