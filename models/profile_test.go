package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBirthData_ToChartParams(t *testing.T) {
	tests := []struct {
		name    string
		in      BirthData
		want    ChartParams
		wantErr bool
	}{
		{
			name: "valid",
			in:   BirthData{Date: "1990-05-15", Time: "10:30", Latitude: 28.6139, Longitude: 77.209},
			want: ChartParams{Year: 1990, Month: 5, Day: 15, Hour: 10, Minute: 30, Latitude: 28.6139, Longitude: 77.209},
		},
		{
			name: "seconds are ignored",
			in:   BirthData{Date: "2001-12-01", Time: "23:59:10"},
			want: ChartParams{Year: 2001, Month: 12, Day: 1, Hour: 23, Minute: 59},
		},
		{name: "bad date", in: BirthData{Date: "15/05/1990", Time: "10:30"}, wantErr: true},
		{name: "bad time", in: BirthData{Date: "1990-05-15", Time: "1030"}, wantErr: true},
		{name: "hour out of range", in: BirthData{Date: "1990-05-15", Time: "24:00"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.ToChartParams()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidBirthData)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfile_Merge(t *testing.T) {
	p := Profile{Name: "Asha", Gender: "female"}
	p.Merge(Profile{
		Profession: "architect",
		BirthData:  &BirthData{Date: "1990-01-01", Time: "06:00"},
		ChartData:  json.RawMessage(`{"D1":{}}`),
	})

	assert.Equal(t, "Asha", p.Name)
	assert.Equal(t, "female", p.Gender)
	assert.Equal(t, "architect", p.Profession)
	require.NotNil(t, p.BirthData)
	assert.Equal(t, "1990-01-01", p.BirthData.Date)
	assert.JSONEq(t, `{"D1":{}}`, string(p.ChartData))
	assert.False(t, p.IsEmpty())
	assert.True(t, Profile{}.IsEmpty())
}
