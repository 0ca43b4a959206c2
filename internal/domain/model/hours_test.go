package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in   string
		want Weekday
		ok   bool
	}{
		{"Monday", Monday, true},
		{"monday", Monday, true},
		{"TUE", Tuesday, true},
		{" Sunday ", Sunday, true},
		{"sat", Saturday, true},
		{"Mo", 0, false},
		{"Funday", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseWeekday(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestWeekday_Names(t *testing.T) {
	assert.Equal(t, "Wednesday", Wednesday.String())
	assert.Equal(t, "Wed", Wednesday.Abbrev())
	assert.Equal(t, "Weekday(9)", Weekday(9).String())
	assert.False(t, Weekday(-1).Valid())
}

func TestWeeklyHours_JSONUsesDayNames(t *testing.T) {
	hours := WeeklyHours{Monday: "9:00 AM - 5:00 PM", Saturday: "10:00 AM - 2:00 PM"}

	data, err := json.Marshal(hours)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Monday":"9:00 AM - 5:00 PM","Saturday":"10:00 AM - 2:00 PM"}`, string(data))

	var decoded WeeklyHours
	require.NoError(t, json.Unmarshal([]byte(`{"fri":"10:00 AM - 2:00 AM","Sunday":"noon"}`), &decoded))
	assert.Equal(t, WeeklyHours{Friday: "10:00 AM - 2:00 AM", Sunday: "noon"}, decoded)

	assert.Error(t, json.Unmarshal([]byte(`{"Someday":"x"}`), &decoded))
}

func TestWeeklyHours_Clone(t *testing.T) {
	orig := WeeklyHours{Monday: "a"}
	c := orig.Clone()
	c[Tuesday] = "b"

	assert.Len(t, orig, 1)
	assert.Nil(t, WeeklyHours(nil).Clone())
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "9:00 AM", want: TimeOfDay{Hour: 9, Minute: 0}},
		{in: "11:30 pm", want: TimeOfDay{Hour: 11, Minute: 30, PM: true}},
		{in: "12:00 AM", want: TimeOfDay{Hour: 12}},
		{in: "8:15PM", want: TimeOfDay{Hour: 8, Minute: 15, PM: true}},
		{in: "9:00", wantErr: true},
		{in: "13:00 PM", wantErr: true},
		{in: "0:30 AM", wantErr: true},
		{in: "9:5 AM", wantErr: true},
		{in: "9:60 AM", wantErr: true},
		{in: "nine AM", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay_ClosingMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"8:00 PM", 20 * 60},
		{"11:00 PM", 23 * 60},
		{"12:00 PM", 12 * 60},
		{"12:00 AM", 24 * 60},
		{"2:00 AM", 26 * 60},
		{"5:59 AM", 29*60 + 59},
		{"6:00 AM", 6 * 60},
		{"10:30 AM", 10*60 + 30},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tod, err := ParseTimeOfDay(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tod.ClosingMinutes())
			assert.Equal(t, tt.in, tod.String())
		})
	}
}

func TestParseHoursRange(t *testing.T) {
	open, closing, err := ParseHoursRange("10:00 AM - 2:00 AM")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 10}, open)
	assert.Equal(t, TimeOfDay{Hour: 2}, closing)

	_, _, err = ParseHoursRange("Closed")
	assert.Error(t, err)

	_, _, err = ParseHoursRange("10:00 AM - late")
	assert.Error(t, err)
}
