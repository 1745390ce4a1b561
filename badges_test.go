package tmi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBadgeList(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want []Badge
	}{
		{"empty", "", nil},
		{"single", "subscriber/12", []Badge{{Name: "subscriber", Version: "12"}}},
		{
			"multiple",
			"broadcaster/1,premium/1",
			[]Badge{{Name: "broadcaster", Version: "1"}, {Name: "premium", Version: "1"}},
		},
		{
			"entry missing slash is skipped",
			"broadcaster/1,malformed,premium/1",
			[]Badge{{Name: "broadcaster", Version: "1"}, {Name: "premium", Version: "1"}},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, parseBadgeList(tc.in))
		})
	}
}

func TestMergeBadges(t *testing.T) {
	t.Parallel()

	badges := []Badge{{Name: "subscriber", Version: "12"}, {Name: "vip", Version: "1"}}
	badgeInfo := []Badge{{Name: "subscriber", Version: "27"}}

	got := mergeBadges(badges, badgeInfo)
	want := []BadgeData{
		{Name: "subscriber", Version: "12", Extra: "27"},
		{Name: "vip", Version: "1", Extra: ""},
	}
	assert.Equal(t, want, got)
}

func TestSubscriberMonths(t *testing.T) {
	t.Parallel()

	t.Run("present and numeric", func(t *testing.T) {
		t.Parallel()
		badges := []BadgeData{{Name: "subscriber", Version: "12", Extra: "27"}}
		months, ok := SubscriberMonths(badges)
		assert.True(t, ok)
		assert.Equal(t, 27, months)
	})

	t.Run("no subscriber badge", func(t *testing.T) {
		t.Parallel()
		badges := []BadgeData{{Name: "vip", Version: "1"}}
		_, ok := SubscriberMonths(badges)
		assert.False(t, ok)
	})

	t.Run("subscriber badge with no extra", func(t *testing.T) {
		t.Parallel()
		badges := []BadgeData{{Name: "subscriber", Version: "0"}}
		_, ok := SubscriberMonths(badges)
		assert.False(t, ok)
	})
}
