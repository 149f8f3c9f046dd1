package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Normalize(t *testing.T) {
	cases := []struct {
		in, want PageRequest
	}{
		{PageRequest{}, PageRequest{Limit: 20}},
		{PageRequest{Limit: 50, Offset: 10}, PageRequest{Limit: 50, Offset: 10}},
		{PageRequest{Limit: 5000}, PageRequest{Limit: 200}},
		{PageRequest{Limit: -1, Offset: -3}, PageRequest{Limit: 20}},
	}
	for _, tc := range cases {
		got := tc.in
		got.Normalize()
		assert.Equal(t, tc.want, got)
	}
}
