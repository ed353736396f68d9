//go:build unit

package queries_test

import (
	"testing"

	"gearshare/internal/pkg/config"
	"gearshare/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
)

func TestNewPageLimits(t *testing.T) {
	cfg := config.Config{Paging: config.PagingConfig{DefaultSize: 5, MaxSize: 50}}

	limits := queries.NewPageLimits(cfg)

	assert.Equal(t, queries.PageLimits{DefaultSize: 5, MaxSize: 50}, limits)
}

func TestPageLimitsNormalize(t *testing.T) {
	limits := queries.PageLimits{DefaultSize: 5, MaxSize: 50}

	tests := []struct {
		name string
		in   queries.Page
		want queries.Page
	}{
		{name: "zero limit takes the configured default", in: queries.Page{}, want: queries.Page{Limit: 5}},
		{name: "negative limit takes the configured default", in: queries.Page{Limit: -1}, want: queries.Page{Limit: 5}},
		{name: "oversized limit is clamped to the configured max", in: queries.Page{Limit: 51}, want: queries.Page{Limit: 50}},
		{name: "negative offset is floored", in: queries.Page{Offset: -3, Limit: 10}, want: queries.Page{Offset: 0, Limit: 10}},
		{name: "in-range page is untouched", in: queries.Page{Offset: 20, Limit: 50}, want: queries.Page{Offset: 20, Limit: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, limits.Normalize(tt.in))
		})
	}
}
