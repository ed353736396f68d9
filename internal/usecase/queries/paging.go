package queries

import "gearshare/internal/pkg/config"

// PageLimits carries the paging bounds from configuration into the read side,
// so PAGE_DEFAULT_SIZE / PAGE_MAX_SIZE actually govern listings.
type PageLimits struct {
	DefaultSize int32
	MaxSize     int32
}

func NewPageLimits(cfg config.Config) PageLimits {
	return PageLimits{
		DefaultSize: int32(cfg.Paging.DefaultSize),
		MaxSize:     int32(cfg.Paging.MaxSize),
	}
}

// Normalize clamps limit into [1, MaxSize] and floors a negative offset to
// zero.
func (l PageLimits) Normalize(p Page) Page {
	if p.Limit <= 0 {
		p.Limit = l.DefaultSize
	}
	if p.Limit > l.MaxSize {
		p.Limit = l.MaxSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
