package query

import (
	"sync"

	"github.com/chen-yiru/Vocabulary-review/internal/models"
)

// Pager holds the filter and pagination state of one list view.
// Changing the filter or the page size sends the view back to page 1;
// changing the page alone keeps the size.
type Pager struct {
	mu     sync.Mutex
	filter models.FilterSpec
	page   int
	size   int
}

func NewPager(size int) *Pager {
	if size <= 0 {
		size = models.DefaultPageSize
	}
	return &Pager{
		page: 1,
		size: size,
	}
}

// UpdateFilters applies fn to a copy of the current filter and resets the page.
func (p *Pager) UpdateFilters(fn func(f *models.FilterSpec)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	f := p.filter.Clone()
	fn(&f)
	p.filter = f
	p.page = 1
}

func (p *Pager) ResetFilters() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.filter = models.FilterSpec{}
	p.page = 1
}

func (p *Pager) SetPage(page int) {
	if page < 1 {
		page = 1
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.page = page
}

func (p *Pager) SetSize(size int) {
	if size <= 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.size = size
	p.page = 1
}

func (p *Pager) Filters() models.FilterSpec {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filter.Clone()
}

func (p *Pager) Page() models.PageSpec {
	p.mu.Lock()
	defer p.mu.Unlock()
	return models.PageSpec{Page: p.page, Size: p.size}
}

// Query composes the current state.
func (p *Pager) Query() Query {
	p.mu.Lock()
	defer p.mu.Unlock()
	page := models.PageSpec{Page: p.page, Size: p.size}
	return Compose(p.filter, &page)
}
