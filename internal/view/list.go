// Package view holds the state behind the management screens: the loaded
// collection, the search box, the paginator and the create dialog. Every
// mutation is followed by a full reload, nothing is patched locally.
package view

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/roadsaver-dev/account-manager/backend/internal/notify"
)

var (
	ErrInvalidPageSize = errors.New("unsupported page size")
	ErrInvalidPage     = errors.New("page must not be negative")
	ErrIncomplete      = errors.New("required fields are missing")
)

var PageSizes = []int{5, 10, 25}

const DefaultPageSize = 10

type Searchable interface {
	SearchFields() []string
}

type Loader[T any] func(ctx context.Context) ([]T, error)

type Page[T any] struct {
	Items     []T    `json:"items"`
	Total     int    `json:"total"`
	Page      int    `json:"page"`
	PageSize  int    `json:"pageSize"`
	PageSizes []int  `json:"pageSizes"`
	Search    string `json:"search"`
}

type List[T Searchable] struct {
	name         string
	load         Loader[T]
	notifier     notify.Notifier
	loadFailedID string

	items    []T
	search   string
	page     int
	pageSize int
	fetched  bool
}

func NewList[T Searchable](name string, load Loader[T], n notify.Notifier, loadFailedID string) *List[T] {
	return &List[T]{
		name:         name,
		load:         load,
		notifier:     n,
		loadFailedID: loadFailedID,
		items:        []T{},
		pageSize:     DefaultPageSize,
	}
}

// Load replaces the collection. On failure the previous collection stays and a
// single notification is raised.
func (l *List[T]) Load(ctx context.Context) error {
	l.fetched = true
	items, err := l.load(ctx)
	if err != nil {
		slog.Error("failed to load collection", "view", l.name, "error", err)
		l.notifier.Notify(notify.Failure(l.loadFailedID, nil))
		return err
	}
	if items == nil {
		items = []T{}
	}
	l.items = items
	return nil
}

func (l *List[T]) Items() []T {
	return l.items
}

// Fetched reports whether a load was ever attempted, successful or not.
func (l *List[T]) Fetched() bool {
	return l.fetched
}

// SetSearch goes back to the first page when the term changes.
func (l *List[T]) SetSearch(term string) {
	if term == l.search {
		return
	}
	l.search = term
	l.page = 0
}

func (l *List[T]) Filtered() []T {
	term := strings.ToLower(l.search)
	if term == "" {
		return l.items
	}

	out := make([]T, 0, len(l.items))
	for _, item := range l.items {
		for _, field := range item.SearchFields() {
			if field != "" && strings.Contains(strings.ToLower(field), term) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

func (l *List[T]) SetPage(page int) error {
	if page < 0 {
		return ErrInvalidPage
	}
	l.page = page
	return nil
}

func (l *List[T]) PageSize() int {
	return l.pageSize
}

// SetPageSize goes back to the first page.
func (l *List[T]) SetPageSize(size int) error {
	if !slices.Contains(PageSizes, size) {
		return ErrInvalidPageSize
	}
	l.pageSize = size
	l.page = 0
	return nil
}

func (l *List[T]) Page() Page[T] {
	filtered := l.Filtered()

	start := l.page * l.pageSize
	end := start + l.pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page[T]{
		Items:     filtered[start:end],
		Total:     len(filtered),
		Page:      l.page,
		PageSize:  l.pageSize,
		PageSizes: PageSizes,
		Search:    l.search,
	}
}

// CreateDialog is the state of a create form: whether it is shown and what
// has been typed into it so far.
type CreateDialog[F any] struct {
	Open  bool `json:"open"`
	Draft F    `json:"draft"`
}
