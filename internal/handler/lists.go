package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/roadsaver-dev/account-manager/backend/internal/view"
)

var errInvalidQuery = errors.New("page and pageSize must be numbers")

// applyListQuery applies the search and pagination query parameters. The
// page size goes first since changing it resets the page.
func applyListQuery[T view.Searchable](l *view.List[T], r *http.Request) error {
	q := r.URL.Query()

	if q.Has("search") {
		l.SetSearch(q.Get("search"))
	}
	if q.Has("pageSize") {
		size, err := strconv.Atoi(q.Get("pageSize"))
		if err != nil {
			return errInvalidQuery
		}
		if size != l.PageSize() {
			if err := l.SetPageSize(size); err != nil {
				return err
			}
		}
	}
	if q.Has("page") {
		page, err := strconv.Atoi(q.Get("page"))
		if err != nil {
			return errInvalidQuery
		}
		if err := l.SetPage(page); err != nil {
			return err
		}
	}
	return nil
}

// fetchList loads the collection the first time the view is listed, or when
// the client asks with refresh=true. Paging and search work on the collection
// already loaded.
func fetchList[T view.Searchable](l *view.List[T], r *http.Request) error {
	if l.Fetched() && r.URL.Query().Get("refresh") != "true" {
		return nil
	}
	return l.Load(r.Context())
}

type ListResult[T any, F any] struct {
	Page         view.Page[T]         `json:"page"`
	CreateDialog view.CreateDialog[F] `json:"createDialog"`
	Stats        any                  `json:"stats,omitempty"`
}
