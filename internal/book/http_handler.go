package book

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/logging"
)

// HTTPHandler serves the /api/books endpoints.
type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /api/books
// @Summary List books
// @Description Get every book in catalog order
// @Tags books
// @Produce json
// @Success 200 {object} httpx.ListResponse[catalog.Book]
// @Router /api/books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSONList(w, r, h.service.List())
}

// GetByID handles GET /api/books/{id}
// @Summary Get book by id
// @Description Get a single book. Trailing non-digit characters in the id are ignored.
// @Tags books
// @Produce json
// @Param id path string true "Book id"
// @Success 200 {object} httpx.ItemResponse[catalog.Book]
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/books/{id} [get]
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := ParseID(chi.URLParam(r, "id"))
	if !id.Valid {
		notFound(w, r, id)
		return
	}

	book, err := h.service.Get(id.Value)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			notFound(w, r, id)
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Int("id", id.Value).Msg("get book")
		httpx.JSONError(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.JSONItem(w, r, book)
}

func notFound(w http.ResponseWriter, r *http.Request, id ID) {
	httpx.JSONError(w, r, http.StatusNotFound, fmt.Sprintf("Book with id %s not found", id.Text))
}

// Search handles GET /api/books/search
// @Summary Search books
// @Description Case-insensitive substring search; supplied fragments must all match
// @Tags books
// @Produce json
// @Param title query string false "Title fragment"
// @Param author query string false "Author fragment"
// @Param genre query string false "Genre fragment"
// @Success 200 {object} httpx.ListResponse[catalog.Book]
// @Router /api/books/search [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := QueryFromValues(r.URL.Query())
	httpx.JSONList(w, r, h.service.Search(q))
}
