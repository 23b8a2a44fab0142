package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nouss/hackaton-leaderboard/internal/repository"
	"github.com/nouss/hackaton-leaderboard/pkg/config"
)

// sortableColumns whitelists the columns a client may sort by. Anything
// else falls back to the identifier.
var sortableColumns = map[string]bool{
	"id":         true,
	"name":       true,
	"points":     true,
	"created_at": true,
	"updated_at": true,
}

// parsePageable reads page/size/sort query parameters with defaults and
// clamps the page size to the configured maximum.
func parsePageable(c *gin.Context, cfg *config.Config) repository.Pageable {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(cfg.DefaultPageSize)))
	if err != nil || size < 1 {
		size = cfg.DefaultPageSize
	}
	if size > cfg.MaxPageSize {
		size = cfg.MaxPageSize
	}

	sort := "id"
	ascending := true
	if sortParam := c.Query("sort"); sortParam != "" {
		parts := strings.SplitN(sortParam, ",", 2)
		if sortableColumns[parts[0]] {
			sort = parts[0]
		}
		if len(parts) == 2 && strings.EqualFold(parts[1], "desc") {
			ascending = false
		}
	}

	return repository.Pageable{
		Page:      page,
		Size:      size,
		Sort:      sort,
		Ascending: ascending,
	}
}

// setPaginationHeaders writes the total count plus RFC 5988 Link relations
// for the surrounding pages of the result window.
func setPaginationHeaders(c *gin.Context, page *repository.Page, baseURL string) {
	c.Header("X-Total-Count", strconv.Itoa(page.TotalCount))

	totalPages := 0
	if page.Size > 0 {
		totalPages = (page.TotalCount + page.Size - 1) / page.Size
	}
	lastPage := totalPages - 1
	if lastPage < 0 {
		lastPage = 0
	}

	links := make([]string, 0, 4)
	if page.Number < lastPage {
		links = append(links, pageLink(baseURL, page.Number+1, page.Size, "next"))
	}
	if page.Number > 0 {
		links = append(links, pageLink(baseURL, page.Number-1, page.Size, "prev"))
	}
	links = append(links,
		pageLink(baseURL, lastPage, page.Size, "last"),
		pageLink(baseURL, 0, page.Size, "first"),
	)

	c.Header("Link", strings.Join(links, ","))
}

func pageLink(baseURL string, page, size int, rel string) string {
	return fmt.Sprintf("<%s?page=%d&size=%d>; rel=\"%s\"", baseURL, page, size, rel)
}
