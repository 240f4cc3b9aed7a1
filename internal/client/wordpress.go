package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Xalpha19/chaitravm/internal/core/domain"
)

const wordPressBaseURL = "https://public-api.wordpress.com/rest/v1.1"

// WordPressClient reads post summaries from the WordPress.com public API.
// Read-only; only the fields the site displays are requested.
type WordPressClient struct {
	site       string
	baseURL    string
	httpClient *http.Client
}

func NewWordPressClient(site string) *WordPressClient {
	return &WordPressClient{
		site:    site,
		baseURL: wordPressBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type wordPressPost struct {
	ID      int       `json:"ID"`
	Title   string    `json:"title"`
	Excerpt string    `json:"excerpt"`
	Date    time.Time `json:"date"`
	URL     string    `json:"URL"`
	Author  struct {
		Name string `json:"name"`
	} `json:"author"`
}

type wordPressResponse struct {
	Found int             `json:"found"`
	Posts []wordPressPost `json:"posts"`
}

func (c *WordPressClient) LatestPosts(ctx context.Context, count int) ([]domain.BlogPost, error) {
	endpoint := c.baseURL + "/sites/" + c.site + "/posts/?number=" + strconv.Itoa(count) +
		"&fields=ID,title,excerpt,date,URL,author"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	var feed wordPressResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}

	posts := make([]domain.BlogPost, 0, len(feed.Posts))
	for _, p := range feed.Posts {
		posts = append(posts, domain.BlogPost{
			ID:      p.ID,
			Title:   p.Title,
			Excerpt: p.Excerpt,
			Date:    p.Date,
			Link:    p.URL,
			Author:  p.Author.Name,
		})
	}

	return posts, nil
}
