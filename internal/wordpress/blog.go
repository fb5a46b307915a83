package wordpress

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/manevdusko/fitbody-sub000/internal/domain"
)

// PostQuery narrows a blog listing request.
type PostQuery struct {
	Page     int
	PerPage  int
	Category string
	Lang     string
}

func (q PostQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	return langQuery(v, q.Lang)
}

func (c *Client) ListPosts(ctx context.Context, q PostQuery) ([]domain.Post, error) {
	var wire []wirePost
	if err := c.get(ctx, fitbodyPath+"/blog/posts", q.values(), &wire); err != nil {
		return nil, err
	}
	posts := make([]domain.Post, len(wire))
	for i, p := range wire {
		posts[i] = toPost(p)
	}
	return posts, nil
}

func (c *Client) GetPostBySlug(ctx context.Context, slug, lang string) (*domain.Post, error) {
	var wire wirePost
	if err := c.get(ctx, fitbodyPath+"/blog/posts/"+url.PathEscape(slug), langQuery(nil, lang), &wire); err != nil {
		return nil, err
	}
	p := toPost(wire)
	return &p, nil
}

func (c *Client) ListBlogCategories(ctx context.Context, lang string) ([]domain.Category, error) {
	var wire []wireCategory
	if err := c.get(ctx, fitbodyPath+"/blog/categories", langQuery(nil, lang), &wire); err != nil {
		return nil, err
	}
	categories := make([]domain.Category, len(wire))
	for i, cat := range wire {
		categories[i] = toCategory(cat)
	}
	return categories, nil
}

func toPost(w wirePost) domain.Post {
	p := domain.Post{
		ID:      w.ID,
		Slug:    w.Slug,
		Title:   w.Title,
		Excerpt: w.Excerpt,
		Content: w.Content,
	}
	if w.Image != nil {
		p.Image = &domain.Image{Src: w.Image.Src, Alt: w.Image.Alt}
	}
	for _, c := range w.Categories {
		p.Categories = append(p.Categories, toCategory(c))
	}
	if t, err := time.Parse(time.RFC3339, w.Date); err == nil {
		p.Published = t
	}
	return p
}
