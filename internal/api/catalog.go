package api

import (
	"context"
	"net/url"
	"strconv"
)

// Brands lists every brand in the catalog.
func (c *Client) Brands(ctx context.Context) ([]Brand, error) {
	var brands []Brand
	if err := c.get(ctx, apiPrefix+"/brands", nil, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

// Styles lists every style tag.
func (c *Client) Styles(ctx context.Context) ([]Style, error) {
	var styles []Style
	if err := c.get(ctx, apiPrefix+"/styles", nil, &styles); err != nil {
		return nil, err
	}
	return styles, nil
}

// Categories lists every product category.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.get(ctx, apiPrefix+"/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// SearchParams narrows a product search. Zero values are omitted so the
// backend's own defaults apply.
type SearchParams struct {
	Query    string
	Category string
	Brand    string
	Style    string
	Limit    int
	Offset   int
}

// SearchProducts queries the product search endpoint.
func (c *Client) SearchProducts(ctx context.Context, params SearchParams) ([]Product, error) {
	query := url.Values{}
	if params.Query != "" {
		query.Set("query", params.Query)
	}
	if params.Category != "" {
		query.Set("category", params.Category)
	}
	if params.Brand != "" {
		query.Set("brand", params.Brand)
	}
	if params.Style != "" {
		query.Set("style", params.Style)
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		query.Set("offset", strconv.Itoa(params.Offset))
	}

	var products []Product
	if err := c.get(ctx, apiPrefix+"/products/search", query, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Recommendations returns the personalized product feed.
func (c *Client) Recommendations(ctx context.Context, limit int) ([]Product, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var products []Product
	if err := c.get(ctx, apiPrefix+"/recommendations/for_user", query, &products); err != nil {
		return nil, err
	}
	return products, nil
}
