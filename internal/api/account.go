package api

import "context"

// Profile fetches the authenticated user's profile, including the favorite
// brands and styles that seed the preference pickers.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.get(ctx, apiPrefix+"/user/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ReplaceFavoriteBrands replaces the user's favorite brand set wholesale.
// The backend deletes the old associations and writes the new list, so the
// caller always sends the complete selection, never a delta.
func (c *Client) ReplaceFavoriteBrands(ctx context.Context, brandIDs []int) error {
	body := struct {
		BrandIDs []int `json:"brand_ids"`
	}{BrandIDs: brandIDs}
	if body.BrandIDs == nil {
		body.BrandIDs = []int{}
	}
	return c.post(ctx, apiPrefix+"/user/brands", body, nil)
}

// ReplaceFavoriteStyles replaces the user's favorite style set wholesale.
func (c *Client) ReplaceFavoriteStyles(ctx context.Context, styleIDs []string) error {
	body := struct {
		StyleIDs []string `json:"style_ids"`
	}{StyleIDs: styleIDs}
	if body.StyleIDs == nil {
		body.StyleIDs = []string{}
	}
	return c.post(ctx, apiPrefix+"/user/styles", body, nil)
}

// Orders lists the user's orders, newest first as the backend returns them.
func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.get(ctx, apiPrefix+"/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
