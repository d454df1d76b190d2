package api

import (
	"time"

	"github.com/polkashop/polka/internal/money"
)

// Brand is a marketplace brand as listed in the public catalog.
type Brand struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
}

// Style is a fashion style tag.
type Style struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Category is a product category ("dresses", "shoes", ...). The ID doubles
// as the search filter value.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProductVariant is one size row of a product.
type ProductVariant struct {
	Size          string `json:"size"`
	StockQuantity int    `json:"stock_quantity"`
}

// Product is a catalog product as the search and recommendation endpoints
// return it.
type Product struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Price             money.Amount     `json:"price"`
	Images            []string         `json:"images"`
	BrandID           int              `json:"brand_id"`
	CategoryID        string           `json:"category_id"`
	Styles            []string         `json:"styles"`
	Variants          []ProductVariant `json:"variants"`
	Description       string           `json:"description"`
	Color             string           `json:"color"`
	Material          string           `json:"material"`
	ArticleNumber     string           `json:"article_number"`
	BrandName         string           `json:"brand_name"`
	ReturnPolicy      string           `json:"return_policy"`
	BrandReturnPolicy string           `json:"brand_return_policy"`
	IsLiked           bool             `json:"is_liked"`
}

// Delivery describes the shipping terms attached to an order item.
// The backend serializes estimatedTime in camelCase; everything else is
// snake_case.
type Delivery struct {
	Cost           money.Amount `json:"cost"`
	EstimatedTime  string       `json:"estimatedTime"`
	TrackingNumber string       `json:"tracking_number"`
}

// OrderItem is one purchased position within an order.
type OrderItem struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Price     money.Amount `json:"price"`
	Size      string       `json:"size"`
	Image     string       `json:"image"`
	Delivery  Delivery     `json:"delivery"`
	SKU       string       `json:"sku"`
	BrandName string       `json:"brand_name"`
	ProductID string       `json:"product_id"`
}

// Order is a user's order with the delivery snapshot taken at checkout.
type Order struct {
	ID             string       `json:"id"`
	Number         string       `json:"number"`
	TotalAmount    money.Amount `json:"total_amount"`
	Currency       string       `json:"currency"`
	Date           time.Time    `json:"date"`
	Status         string       `json:"status"`
	TrackingNumber string       `json:"tracking_number"`
	TrackingLink   string       `json:"tracking_link"`
	Items          []OrderItem  `json:"items"`

	DeliveryFullName   string `json:"delivery_full_name"`
	DeliveryEmail      string `json:"delivery_email"`
	DeliveryPhone      string `json:"delivery_phone"`
	DeliveryAddress    string `json:"delivery_address"`
	DeliveryCity       string `json:"delivery_city"`
	DeliveryPostalCode string `json:"delivery_postal_code"`
}

// Profile is the authenticated user's profile. Favorite brands and styles
// carried here seed the preference pickers.
type Profile struct {
	ID             string  `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	FavoriteBrands []Brand `json:"favorite_brands"`
	FavoriteStyles []Style `json:"favorite_styles"`
}
