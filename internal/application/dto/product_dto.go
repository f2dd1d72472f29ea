package dto

import "time"

// CreateProductRequest alta de producto.
type CreateProductRequest struct {
	Name          string  `json:"name"` // requerido
	CategoryID    *string `json:"category_id"`
	GSM           *int64  `json:"gsm"`
	Size1         string  `json:"size1"`
	Size2         string  `json:"size2"`
	Size3         string  `json:"size3"`
	TargetPerHour int64   `json:"target_per_hour"`
}

// UpdateProductRequest edición parcial de producto.
type UpdateProductRequest struct {
	Name          *string `json:"name"`
	CategoryID    *string `json:"category_id"`
	GSM           *int64  `json:"gsm"`
	Size1         *string `json:"size1"`
	Size2         *string `json:"size2"`
	Size3         *string `json:"size3"`
	TargetPerHour *int64  `json:"target_per_hour"`
}

// ProductResponse producto persistido.
type ProductResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	CategoryID    *string   `json:"category_id"`
	GSM           *int64    `json:"gsm,omitempty"`
	Size1         string    `json:"size1,omitempty"`
	Size2         string    `json:"size2,omitempty"`
	Size3         string    `json:"size3,omitempty"`
	TargetPerHour int64     `json:"target_per_hour"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateCategoryRequest alta de categoría de producto.
type CreateCategoryRequest struct {
	Name        string `json:"name"` // requerido
	Description string `json:"description"`
}

// UpdateCategoryRequest edición parcial de categoría.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CategoryResponse categoría persistida.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
