package entity

import "time"

// Product artículo fabricado. TargetPerHour es la meta de producción por hora
// que usan los reportes para contextualizar la eficiencia.
type Product struct {
	ID            string
	Name          string
	CategoryID    *string
	GSM           *int64 // gramaje del material, opcional
	Size1         string
	Size2         string
	Size3         string
	TargetPerHour int64
	CreatedAt     time.Time
}

// ProductCategory agrupación de productos.
type ProductCategory struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
