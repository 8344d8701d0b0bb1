// Package requests holds typed form-request inputs with their validation
// rules and message overrides.
package requests

import "github.com/shashiranjanraj/productos/pkg/validate"

// ProductInput is the payload accepted by the create and update endpoints.
// A client-submitted "total" is ignored; the server always computes it.
type ProductInput struct {
	SKU         int64   `json:"sku"         validate:"required,integer"`
	Name        string  `json:"name"        validate:"required,max=255"`
	Description string  `json:"description" validate:"nullable"`
	Quantity    float64 `json:"quantity"    validate:"required,numeric,min=1"`
	Price       float64 `json:"price"       validate:"required,numeric,min=1"`
}

// MsgSKUTaken is also used by the service layer for the uniqueness check and
// by the controller when the storage constraint rejects a racing write.
const MsgSKUTaken = "Ya existe un producto con este código SKU."

// Messages returns the Spanish message overrides, keyed "field.rule".
func (ProductInput) Messages() validate.Messages {
	return validate.Messages{
		"sku.required":      "El código SKU es obligatorio.",
		"sku.integer":       "El código SKU debe ser un número entero.",
		"name.required":     "El nombre es obligatorio.",
		"quantity.required": "La cantidad es obligatoria.",
		"quantity.min":      "La cantidad debe ser al menos 1.",
		"price.required":    "El precio es obligatorio.",
		"price.min":         "El precio debe ser al menos 1.",
	}
}
