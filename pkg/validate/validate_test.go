package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/productos/pkg/validate"
)

type productInput struct {
	SKU         int64   `json:"sku"         validate:"required,integer"`
	Name        string  `json:"name"        validate:"required,max=255"`
	Description string  `json:"description" validate:"nullable"`
	Quantity    float64 `json:"quantity"    validate:"required,numeric,min=1"`
	Price       float64 `json:"price"       validate:"required,numeric,min=1"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(productInput{
		SKU:      123456,
		Name:     "Widget",
		Quantity: 10,
		Price:    2.5,
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(productInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	for _, field := range []string{"sku", "name", "quantity", "price"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
	if _, ok := errs["description"]; ok {
		t.Error("description is nullable, expected no error")
	}
}

func TestAllFieldsReportedTogether(t *testing.T) {
	errs := validate.Struct(productInput{Name: "Widget"})
	if len(errs) != 3 {
		t.Errorf("expected errors for sku, quantity, and price, got: %v", errs)
	}
}

func TestMinOnNumbers(t *testing.T) {
	type in struct {
		Quantity float64 `json:"quantity" validate:"required,numeric,min=1"`
	}
	if errs := validate.Struct(in{Quantity: 0.5}); !validate.HasErrors(errs) {
		t.Error("expected quantity 0.5 to fail min=1")
	}
	if errs := validate.Struct(in{Quantity: 1}); validate.HasErrors(errs) {
		t.Errorf("expected quantity 1 to pass, got: %v", errs)
	}
}

func TestMaxOnStrings(t *testing.T) {
	type in struct {
		Name string `json:"name" validate:"required,max=5"`
	}
	if errs := validate.Struct(in{Name: "abcdef"}); !validate.HasErrors(errs) {
		t.Error("expected six characters to fail max=5")
	}
	if errs := validate.Struct(in{Name: "abcde"}); validate.HasErrors(errs) {
		t.Errorf("expected five characters to pass, got: %v", errs)
	}
}

func TestBetweenRule(t *testing.T) {
	type in struct {
		Qty int `json:"qty" validate:"required,between=1,100"`
	}
	if errs := validate.Struct(in{Qty: 101}); !validate.HasErrors(errs) {
		t.Error("expected 101 to fail between=1,100")
	}
	if errs := validate.Struct(in{Qty: 100}); validate.HasErrors(errs) {
		t.Errorf("expected 100 to pass, got: %v", errs)
	}
}

func TestInRuleKeepsCommaParams(t *testing.T) {
	type in struct {
		Mode string `json:"mode" validate:"required,in=json,redirect,max=20"`
	}
	if errs := validate.Struct(in{Mode: "xml"}); !validate.HasErrors(errs) {
		t.Error("expected invalid mode to fail")
	}
	if errs := validate.Struct(in{Mode: "redirect"}); validate.HasErrors(errs) {
		t.Errorf("expected redirect to pass: %v", errs)
	}
}

func TestMessageOverrides(t *testing.T) {
	type in struct {
		SKU int64 `json:"sku" validate:"required,integer"`
	}
	msgs := validate.Messages{"sku.required": "El código SKU es obligatorio."}

	errs := validate.StructWithMessages(in{}, msgs)
	if got := errs["sku"]; got != "El código SKU es obligatorio." {
		t.Errorf("expected overridden message, got %q", got)
	}
}

type withMessages struct {
	Name string `json:"name" validate:"required"`
}

func (withMessages) Messages() validate.Messages {
	return validate.Messages{"name.required": "El nombre es obligatorio."}
}

func TestHasMessagesInterface(t *testing.T) {
	errs := validate.Struct(withMessages{})
	if got := errs["name"]; got != "El nombre es obligatorio." {
		t.Errorf("expected message from HasMessages, got %q", got)
	}
}
