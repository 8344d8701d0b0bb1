package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/productos/app/repositories"
	"github.com/shashiranjanraj/productos/app/requests"
	"github.com/shashiranjanraj/productos/app/services"
	"github.com/shashiranjanraj/productos/config"
	"github.com/shashiranjanraj/productos/pkg/bind"
	"github.com/shashiranjanraj/productos/pkg/logger"
	"github.com/shashiranjanraj/productos/pkg/response"
	"github.com/shashiranjanraj/productos/pkg/router"
	"github.com/shashiranjanraj/productos/pkg/session"
)

const (
	msgCreated  = "Producto creado correctamente."
	msgUpdated  = "Producto actualizado correctamente."
	msgDeleted  = "Producto eliminado correctamente."
	msgNotFound = "Producto no encontrado."

	indexPath = "/productos"
)

// ProductController orchestrates the four catalogue operations. It carries
// no per-request state; the response shape is decided by RESPONSE_MODE.
type ProductController struct {
	service *services.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{
		service: services.NewProductService(),
	}
}

// Index returns all products, newest first.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.List()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list products", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Success(w, "", products)
}

// Store validates the payload, computes the total, and persists a product.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var in requests.ProductInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if errs != nil {
		c.rejected(w, r, errs)
		return
	}

	product, errs, err := c.service.Create(in)
	if err != nil {
		logger.WithCtx(r.Context()).Error("create product", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if errs != nil {
		c.rejected(w, r, errs)
		return
	}

	logger.WithCtx(r.Context()).Info("producto creado", "id", product.ID, "sku", product.SKU)

	if c.redirectMode() {
		c.flashAndRedirect(w, r, msgCreated)
		return
	}
	response.Created(w, msgCreated, product)
}

// Update re-validates and overwrites an existing product, recomputing the
// total. Responds 404 when the identifier does not resolve.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := c.productID(r)
	if !ok {
		response.NotFound(w, msgNotFound)
		return
	}

	var in requests.ProductInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if errs != nil {
		c.rejected(w, r, errs)
		return
	}

	product, errs, err := c.service.Update(id, in)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			response.NotFound(w, msgNotFound)
			return
		}
		logger.WithCtx(r.Context()).Error("update product", "id", id, "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if errs != nil {
		c.rejected(w, r, errs)
		return
	}

	logger.WithCtx(r.Context()).Info("producto actualizado", "id", product.ID, "sku", product.SKU)

	if c.redirectMode() {
		c.flashAndRedirect(w, r, msgUpdated)
		return
	}
	response.Success(w, msgUpdated, product)
}

// Destroy removes a product permanently.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := c.productID(r)
	if !ok {
		response.NotFound(w, msgNotFound)
		return
	}

	if err := c.service.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			response.NotFound(w, msgNotFound)
			return
		}
		logger.WithCtx(r.Context()).Error("delete product", "id", id, "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	logger.WithCtx(r.Context()).Info("producto eliminado", "id", id)

	if c.redirectMode() {
		c.flashAndRedirect(w, r, msgDeleted)
		return
	}
	response.Success(w, msgDeleted, nil)
}

func (c *ProductController) productID(r *http.Request) (uint, bool) {
	raw := router.Param(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (c *ProductController) redirectMode() bool {
	return config.ResponseMode() == "redirect"
}

// rejected reports field errors: 422 in json mode, flash + 303 back to the
// form page in redirect mode. Nothing has been persisted at this point.
func (c *ProductController) rejected(w http.ResponseWriter, r *http.Request, errs map[string]string) {
	if c.redirectMode() {
		sess := session.FromCtx(r)
		sess.Flash("errors", errs)
		sess.Save(w) //nolint:errcheck
		response.Redirect(w, r, redirectTarget(r))
		return
	}
	response.ValidationError(w, errs)
}

func (c *ProductController) flashAndRedirect(w http.ResponseWriter, r *http.Request, msg string) {
	sess := session.FromCtx(r)
	sess.Flash("success", msg)
	sess.Save(w) //nolint:errcheck
	response.Redirect(w, r, indexPath)
}

func redirectTarget(r *http.Request) string {
	if ref := r.Referer(); ref != "" {
		return ref
	}
	return indexPath
}
