package routes

import (
	"github.com/shashiranjanraj/productos/app/controllers"
	"github.com/shashiranjanraj/productos/pkg/router"
)

func RegisterAPI(r *router.Router) {
	products := controllers.NewProductController()

	api := r.Group("/api")
	api.Get("/productos", "productos.index", products.Index)
	api.Post("/productos", "productos.store", products.Store)
	api.Put("/productos/{id}", "productos.update", products.Update)
	api.Delete("/productos/{id}", "productos.destroy", products.Destroy)
}
