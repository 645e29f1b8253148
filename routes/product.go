package routes

import (
	productcontroller "github.com/azazahmad08/kayesbackend/controllers/product"
	"github.com/gin-gonic/gin"
)

func SetupProductRoutes(r *gin.Engine, d Deps) {
	products := r.Group("/products")
	{
		products.POST("", productcontroller.CreateProduct(d.Catalog))
		products.GET("", productcontroller.GetProducts(d.Catalog))
		products.GET("/export", productcontroller.ExportProductsToExcel(d.Catalog))
		products.GET("/code/:code", productcontroller.GetProductByCode(d.Catalog))
		products.GET("/:id", productcontroller.GetProductByID(d.Catalog))
		products.PUT("/:id", productcontroller.UpdateProduct(d.Catalog))
		products.DELETE("/:id", productcontroller.DeleteProduct(d.Catalog))
	}

	r.POST("/upload", productcontroller.UploadImage(d.UploadsDir))
}
