package productcontroller

import (
	"context"
	"net/http"
	"strings"

	"github.com/azazahmad08/kayesbackend/logging"
	"github.com/azazahmad08/kayesbackend/store"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// ExportProductsToExcel streams the whole catalog as an .xlsx download.
func ExportProductsToExcel(cs *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		products, err := cs.List(ctx, store.ProductFilter{})
		if err != nil {
			logging.From(c).Error("export products failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create sheet"})
			return
		}

		headers := []string{
			"ID", "Code", "Title", "Price", "PriceAfterDiscount",
			"Categories", "Sizes", "ImageURL", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Code)
			row.AddCell().SetValue(p.Title)
			row.AddCell().SetValue(p.Price)
			if p.PriceAfterDiscount != nil {
				row.AddCell().SetValue(*p.PriceAfterDiscount)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(strings.Join(p.Categories, ","))
			row.AddCell().SetValue(strings.Join(p.Sizes, ","))
			row.AddCell().SetValue(p.ImageURL)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			logging.From(c).Error("write excel failed", "error", err)
		}
	}
}
