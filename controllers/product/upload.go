package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadImage saves a multipart image to the local uploads directory and
// returns the public URL it will be served under.
func UploadImage(uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "image is required"})
			return
		}

		filename := strings.ReplaceAll(filepath.Base(file.Filename), " ", "_")
		filename = uuid.NewString()[:8] + "_" + filename

		saveDir := filepath.Join(uploadsDir, "products")
		if err := os.MkdirAll(saveDir, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create upload folder"})
			return
		}
		if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to save image"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"url": fmt.Sprintf("/uploads/products/%s", filename),
		})
	}
}
