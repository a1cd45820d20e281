package uploadController

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

const thumbnailWidth = 300

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

// UploadDir resolves where product images land on disk.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// POST /api/upload/product
//
// Stores the image under a uuid filename and writes a thumbnail alongside it.
func UploadProductImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedExtensions[ext] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only jpeg, jpg, png and gif images are allowed"})
			return
		}

		dir := UploadDir()
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		filename := uuid.NewString() + ext
		savePath := filepath.Join(dir, filename)
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
			return
		}

		// Thumbnail failures are not fatal, the full image is already saved
		if err := writeThumbnail(savePath, dir, filename); err != nil {
			log.Printf("⚠️ Thumbnail for %s failed: %v", filename, err)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "File uploaded",
			"path":    "/uploads/" + filename,
		})
	}
}

func writeThumbnail(srcPath, dir, filename string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	img, format, err := image.Decode(src)
	if err != nil {
		return err
	}

	thumb := resize.Resize(thumbnailWidth, 0, img, resize.Lanczos3)

	out, err := os.Create(filepath.Join(dir, "thumb_"+filename))
	if err != nil {
		return err
	}
	defer out.Close()

	switch format {
	case "png":
		return png.Encode(out, thumb)
	case "gif":
		return gif.Encode(out, thumb, nil)
	default:
		return jpeg.Encode(out, thumb, &jpeg.Options{Quality: 85})
	}
}
