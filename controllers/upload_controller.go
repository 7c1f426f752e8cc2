package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"halachi-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadSize = 5 << 20 // 5 MB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadImage handles POST /api/admin/upload: a single multipart "image"
// file stored under ./uploads with a generated name.
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "no file uploaded")
		return
	}

	if file.Size > maxUploadSize {
		utils.JSONError(c, http.StatusBadRequest, "file too large (max 5MB)")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		utils.JSONError(c, http.StatusBadRequest, "only image files are allowed")
		return
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString()[:8], ext)
	dst := filepath.Join("uploads", name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "operation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "url": "/uploads/" + name})
}
