package utils

import (
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const avatarUploadDir = "uploads/images/testifier_avatar"

// SaveTestifierAvatar stores an uploaded avatar under the uploads tree
// with a collision-free name and returns the stored relative path.
func SaveTestifierAvatar(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(avatarUploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := fmt.Sprintf("testifier-avatar-%s%s", uuid.NewString(), ext)
	dst := filepath.Join(avatarUploadDir, name)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}
	return dst, nil
}

// RemoveFile deletes a previously stored upload. Failures are logged and
// swallowed so a storage hiccup never aborts the database write.
func RemoveFile(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Error deleting file %s: %v", path, err)
	}
}
