package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const maxPictureSize = 2 << 20 // 2MB

var allowedPictureExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

// ValidatePicture checks extension and size of an uploaded profile picture.
func ValidatePicture(file *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPictureExts[ext] {
		return fmt.Errorf("picture must be jpeg, png, jpg or gif")
	}
	if file.Size > maxPictureSize {
		return fmt.Errorf("picture must not exceed 2MB")
	}
	return nil
}

// PicturePath builds the relative storage path for an upload, with a random
// name so clients can't collide or guess.
func PicturePath(file *multipart.FileHeader) string {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	return filepath.Join("profile-pictures", uuid.NewString()+ext)
}

// EnsureUploadDir creates the directory an upload path resolves into.
func EnsureUploadDir(baseDir, relPath string) (string, error) {
	dst := filepath.Join(baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	return dst, nil
}

// RemoveUpload deletes a stored file, ignoring files already gone.
func RemoveUpload(baseDir, relPath string) {
	if relPath == "" {
		return
	}
	_ = os.Remove(filepath.Join(baseDir, relPath))
}
