package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type StorageService interface {
	SaveResume(file *multipart.FileHeader) (string, error)
	SaveAnswerMedia(file *multipart.FileHeader, sessionID, questionID string) (string, error)
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// SaveResume stores an uploaded resume PDF under a unique name and returns
// its path.
func (s *storageService) SaveResume(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return "", fmt.Errorf("invalid resume file extension: %s", ext)
	}

	dir := filepath.Join(s.uploadPath, "resumes")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create resume directory: %w", err)
	}

	filePath := filepath.Join(dir, fmt.Sprintf("%s%s", uuid.New().String(), ext))
	if err := s.copyUpload(file, filePath); err != nil {
		return "", err
	}

	return filePath, nil
}

// SaveAnswerMedia stores one recorded answer under the session's upload
// directory, keyed by question id, and returns its path.
func (s *storageService) SaveAnswerMedia(file *multipart.FileHeader, sessionID, questionID string) (string, error) {
	dir := filepath.Join(s.uploadPath, sessionID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create session upload directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".webm"
	}

	filePath := filepath.Join(dir, questionID+ext)
	if err := s.copyUpload(file, filePath); err != nil {
		return "", err
	}

	return filePath, nil
}

func (s *storageService) copyUpload(file *multipart.FileHeader, filePath string) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	return nil
}
