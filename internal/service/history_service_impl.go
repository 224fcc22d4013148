package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dparedes/hormigo/internal/domain"
	"github.com/dparedes/hormigo/internal/export"
	"github.com/dparedes/hormigo/internal/repository"
)

const exportBaseName = "historial_predicciones"

type historyService struct {
	repo repository.PredictionRepo
}

// NewHistoryService wraps the prediction history store.
func NewHistoryService(repo repository.PredictionRepo) HistoryService {
	return &historyService{repo: repo}
}

func (s *historyService) List(ctx context.Context, limit int) ([]*domain.PredictionResult, error) {
	return s.repo.List(ctx, limit)
}

func (s *historyService) GetByID(ctx context.Context, id string) (*domain.PredictionResult, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *historyService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *historyService) Clear(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.repo.Clear(ctx); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *historyService) Export(ctx context.Context, dir string) (string, error) {
	results, err := s.repo.List(ctx, 0)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", fmt.Errorf("history is empty, nothing to export")
	}

	path := filepath.Join(dir, export.BackupFilename(exportBaseName, time.Now()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := export.WriteHistory(f, results); err != nil {
		return "", fmt.Errorf("exporting history: %w", err)
	}
	return path, nil
}
