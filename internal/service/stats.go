package service

import (
	"context"
	"fmt"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const topEvents = 5

type StatsService struct {
	repo   ports.StatsRepo
	ledger ports.ExportLedger
	logger logger.Logger
}

func NewStatsService(repo ports.StatsRepo, ledger ports.ExportLedger, logger logger.Logger) *StatsService {
	return &StatsService{
		repo:   repo,
		ledger: ledger,
		logger: logger,
	}
}

// если файл выгрузки не читается, ExportRows остается нулем
func (s *StatsService) Stats(ctx context.Context) (*domain.Stats, error) {
	stats, err := s.repo.Stats(ctx, topEvents)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	rows, err := s.ledger.CountRows()
	if err != nil {
		s.logger.Warn("failed to count export rows", logger.String("error", err.Error()))
	} else {
		stats.ExportRows = rows
	}

	return stats, nil
}
