package database

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog/log"
)

//go:embed seed/health_tips.json
var healthTipsJSON []byte

type seedTip struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Evidence string `json:"evidence"`
	Icon     string `json:"icon"`
}

// DefaultHealthTips returns the bundled tip catalogue.
func DefaultHealthTips() ([]CreateHealthTipParams, error) {
	var tips []seedTip
	if err := json.Unmarshal(healthTipsJSON, &tips); err != nil {
		return nil, fmt.Errorf("decode health tips: %w", err)
	}

	params := make([]CreateHealthTipParams, 0, len(tips))
	for _, t := range tips {
		params = append(params, CreateHealthTipParams{
			Category: t.Category,
			Title:    t.Title,
			Content:  t.Content,
			Evidence: pgtype.Text{String: t.Evidence, Valid: t.Evidence != ""},
			Icon:     pgtype.Text{String: t.Icon, Valid: t.Icon != ""},
		})
	}
	return params, nil
}

func (s *service) SeedHealthTips(ctx context.Context) (int, error) {
	tips, err := DefaultHealthTips()
	if err != nil {
		return 0, err
	}

	err = s.store.ExecTx(ctx, func(q Querier) error {
		for _, tip := range tips {
			if err := q.CreateHealthTip(ctx, tip); err != nil {
				return fmt.Errorf("insert tip %q: %w", tip.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info().Int("count", len(tips)).Msg("Health tips seeded")
	return len(tips), nil
}
