package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"keyword-dashboard/internal/core/domain"
)

// seedDirectory is the demo campaign to ad group directory.
var seedDirectory = map[string][]string{
	"Sommarrea":     {"Skor", "Jackor", "Solglasögon"},
	"Vinterkampanj": {"Mössor", "Vantar"},
	"Varumärke":     {"Varumärke exakt", "Varumärke bred"},
}

var seedTerms = []string{
	"billiga skor", "löparskor", "vinterjacka", "regnjacka", "solglasögon dam",
	"mössa barn", "vantar ull", "köpa skor online", "rea jackor", "skor herr",
}

// Seed inserts demo directory rows and keywords. keywords is the number
// of keywords to generate per campaign. Re-running is harmless: directory
// rows are skipped when the pair already exists.
func Seed(ctx context.Context, db *pgxpool.Pool, keywords int) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	batch := &pgx.Batch{}
	for campaign, groups := range seedDirectory {
		for _, group := range groups {
			batch.Queue(`INSERT INTO campaign_ad_groups (campaign, ad_group)
SELECT $1, $2
WHERE NOT EXISTS (SELECT 1 FROM campaign_ad_groups WHERE campaign = $1 AND ad_group = $2)`,
				campaign, group)
		}

		for i := 0; i < keywords; i++ {
			term := seedTerms[r.Intn(len(seedTerms))]
			if i >= len(seedTerms) {
				term = fmt.Sprintf("%s %d", term, i)
			}
			batch.Queue(`INSERT INTO keywords
(id, term, match_type, campaign, ad_group, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT DO NOTHING`,
				uuid.New(),
				term,
				domain.MatchTypes[r.Intn(len(domain.MatchTypes))],
				campaign,
				groups[r.Intn(len(groups))],
				domain.Statuses[r.Intn(len(domain.Statuses))],
				time.Now().UTC().Add(-time.Duration(r.Intn(90*24))*time.Hour),
			)
		}
	}

	if err := db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}
