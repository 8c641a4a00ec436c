package dao

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/econopapi/terraza-zocalo-hosts/internal/pkg/keygen"
)

// SeedDemoData provisions the demo teams, hosts and waiters from the
// original Terraza Zócalo roster when the store is empty. Generated keys
// are logged once; they are not recoverable afterwards.
func SeedDemoData(db *gorm.DB) error {
	ctx := context.Background()

	teamDAO := NewTeamDAO(db)

	count, err := teamDAO.Count(ctx)
	if err != nil {
		return fmt.Errorf("teamDAO.Count -> %w", err)
	}
	if count > 0 {
		return nil
	}

	hostDAO := NewHostDAO(db)
	waiterDAO := NewWaiterDAO(db)

	teams := []struct {
		id       uint
		leadName string
		hosts    []string
	}{
		{1, "Ana García", []string{"Laura", "Pedro"}},
		{2, "Carlos Ruiz", []string{"Sofia", "Diego"}},
		{3, "María López", []string{"Valeria", "Andrés"}},
		{4, "Juan Pérez", []string{"Camila", "Roberto"}},
	}

	for _, t := range teams {
		leadKey := keygen.NewKey()

		created, err := teamDAO.Insert(ctx, Team{
			ID:            t.id,
			LeadName:      t.leadName,
			LeadKeyDigest: keygen.Digest(leadKey),
		})
		if err != nil {
			return fmt.Errorf("teamDAO.Insert -> %w", err)
		}

		zap.L().Info("seeded demo team",
			zap.Uint("team_id", created.ID),
			zap.String("lead", created.LeadName),
			zap.String("lead_key", leadKey))

		for _, name := range t.hosts {
			hostKey := keygen.NewKey()

			host, err := hostDAO.Insert(ctx, Host{
				TeamID:    created.ID,
				Name:      name,
				KeyDigest: keygen.Digest(hostKey),
			})
			if err != nil {
				return fmt.Errorf("hostDAO.Insert -> %w", err)
			}

			zap.L().Info("seeded demo host",
				zap.Uint("host_id", host.ID),
				zap.String("name", host.Name),
				zap.String("key", hostKey))
		}
	}

	for i := 1; i <= 5; i++ {
		waiterKey := keygen.NewKey()

		waiter, err := waiterDAO.Insert(ctx, Waiter{
			Name:      fmt.Sprintf("Mesero %d", i),
			KeyDigest: keygen.Digest(waiterKey),
		})
		if err != nil {
			return fmt.Errorf("waiterDAO.Insert -> %w", err)
		}

		zap.L().Info("seeded demo waiter",
			zap.Uint("waiter_id", waiter.ID),
			zap.String("name", waiter.Name),
			zap.String("key", waiterKey))
	}

	return nil
}
