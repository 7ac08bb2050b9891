// Package main provides the forge CLI. It wires together configuration, the
// weapon template catalog, the loot generator, and optionally the armory
// database to commission, inspect, and persist weapons.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/ironvale/forge/internal/config"
	"github.com/ironvale/forge/internal/game/catalog"
	"github.com/ironvale/forge/internal/game/inventory"
	"github.com/ironvale/forge/internal/game/loot"
	"github.com/ironvale/forge/internal/game/rng"
	"github.com/ironvale/forge/internal/game/stats"
	"github.com/ironvale/forge/internal/observability"
	"github.com/ironvale/forge/internal/render"
	"github.com/ironvale/forge/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	templateID := flag.String("template", "", "weapon template ID to commission")
	count := flag.Int("count", 1, "number of weapons to forge")
	level := flag.Int("level", 0, "level override for forged weapons (0 = template level)")
	owner := flag.String("owner", "", "persist forged weapons to the armory under this owner")
	listOwner := flag.String("list-owner", "", "list persisted weapons for this owner and exit")
	flag.Parse()

	if *templateID == "" && *listOwner == "" {
		fmt.Fprintln(os.Stderr, "usage: forge -template <id> [-count n] [-level n] [-owner <name>]")
		fmt.Fprintln(os.Stderr, "       forge -list-owner <name>")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging, "forge")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	if *listOwner != "" {
		listArmory(ctx, cfg, logger, *listOwner)
		return
	}

	// Load the weapon template catalog.
	templates, err := catalog.LoadDir(cfg.Content.WeaponsDir)
	if err != nil {
		logger.Fatal("loading weapon templates", zap.Error(err))
	}
	registry := catalog.NewRegistry()
	if err := registry.RegisterAll(templates); err != nil {
		logger.Fatal("registering weapon templates", zap.Error(err))
	}
	logger.Info("catalog loaded",
		zap.String("dir", cfg.Content.WeaponsDir),
		zap.Int("templates", registry.Len()),
	)

	// Seed 0 selects the crypto source; anything else forges deterministically.
	var src rng.Source
	if cfg.Forge.Seed > 0 {
		src = rng.NewSeededSource(cfg.Forge.Seed)
		logger.Info("using seeded random source", zap.Int64("seed", cfg.Forge.Seed))
	} else {
		src = rng.NewCryptoSource()
	}
	src = rng.NewLoggedSource(src, logger)

	generator := loot.NewGenerator(stats.DefaultTable(), src)
	forge := catalog.NewForge(registry, generator, logger)

	var repo *postgres.ArmoryRepository
	if *owner != "" {
		pool := openArmoryPool(ctx, cfg, logger)
		defer pool.Close()
		repo = pool.Armory()
	}

	arsenal := inventory.NewArsenal(cfg.Forge.ArsenalSlots, cfg.Forge.ArsenalWeight)
	for i := 0; i < *count; i++ {
		w, err := forge.CommissionEnchanted(*templateID)
		if err != nil {
			logger.Fatal("forging weapon", zap.String("template", *templateID), zap.Error(err))
		}
		if *level > 0 {
			w.SetLevel(*level)
		}

		fmt.Print(render.WeaponSheet(w))
		fmt.Println()

		if err := arsenal.Add(w); err != nil {
			logger.Warn("arsenal rejected weapon",
				zap.String("weapon_id", w.ID()),
				zap.Error(err),
			)
		}
		if repo != nil {
			if err := repo.Save(ctx, *owner, w); err != nil {
				logger.Fatal("saving weapon", zap.String("weapon_id", w.ID()), zap.Error(err))
			}
		}
	}

	if *count > 1 {
		fmt.Print(render.ArsenalSheet(arsenal))
	}
	logger.Info("forge run complete",
		zap.Int("forged", *count),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// openArmoryPool builds the armory database pool and verifies the server
// answers within a bounded timeout, exiting on failure.
func openArmoryPool(ctx context.Context, cfg config.Config, logger *zap.Logger) *postgres.Pool {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("configuring database pool", zap.Error(err))
	}
	if err := pool.Health(ctx, 5*time.Second); err != nil {
		pool.Close()
		logger.Fatal("database unreachable", zap.Error(err))
	}
	return pool
}

func listArmory(ctx context.Context, cfg config.Config, logger *zap.Logger, owner string) {
	pool := openArmoryPool(ctx, cfg, logger)
	defer pool.Close()

	weapons, err := pool.Armory().ListByOwner(ctx, owner)
	if err != nil {
		logger.Fatal("listing weapons", zap.String("owner", owner), zap.Error(err))
	}

	if len(weapons) == 0 {
		fmt.Printf("%s holds no weapons\n", owner)
		return
	}
	fmt.Printf("%s holds %d weapon(s):\n", owner, len(weapons))
	for _, w := range weapons {
		fmt.Printf("  %s\n", render.WeaponLine(w))
	}
}
